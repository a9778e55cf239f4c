package dedupe_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"github.com/varoOP/seasondb/internal/dedupe"
	"github.com/varoOP/seasondb/internal/domain"
)

func TestCheckDupesNoDuplicates(t *testing.T) {
	svc := dedupe.NewService(zerolog.Nop())
	in := []*domain.Anime{{ID: 2, Title: "B"}, {ID: 1, Title: "A"}}

	count, out := svc.CheckDupes(context.Background(), in)
	if count != 0 {
		t.Fatalf("expected no dupes, got %d", count)
	}
	if len(out) != 2 || out[0].ID != 2 || out[1].ID != 1 {
		t.Fatalf("unexpected order: %+v", out)
	}
}

func TestCheckDupesNewestWins(t *testing.T) {
	svc := dedupe.NewService(zerolog.Nop())
	in := []*domain.Anime{
		{ID: 1, Title: "Old Title", Synopsis: "kept", LastModified: 10},
		{ID: 2, Title: "Other"},
		{ID: 1, Title: "New Title", Genres: []string{"Action"}, LastModified: 20},
		{ID: 1, Title: "Stale Title", ImageURL: "img.jpg", LastModified: 5},
	}

	count, out := svc.CheckDupes(context.Background(), in)
	if count != 2 {
		t.Fatalf("expected 2 dupes, got %d", count)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}

	got := out[0]
	if got.Title != "New Title" || got.LastModified != 20 {
		t.Fatalf("expected newest record to win, got %+v", got)
	}
	if got.Synopsis != "kept" || got.ImageURL != "img.jpg" {
		t.Fatalf("expected older records to fill empty fields, got %+v", got)
	}
	if !reflect.DeepEqual(got.Genres, []string{"Action"}) {
		t.Fatalf("unexpected genres %v", got.Genres)
	}

	// input is left untouched
	if in[0].Title != "Old Title" {
		t.Fatalf("input was modified: %+v", in[0])
	}
}
