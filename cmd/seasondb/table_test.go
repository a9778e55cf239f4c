package main

import (
	"strings"
	"testing"

	"github.com/varoOP/seasondb/internal/domain"
)

func TestRenderTableEmptyHeaders(t *testing.T) {
	if got := renderTable(nil, [][]string{{"x"}}, nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestRenderAnimeTable(t *testing.T) {
	out := renderAnimeTable([]*domain.Anime{
		{ID: 16498, Title: "Attack on Titan", Type: domain.SeriesTypeTV, Genres: []string{"Action", "Drama"}, DateStart: domain.Date{Year: 2013, Month: 4, Day: 7}},
		{ID: 7, Title: "Short Row", Type: domain.SeriesTypeMovie},
	})

	for _, want := range []string{"ID", "Title", "Attack on Titan", "tv", "2013-04-07", "Action, Drama", "movie", "0000-00-00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	if !strings.HasPrefix(out, "╭") {
		t.Fatalf("expected rounded style, got:\n%s", out)
	}
}
