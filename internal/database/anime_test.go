package database_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"github.com/varoOP/seasondb/internal/database"
	"github.com/varoOP/seasondb/internal/domain"
)

func openRepo(t *testing.T) (*database.AnimeRepo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "seasondb.db")
	db, err := database.NewDB(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return database.NewAnimeRepo(zerolog.Nop(), db), path
}

func TestAnimeRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := openRepo(t)

	want := &domain.Anime{
		ID:           16498,
		Title:        "Shingeki no Kyojin",
		Type:         domain.SeriesTypeTV,
		ImageURL:     "http://img/16498.jpg",
		Producers:    []string{"Production I.G", "Dentsu"},
		Genres:       []string{"Action", "Drama"},
		DateStart:    domain.Date{Year: 2013, Month: 4, Day: 7},
		DateEnd:      domain.Date{Year: 2013, Month: 9, Day: 29},
		Synopsis:     "Humanity behind walls.",
		LastModified: 1365000000,
	}
	if err := repo.UpdateItem(ctx, want); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	got, err := repo.FindItem(ctx, 16498)
	if err != nil {
		t.Fatalf("FindItem: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestAnimeRepoNotFound(t *testing.T) {
	repo, _ := openRepo(t)
	if _, err := repo.FindItem(context.Background(), 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAnimeRepoUpdateMerges(t *testing.T) {
	ctx := context.Background()
	repo, _ := openRepo(t)

	if err := repo.UpdateItem(ctx, &domain.Anime{ID: 1, Title: "Old", Synopsis: "Kept.", Genres: []string{"Comedy"}}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if err := repo.UpdateItem(ctx, &domain.Anime{ID: 1, Title: "New", LastModified: 10}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	got, err := repo.FindItem(ctx, 1)
	if err != nil {
		t.Fatalf("FindItem: %v", err)
	}
	if got.Title != "New" || got.Synopsis != "Kept." || got.LastModified != 10 {
		t.Fatalf("unexpected merged record %+v", got)
	}
	if !reflect.DeepEqual(got.Genres, []string{"Comedy"}) {
		t.Fatalf("unexpected genres %v", got.Genres)
	}
}

func TestAnimeRepoItemsAndImport(t *testing.T) {
	ctx := context.Background()
	repo, _ := openRepo(t)

	err := repo.ImportItems(ctx, []*domain.Anime{
		{ID: 30, Title: "C"},
		{ID: 10, Title: "A"},
		{ID: 20, Title: "B"},
	})
	if err != nil {
		t.Fatalf("ImportItems: %v", err)
	}

	items, err := repo.Items(ctx)
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	var ids []int
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	if !reflect.DeepEqual(ids, []int{10, 20, 30}) {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestAnimeRepoImportRollsBack(t *testing.T) {
	ctx := context.Background()
	repo, _ := openRepo(t)

	err := repo.ImportItems(ctx, []*domain.Anime{{ID: 1, Title: "A"}, {ID: 0, Title: "broken"}})
	if err == nil {
		t.Fatal("expected import error")
	}

	items, err := repo.Items(ctx)
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected rolled back import, got %d items", len(items))
	}
}

func TestNewDBReopensExistingSchema(t *testing.T) {
	ctx := context.Background()
	repo, path := openRepo(t)
	if err := repo.UpdateItem(ctx, &domain.Anime{ID: 5, Title: "Persisted"}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	db, err := database.NewDB(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	got, err := database.NewAnimeRepo(zerolog.Nop(), db).FindItem(ctx, 5)
	if err != nil {
		t.Fatalf("FindItem: %v", err)
	}
	if got.Title != "Persisted" {
		t.Fatalf("unexpected title %q", got.Title)
	}
}

func TestPingAfterClose(t *testing.T) {
	db, err := database.NewDB(filepath.Join(t.TempDir(), "seasondb.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := db.Ping(); err == nil {
		t.Fatal("expected Ping to fail on a closed database")
	}
}
