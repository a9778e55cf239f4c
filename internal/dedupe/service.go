package dedupe

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/varoOP/seasondb/internal/domain"
)

type Service interface {
	CheckDupes(ctx context.Context, anime []*domain.Anime) (int, []*domain.Anime)
}

type service struct {
	log zerolog.Logger
}

func NewService(log zerolog.Logger) Service {
	return &service{
		log: log.With().Str("module", "dedupe").Logger(),
	}
}

// CheckDupes collapses records sharing an id into one, keeping the position of
// the first occurrence. The most recently modified record wins and older
// duplicates only fill the fields it leaves empty.
func (s *service) CheckDupes(ctx context.Context, anime []*domain.Anime) (int, []*domain.Anime) {
	index := make(map[int]int, len(anime))
	deduped := make([]*domain.Anime, 0, len(anime))
	dupes := 0

	for _, a := range anime {
		i, ok := index[a.ID]
		if !ok {
			index[a.ID] = len(deduped)
			deduped = append(deduped, a.Clone())
			continue
		}

		dupes++
		kept := deduped[i]
		s.log.Debug().
			Int("id", a.ID).
			Str("title", a.Title).
			Int64("last_modified", a.LastModified).
			Int64("kept_last_modified", kept.LastModified).
			Msg("Merging duplicate entry")

		if a.LastModified > kept.LastModified {
			merged := kept.Clone()
			merged.Update(a)
			deduped[i] = merged
			continue
		}

		older := a.Clone()
		older.Update(kept)
		deduped[i] = older
	}

	if dupes > 0 {
		s.log.Info().Int("dupe_count", dupes).Msg("Found duplicates")
	}

	return dupes, deduped
}
