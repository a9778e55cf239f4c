package animedb

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/varoOP/seasondb/internal/domain"
)

// Memory implements domain.AnimeRepository in memory
type Memory struct {
	log   zerolog.Logger
	mu    sync.RWMutex
	items map[int]*domain.Anime
}

var _ domain.AnimeRepository = (*Memory)(nil)

// NewMemory creates an empty in-memory anime store
func NewMemory(log zerolog.Logger) *Memory {
	return &Memory{
		log:   log.With().Str("module", "animedb").Logger(),
		items: make(map[int]*domain.Anime),
	}
}

func (m *Memory) FindItem(ctx context.Context, id int) (*domain.Anime, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[id]
	if !ok {
		return nil, errors.Wrapf(domain.ErrNotFound, "id %d", id)
	}
	return item.Clone(), nil
}

func (m *Memory) UpdateItem(ctx context.Context, item *domain.Anime) error {
	if item == nil || item.ID <= 0 {
		return errors.New("anime item must have a positive id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.items[item.ID]
	if !ok {
		m.items[item.ID] = item.Clone()
		m.log.Trace().Int("id", item.ID).Msg("inserted item")
		return nil
	}

	existing.Update(item)
	m.log.Trace().Int("id", item.ID).Msg("updated item")
	return nil
}

func (m *Memory) Items(ctx context.Context) ([]*domain.Anime, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Anime, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, item.Clone())
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

// Len returns the number of stored records
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
