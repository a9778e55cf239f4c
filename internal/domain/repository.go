package domain

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned by AnimeRepository.FindItem for unknown ids
	ErrNotFound = errors.New("anime not found")
	// ErrSeasonUnreadable is returned when a season file exists but cannot be parsed
	ErrSeasonUnreadable = errors.New("could not read season data")
	// ErrInvalidSeason is returned when a season name has no known date interval
	ErrInvalidSeason = errors.New("invalid season")
)

// AnimeRepository defines the interface for the anime record store
type AnimeRepository interface {
	FindItem(ctx context.Context, id int) (*Anime, error)
	// UpdateItem inserts item, or merges it into the existing record with the same id
	UpdateItem(ctx context.Context, item *Anime) error
	// Items returns every record ordered by id
	Items(ctx context.Context) ([]*Anime, error)
}

// ImportRepository reads anime records from an export file
type ImportRepository interface {
	GetAnime(ctx context.Context, path string) ([]*Anime, error)
}

// ReportRepository stores season reports
type ReportRepository interface {
	StoreSeasonReport(ctx context.Context, path string, report *SeasonReport) error
}

// SeasonReport is the exported form of a reviewed season
type SeasonReport struct {
	Season    string       `yaml:"season"`
	DateStart string       `yaml:"dateStart"`
	DateEnd   string       `yaml:"dateEnd"`
	Items     []ReportItem `yaml:"items"`
}

// ReportItem is a single anime entry of a SeasonReport
type ReportItem struct {
	ID        int      `yaml:"id"`
	Title     string   `yaml:"title"`
	Type      string   `yaml:"type"`
	DateStart string   `yaml:"dateStart"`
	Genres    []string `yaml:"genres,omitempty"`
	Producers []string `yaml:"producers,omitempty"`
}

// ReviewResult lists the ids changed by a season review
type ReviewResult struct {
	Removed []int
	Added   []int
}
