package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/varoOP/seasondb/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileRepository implements domain.ImportRepository and domain.ReportRepository using file storage
type FileRepository struct {
	log zerolog.Logger
}

// NewFileRepository creates a new file-based repository
func NewFileRepository(log zerolog.Logger) *FileRepository {
	return &FileRepository{
		log: log.With().Str("module", "repository").Logger(),
	}
}

// Ensure FileRepository implements both interfaces
var _ domain.ImportRepository = (*FileRepository)(nil)
var _ domain.ReportRepository = (*FileRepository)(nil)

// GetAnime reads a JSON array of anime records
func (r *FileRepository) GetAnime(ctx context.Context, path string) ([]*domain.Anime, error) {
	a := []*domain.Anime{}

	// Check if path exists and is a file (not a directory)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file does not exist: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()

	body, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	err = json.Unmarshal(body, &a)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal json from %s: %w", path, err)
	}

	for i, item := range a {
		if item == nil || item.ID <= 0 {
			return nil, fmt.Errorf("record %d in %s has no valid id", i, path)
		}
	}

	r.log.Debug().Str("path", path).Int("count", len(a)).Msg("read anime data")
	return a, nil
}

// StoreSeasonReport saves a season report as YAML
func (r *FileRepository) StoreSeasonReport(ctx context.Context, path string, report *domain.SeasonReport) error {
	b, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal yaml: %w", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	// blank line between items
	text := string(b)
	lines := strings.Split(text, "\n")
	itemFound := false
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "- id:") {
			if itemFound {
				lines[i-1] += "\n"
			} else {
				itemFound = true
			}
		}
	}

	modifiedText := strings.Join(lines, "\n")
	_, err = f.Write([]byte(modifiedText))
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	r.log.Debug().Str("path", path).Int("count", len(report.Items)).Msg("stored season report")
	return nil
}
