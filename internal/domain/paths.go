package domain

import "path/filepath"

const DatabaseFile = "seasondb.db"

// Paths holds the file locations derived from configuration
type Paths struct {
	SeasonDir    string
	DatabasePath string
}

// NewPaths creates a new Paths instance with all paths initialized
func NewPaths(cfg *Config) *Paths {
	return &Paths{
		SeasonDir:    cfg.SeasonDir,
		DatabasePath: filepath.Join(cfg.DataDir, DatabaseFile),
	}
}
