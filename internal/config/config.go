package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/varoOP/seasondb/internal/domain"
)

// Defaults registers default values for every configuration key
func Defaults() {
	viper.SetDefault("season_dir", filepath.Join(defaultDataDir(), "season"))
	viper.SetDefault("data_dir", defaultDataDir())
	viper.SetDefault("hide_adult_content", true)
	viper.SetDefault("log_level", "info")
}

// Load loads configuration from multiple sources:
// 1. Config file (config.yaml, optional)
// 2. Environment variables (SEASONDB_*)
// 3. Command line flags bound by the CLI
func Load() (*domain.Config, error) {
	Defaults()

	cfg := &domain.Config{
		SeasonDir:         viper.GetString("season_dir"),
		DataDir:           viper.GetString("data_dir"),
		HideAdultContent:  viper.GetBool("hide_adult_content"),
		DiscordWebhookURL: viper.GetString("discord_webhook_url"),
		LogLevel:          strings.ToLower(viper.GetString("log_level")),
	}

	if strings.TrimSpace(cfg.SeasonDir) == "" {
		return nil, fmt.Errorf("season_dir is required (set via config.yaml, --season-dir or SEASONDB_SEASON_DIR)")
	}
	if strings.TrimSpace(cfg.DataDir) == "" {
		return nil, fmt.Errorf("data_dir is required (set via config.yaml, --data-dir or SEASONDB_DATA_DIR)")
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log_level: %s (must be 'trace', 'debug', 'info', 'warn' or 'error')", cfg.LogLevel)
	}

	return cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "seasondb")
}
