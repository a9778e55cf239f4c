package config_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/varoOP/seasondb/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantData := filepath.Join(home, ".local", "share", "seasondb")
	if cfg.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.DataDir, wantData)
	}
	if cfg.SeasonDir != filepath.Join(wantData, "season") {
		t.Fatalf("unexpected season dir: %q", cfg.SeasonDir)
	}
	if !cfg.HideAdultContent {
		t.Fatal("expected adult content hidden by default")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected log level %q", cfg.LogLevel)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.SetEnvPrefix("SEASONDB")
	viper.AutomaticEnv()

	t.Setenv("SEASONDB_SEASON_DIR", "/srv/season")
	t.Setenv("SEASONDB_HIDE_ADULT_CONTENT", "false")
	t.Setenv("SEASONDB_LOG_LEVEL", "DEBUG")
	t.Setenv("SEASONDB_DISCORD_WEBHOOK_URL", "https://discord.example/webhook")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SeasonDir != "/srv/season" {
		t.Fatalf("unexpected season dir %q", cfg.SeasonDir)
	}
	if cfg.HideAdultContent {
		t.Fatal("expected adult content filter disabled from env")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log level %q", cfg.LogLevel)
	}
	if cfg.DiscordWebhookURL != "https://discord.example/webhook" {
		t.Fatalf("unexpected webhook %q", cfg.DiscordWebhookURL)
	}
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("log_level", "loud")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestLoadRejectsEmptySeasonDir(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("season_dir", " ")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for empty season dir")
	}
}
