package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.RecentLimit != 15 {
		t.Fatalf("RecentLimit = %d, want 15", cfg.General.RecentLimit)
	}
	if cfg.Appearance.DarkTheme != "flexoki-dark" || cfg.Appearance.LightTheme != "flexoki-light" {
		t.Fatalf("themes = %q / %q, want flexoki defaults",
			cfg.Appearance.DarkTheme, cfg.Appearance.LightTheme)
	}
}

func TestLoad_ReadsSavedConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.RecentLimit = 30
	cfg.General.DataDir = "/tmp/spendwise-test"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.RecentLimit != 30 {
		t.Fatalf("RecentLimit = %d, want 30", got.General.RecentLimit)
	}
	if got.General.DataDir != "/tmp/spendwise-test" {
		t.Fatalf("DataDir = %q", got.General.DataDir)
	}
}

func TestLoad_PartialFileKeepsOtherDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "spendwise")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	partial := "[general]\nrecent_limit = 5\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(partial), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.RecentLimit != 5 {
		t.Fatalf("RecentLimit = %d, want 5", got.General.RecentLimit)
	}
	if got.Appearance.DarkTheme != "flexoki-dark" {
		t.Fatalf("DarkTheme = %q, want default preserved", got.Appearance.DarkTheme)
	}
}

func TestStorePath_HonorsDataDirOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/srv/data"
	if got := StorePath(cfg); got != filepath.Join("/srv/data", "spendwise.db") {
		t.Fatalf("StorePath = %q", got)
	}
}
