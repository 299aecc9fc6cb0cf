package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func useTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ARRANGER_CONFIG_DIR", dir)
	return dir
}

func TestDefaultsWithoutFile(t *testing.T) {
	useTempDir(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if cfg.ResizeDebounceMs != 100 {
		t.Errorf("debounce = %d, want 100", cfg.ResizeDebounceMs)
	}
	if !cfg.StatusBar {
		t.Error("status bar should default on")
	}
	if cfg.CellWidthPx != 8 || cfg.CellHeightPx != 16 {
		t.Errorf("cell box = %dx%d, want 8x16", cfg.CellWidthPx, cfg.CellHeightPx)
	}
	if cfg.Keys["toggle-expand"] != "z" {
		t.Errorf("toggle key = %q, want z", cfg.Keys["toggle-expand"])
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	dir := useTempDir(t)
	content := `{"resize_debounce_ms": 250, "keys": {"toggle-expand": "m"}}`
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ResizeDebounceMs != 250 {
		t.Errorf("debounce = %d, want 250", cfg.ResizeDebounceMs)
	}
	if !cfg.StatusBar {
		t.Error("unset status bar should stay at the default")
	}
	if cfg.Keys["toggle-expand"] != "m" {
		t.Errorf("toggle key = %q, want m", cfg.Keys["toggle-expand"])
	}
	if cfg.Keys["quit"] != "q" {
		t.Errorf("unset quit key = %q, want default q", cfg.Keys["quit"])
	}
}

func TestMalformedFileFallsBackToDefaults(t *testing.T) {
	dir := useTempDir(t)
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil {
		t.Fatal("malformed file should surface an error")
	}
	if cfg.ResizeDebounceMs != 100 {
		t.Errorf("defaults should survive a parse failure, got debounce %d", cfg.ResizeDebounceMs)
	}
}

func TestWatchAppliesChanges(t *testing.T) {
	dir := useTempDir(t)
	path := filepath.Join(dir, configFileName)

	changed := make(chan *Config, 1)
	stop, err := Watch(func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer stop()

	if err := os.WriteFile(path, []byte(`{"resize_debounce_ms": 40}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-changed:
		if cfg.ResizeDebounceMs != 40 {
			t.Fatalf("reloaded debounce = %d, want 40", cfg.ResizeDebounceMs)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not observe the config write")
	}
}
