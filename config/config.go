// Copyright © 2026 Arranger contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Optional JSON configuration for the arranger shell.

package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
)

// Config tunes the demo shell. Every field has a default that reproduces
// the stock behavior, so running without a config file changes nothing.
type Config struct {
	// ResizeDebounceMs is the settle window for resize-triggered
	// recomputation while Expanded.
	ResizeDebounceMs int `json:"resize_debounce_ms"`
	// StatusBar toggles the one-line mode indicator.
	StatusBar bool `json:"status_bar"`
	// CellWidthPx / CellHeightPx map terminal cells onto the layout
	// engine's pixel space.
	CellWidthPx  int `json:"cell_width_px"`
	CellHeightPx int `json:"cell_height_px"`
	// Keys binds single-rune keys to actions (see DefaultKeys).
	Keys map[string]string `json:"keys"`
}

// DefaultKeys is the stock action→key binding table.
func DefaultKeys() map[string]string {
	return map[string]string{
		"toggle-expand":  "z",
		"expand-active":  "x",
		"arrange-evenly": "e",
		"split-row":      "|",
		"split-column":   "-",
		"close-pane":     "c",
		"quit":           "q",
	}
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		ResizeDebounceMs: 100,
		StatusBar:        true,
		CellWidthPx:      8,
		CellHeightPx:     16,
		Keys:             DefaultKeys(),
	}
}

// Load reads the user's config file, falling back to defaults for missing
// fields. A missing file is not an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		log.Printf("Config: Failed to resolve config path: %v", err)
		return Default(), err
	}
	return loadFile(path)
}

func loadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		log.Printf("Config: Failed to read %s: %v", path, err)
		return cfg, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		log.Printf("Config: Failed to parse %s: %v", path, err)
		return Default(), err
	}
	cfg.applyDefaults()
	log.Printf("Config: Loaded %s", path)
	return cfg, nil
}

// applyDefaults backfills zero values so a partial file keeps the rest of
// the stock behavior.
func (c *Config) applyDefaults() {
	def := Default()
	if c.ResizeDebounceMs <= 0 {
		c.ResizeDebounceMs = def.ResizeDebounceMs
	}
	if c.CellWidthPx <= 0 {
		c.CellWidthPx = def.CellWidthPx
	}
	if c.CellHeightPx <= 0 {
		c.CellHeightPx = def.CellHeightPx
	}
	if c.Keys == nil {
		c.Keys = DefaultKeys()
		return
	}
	for action, key := range DefaultKeys() {
		if _, ok := c.Keys[action]; !ok {
			c.Keys[action] = key
		}
	}
}
