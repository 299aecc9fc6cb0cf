// Copyright © 2026 Arranger contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Config file location resolution.

package config

import (
	"os"
	"path/filepath"
)

const configFileName = "arranger.json"

// Dir returns the arranger config directory, honoring ARRANGER_CONFIG_DIR
// for tests and portable setups.
func Dir() (string, error) {
	if dir := os.Getenv("ARRANGER_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "arranger"), nil
}

// Path returns the full path of the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
