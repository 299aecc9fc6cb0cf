// Copyright © 2026 Arranger contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/watcher.go
// Summary: Live config reload via filesystem notification.

package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config whenever the file changes and hands the result
// to onChange. The enclosing directory is watched, not the file itself,
// since editors typically replace the file on save. Returns a stop
// function. Watching fails (e.g. the directory does not exist) without
// affecting the already-loaded config.
func Watch(onChange func(*Config)) (func(), error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				log.Printf("Config: %s changed (%s), reloading", event.Name, event.Op)
				cfg, err := loadFile(path)
				if err != nil {
					log.Printf("Config: Reload failed, keeping previous settings: %v", err)
					continue
				}
				onChange(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Config: Watch error: %v", err)
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}
