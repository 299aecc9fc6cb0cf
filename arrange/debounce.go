// Copyright © 2026 Arranger contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: arrange/debounce.go
// Summary: Coalesces bursts of resize signals into one recomputation.

package arrange

import (
	"sync"
	"time"
)

// Debouncer runs the most recently triggered function once, after no new
// trigger has arrived for a full window. Intermediate triggers in a burst
// are dropped; the last one wins.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
}

// NewDebouncer creates a debouncer with the given settle window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// SetWindow changes the settle window for subsequent triggers.
func (d *Debouncer) SetWindow(window time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.window = window
}

// Window returns the current settle window.
func (d *Debouncer) Window() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.window
}

// Trigger schedules fn, replacing any previously scheduled function.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, fn)
}

// Stop cancels any pending trigger.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
