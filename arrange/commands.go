// Copyright © 2026 Arranger contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: arrange/commands.go
// Summary: Command surface for the three arrangement actions.

package arrange

import (
	"fmt"
	"sort"
	"sync"
)

// Command ids exposed to the host's command palette. None take arguments
// and none are bound to keys by default.
const (
	CmdArrangeEvenly = "arrange-editor-groups-evenly"
	CmdExpandActive  = "arrange-editor-groups-expand-active"
	CmdToggleExpand  = "arrange-editor-groups-toggle-expand"
)

// CommandRegistry maps command ids to handlers.
type CommandRegistry struct {
	mu       sync.RWMutex
	handlers map[string]func() error
}

// NewCommandRegistry builds a registry pre-wired with the three arrangement
// commands of the given controller.
func NewCommandRegistry(c *Controller) *CommandRegistry {
	r := &CommandRegistry{handlers: make(map[string]func() error)}
	r.Register(CmdArrangeEvenly, func() error {
		c.ArrangeEvenly()
		return nil
	})
	r.Register(CmdExpandActive, func() error {
		return c.ExpandActiveLeaf(nil)
	})
	r.Register(CmdToggleExpand, c.ToggleExpand)
	return r
}

// Register adds or replaces a command handler.
func (r *CommandRegistry) Register(id string, fn func() error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[id] = fn
}

// Dispatch runs the handler for id. Unknown ids are an error.
func (r *CommandRegistry) Dispatch(id string) error {
	r.mu.RLock()
	fn, ok := r.handlers[id]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown command %q", id)
	}
	return fn()
}

// IDs lists the registered command ids, sorted.
func (r *CommandRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
