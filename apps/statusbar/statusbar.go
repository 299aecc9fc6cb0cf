// Copyright © 2026 Arranger contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/statusbar/statusbar.go
// Summary: Clickable status-line segment reflecting the arrangement mode.
// Usage: Subscribed to the controller's dispatcher; rendered by the screen.

package statusbar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/vailmont/arranger/arrange"
)

const (
	expandedIcon = "▣"
	normalIcon   = "▢"

	// noticeTTL is how long a user notice stays on the bar.
	noticeTTL = 4 * time.Second
)

// StatusBar tracks arrangement state from dispatcher events and renders the
// one-line indicator. Clicking anywhere on the line toggles the expansion;
// the click itself is routed by the screen.
type StatusBar struct {
	mu       sync.RWMutex
	mode     arrange.Mode
	title    string
	notice   string
	noticeAt time.Time
}

// New creates a status bar showing the initial Normal state.
func New() *StatusBar {
	return &StatusBar{}
}

// OnEvent implements arrange.Listener.
func (b *StatusBar) OnEvent(event arrange.Event) {
	switch event.Type {
	case arrange.EventStateUpdate:
		payload, ok := event.Payload.(arrange.StatePayload)
		if !ok {
			return
		}
		b.mu.Lock()
		b.mode = payload.Mode
		b.title = payload.ActiveTitle
		b.mu.Unlock()
	case arrange.EventNotice:
		msg, ok := event.Payload.(string)
		if !ok {
			return
		}
		b.mu.Lock()
		b.notice = msg
		b.noticeAt = time.Now()
		b.mu.Unlock()
	}
}

// Mode returns the mode currently shown.
func (b *StatusBar) Mode() arrange.Mode {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.mode
}

// Line renders the bar's text for the given terminal width, truncated and
// padded to exactly that display width.
func (b *StatusBar) Line(width int) string {
	b.mu.RLock()
	mode := b.mode
	title := b.title
	notice := b.notice
	noticeAt := b.noticeAt
	b.mu.RUnlock()

	icon := normalIcon
	if mode == arrange.ModeExpanded {
		icon = expandedIcon
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, " %s %s ", icon, mode)
	if title != "" {
		fmt.Fprintf(&sb, "│ %s ", title)
	}
	if notice != "" && time.Since(noticeAt) < noticeTTL {
		fmt.Fprintf(&sb, "│ %s ", notice)
	}

	line := sb.String()
	if runewidth.StringWidth(line) > width {
		line = runewidth.Truncate(line, width, "…")
	}
	return runewidth.FillRight(line, width)
}
