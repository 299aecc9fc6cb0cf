// Copyright © 2026 Arranger contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: arrange/dispatcher.go
// Summary: Event dispatcher connecting the controller to status listeners.

package arrange

import "sync"

// EventType defines the type of an event.
type EventType int

const (
	// EventStateUpdate carries a StatePayload after a mode transition.
	EventStateUpdate EventType = iota
	// EventTreeChanged signals that the pane tree was restructured.
	EventTreeChanged
	// EventNotice carries a user-visible, non-fatal notice string.
	EventNotice
)

// Event represents a message passed through the system.
type Event struct {
	Type    EventType
	Payload interface{}
}

// StatePayload is the data associated with an EventStateUpdate.
type StatePayload struct {
	Mode        Mode
	ActiveTitle string
	ActivePane  [16]byte
}

func (s StatePayload) equal(other StatePayload) bool {
	return s.Mode == other.Mode &&
		s.ActiveTitle == other.ActiveTitle &&
		s.ActivePane == other.ActivePane
}

// Listener is implemented by any component that wants events.
type Listener interface {
	OnEvent(event Event)
}

// EventDispatcher manages a list of listeners and broadcasts events to them.
type EventDispatcher struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewEventDispatcher creates a new dispatcher.
func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{listeners: make([]Listener, 0)}
}

// Subscribe adds a new listener to receive events.
func (d *EventDispatcher) Subscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, listener)
}

// Unsubscribe removes a listener.
func (d *EventDispatcher) Unsubscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, l := range d.listeners {
		if l == listener {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Broadcast delivers the event to every subscribed listener, in order.
func (d *EventDispatcher) Broadcast(event Event) {
	d.mu.RLock()
	listeners := make([]Listener, len(d.listeners))
	copy(listeners, d.listeners)
	d.mu.RUnlock()

	for _, l := range listeners {
		l.OnEvent(event)
	}
}
