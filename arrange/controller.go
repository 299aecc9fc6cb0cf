// Copyright © 2026 Arranger contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: arrange/controller.go
// Summary: Arrangement controller: Normal/Expanded mode state machine.

package arrange

import (
	"errors"
	"log"
	"sync"
	"time"
)

// Mode is the workspace arrangement mode. It is never persisted; every
// process starts out Normal.
type Mode int

const (
	// ModeNormal renders every split at the default even distribution.
	ModeNormal Mode = iota
	// ModeExpanded enlarges the branch holding the active pane.
	ModeExpanded
)

func (m Mode) String() string {
	if m == ModeExpanded {
		return "Expanded"
	}
	return "Normal"
}

// DefaultResizeDebounce is the settle window for resize-triggered
// recomputation.
const DefaultResizeDebounce = 100 * time.Millisecond

// ErrNoActivePane is reported when an expand operation cannot resolve a
// focused pane inside the primary tree. Non-fatal; the arrangement is left
// untouched.
var ErrNoActivePane = errors.New("no active pane to expand")

// Controller owns the arrangement mode and the explicit weight assignment.
// All mutations go through its three operations; triggers (clicks, focus
// changes, resizes) funnel into the same operations.
type Controller struct {
	tree       *Tree
	dispatcher *EventDispatcher
	rootSize   func() (int, int)
	debouncer  *Debouncer
	resized    chan struct{}

	mu        sync.Mutex
	mode      Mode
	weights   Weights
	expanded  *Node
	lastState StatePayload
	stateSent bool
}

// NewController creates a controller over the given tree. rootSize reads the
// root container's real rendered box in pixels; it is consulted fresh on
// every expansion so weights always reflect current dimensions.
func NewController(tree *Tree, dispatcher *EventDispatcher, rootSize func() (int, int)) *Controller {
	return &Controller{
		tree:       tree,
		dispatcher: dispatcher,
		rootSize:   rootSize,
		debouncer:  NewDebouncer(DefaultResizeDebounce),
		resized:    make(chan struct{}, 1),
		weights:    make(Weights),
	}
}

// Mode returns the current arrangement mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Weights returns the current explicit weight assignment. The map is
// replaced wholesale by every operation, never mutated in place, so holding
// a reference across operations is safe for readers.
func (c *Controller) Weights() Weights {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.weights
}

// ExpandedLeaf returns the leaf the current expansion targets, or nil.
func (c *Controller) ExpandedLeaf() *Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expanded
}

// Debouncer exposes the resize coalescer so configuration can retune its
// window.
func (c *Controller) Debouncer() *Debouncer {
	return c.debouncer
}

// ArrangeEvenly clears every explicit weight, reverting all splits to the
// renderer's default even distribution, and returns the mode to Normal.
// Calling it while already Normal is a no-op in effect.
func (c *Controller) ArrangeEvenly() {
	c.mu.Lock()
	c.weights = make(Weights)
	c.expanded = nil
	c.mode = ModeNormal
	c.mu.Unlock()

	log.Printf("Controller: Arranged evenly")
	c.broadcastState()
}

// ExpandActiveLeaf enlarges the branch holding target, or the currently
// focused pane when target is nil. Siblings off the active branch shrink to
// their minimum floors. Returns ErrNoActivePane, leaving mode and weights
// untouched, when no pane can be resolved inside the primary tree.
func (c *Controller) ExpandActiveLeaf(target *Node) error {
	c.mu.Lock()

	leaf := target
	if leaf == nil {
		leaf = c.tree.ActiveLeaf
	}
	if leaf == nil || !leaf.IsLeaf() || !c.tree.Contains(leaf) {
		c.mu.Unlock()
		log.Printf("Controller: Expand failed, no active pane in the primary tree")
		c.notice("No active pane to expand")
		return ErrNoActivePane
	}

	w, h := c.rootSize()

	// Fresh maps every time: the computation either completes and is
	// swapped in whole, or nothing changes.
	minSizes := make(MinSizeMap)
	ComputeMinSize(c.tree.Root, minSizes)

	route := append([]*Node{leaf}, c.tree.AncestorPath(leaf)...)

	weights := make(Weights)
	Resize(c.tree.Root, minSizes, route, w, h, weights)

	c.weights = weights
	c.expanded = leaf
	c.mode = ModeExpanded
	c.mu.Unlock()

	log.Printf("Controller: Expanded pane '%s' in %dx%d", leaf.Title(), w, h)
	c.broadcastState()
	return nil
}

// ToggleExpand flips between the two arrangements: collapse when Expanded,
// expand the focused pane when Normal.
func (c *Controller) ToggleExpand() error {
	if c.Mode() == ModeExpanded {
		c.ArrangeEvenly()
		return nil
	}
	return c.ExpandActiveLeaf(nil)
}

// PaneClicked re-targets the expansion when a tab header is clicked while
// Expanded. In Normal mode a click only moves focus, which the caller has
// already done.
func (c *Controller) PaneClicked(leaf *Node) {
	if c.Mode() != ModeExpanded {
		return
	}
	if err := c.ExpandActiveLeaf(leaf); err != nil {
		log.Printf("Controller: Re-expand on click failed: %v", err)
	}
}

// FocusChanged re-runs the expansion onto the newly focused pane while
// Expanded, but only when that pane is confirmed to live in the primary
// tree; focus moving to an auxiliary area leaves the arrangement alone.
func (c *Controller) FocusChanged(leaf *Node) {
	if c.Mode() != ModeExpanded {
		return
	}
	if leaf == nil || !c.tree.Contains(leaf) {
		return
	}
	if err := c.ExpandActiveLeaf(leaf); err != nil {
		log.Printf("Controller: Re-expand on focus change failed: %v", err)
	}
}

// WindowResized schedules a recompute of the expansion after the root
// container changed size. Bursts are coalesced: only the last signal within
// the debounce window survives. The fire itself never touches the tree; it
// just posts on ResizeSignal, and the owner's event loop calls ApplyResize
// on its own thread. The tree is only ever read and mutated there.
func (c *Controller) WindowResized() {
	if c.Mode() != ModeExpanded {
		return
	}
	c.debouncer.Trigger(func() {
		select {
		case c.resized <- struct{}{}:
		default:
		}
	})
}

// ResizeSignal delivers debounced resize fires. The owning event loop must
// drain it and call ApplyResize for each signal.
func (c *Controller) ResizeSignal() <-chan struct{} {
	return c.resized
}

// ApplyResize re-runs the expansion for the currently expanded pane,
// reading the container size now. It is a no-op unless still Expanded.
func (c *Controller) ApplyResize() {
	c.mu.Lock()
	leaf := c.expanded
	mode := c.mode
	c.mu.Unlock()
	if mode != ModeExpanded || leaf == nil {
		return
	}
	if err := c.ExpandActiveLeaf(leaf); err != nil {
		log.Printf("Controller: Re-expand after resize failed: %v", err)
	}
}

// Close cancels any pending debounced work.
func (c *Controller) Close() {
	c.debouncer.Stop()
}

func (c *Controller) broadcastState() {
	if c.dispatcher == nil {
		return
	}

	c.mu.Lock()
	payload := StatePayload{Mode: c.mode}
	if c.tree.ActiveLeaf != nil && c.tree.ActiveLeaf.Group != nil {
		payload.ActiveTitle = c.tree.ActiveLeaf.Group.Title()
		payload.ActivePane = c.tree.ActiveLeaf.Group.ID()
	}
	if c.stateSent && payload.equal(c.lastState) {
		c.mu.Unlock()
		return
	}
	c.lastState = payload
	c.stateSent = true
	c.mu.Unlock()

	c.dispatcher.Broadcast(Event{Type: EventStateUpdate, Payload: payload})
}

func (c *Controller) notice(msg string) {
	if c.dispatcher == nil {
		return
	}
	c.dispatcher.Broadcast(Event{Type: EventNotice, Payload: msg})
}
