// Copyright © 2026 Arranger contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: arrange/tree.go
// Summary: Pane layout tree for the arrangement engine.
// Usage: Owned, strongly-typed view of the workspace's splits and tab groups.

package arrange

import (
	"crypto/rand"
	"log"
)

// SplitDir is the axis a Split lays its children along.
type SplitDir int

const (
	// Row places children side by side; their widths add up.
	Row SplitDir = iota
	// Column stacks children; their heights add up.
	Column
)

func (d SplitDir) String() string {
	switch d {
	case Row:
		return "row"
	case Column:
		return "column"
	}
	return "unknown"
}

// NodeKind discriminates the Node union.
type NodeKind int

const (
	KindSplit NodeKind = iota
	KindTabGroup
)

// TabGroup is an atomic pane hosting one or more stacked tabs. The layout
// algorithm never looks inside it; it is a leaf with a fixed minimum size.
type TabGroup struct {
	id     [16]byte
	Tabs   []string
	Active int
}

// NewTabGroup creates a tab group with the given tab titles.
func NewTabGroup(titles ...string) *TabGroup {
	g := &TabGroup{Tabs: titles}
	if _, err := rand.Read(g.id[:]); err != nil {
		log.Printf("TabGroup: Failed to generate id: %v", err)
	}
	return g
}

// ID returns the group's stable identity, used in event payloads.
func (g *TabGroup) ID() [16]byte {
	return g.id
}

// Title returns the title of the visible tab.
func (g *TabGroup) Title() string {
	if g.Active >= 0 && g.Active < len(g.Tabs) {
		return g.Tabs[g.Active]
	}
	return ""
}

// Node is one position in the layout tree: either a Split with an ordered
// list of children along a direction, or a TabGroup leaf. Node identity
// (the pointer) keys every per-node map in this package.
type Node struct {
	Parent   *Node
	Kind     NodeKind
	Dir      SplitDir // splits only
	Children []*Node  // splits only
	Group    *TabGroup // tab groups only
}

// NewSplit builds an internal node and adopts the given children.
func NewSplit(dir SplitDir, children ...*Node) *Node {
	n := &Node{Kind: KindSplit, Dir: dir, Children: children}
	for _, c := range children {
		c.Parent = n
	}
	return n
}

// NewLeaf wraps a tab group in a leaf node.
func NewLeaf(g *TabGroup) *Node {
	return &Node{Kind: KindTabGroup, Group: g}
}

// IsLeaf reports whether the node is a tab group.
func (n *Node) IsLeaf() bool {
	return n.Kind == KindTabGroup
}

// Title returns the visible tab title for leaves, or the split direction.
func (n *Node) Title() string {
	if n.IsLeaf() && n.Group != nil {
		return n.Group.Title()
	}
	return n.Dir.String() + " split"
}

// Tree manages the node hierarchy of the primary workspace area.
type Tree struct {
	Root       *Node
	ActiveLeaf *Node
}

// NewTree creates an empty layout tree.
func NewTree() *Tree {
	return &Tree{}
}

// SetRoot replaces the tree with a single leaf holding the given group.
func (t *Tree) SetRoot(g *TabGroup) *Node {
	leaf := NewLeaf(g)
	t.Root = leaf
	t.ActiveLeaf = leaf
	return leaf
}

// Contains reports whether node belongs to this tree. Panes living in
// auxiliary areas have no parent chain ending at the root.
func (t *Tree) Contains(node *Node) bool {
	if t == nil || t.Root == nil || node == nil {
		return false
	}
	for n := node; n != nil; n = n.Parent {
		if n == t.Root {
			return true
		}
	}
	return false
}

// AncestorPath returns the chain of Splits from the leaf's immediate parent
// up to, and excluding, the tree root. Ordered parent-first. Returns nil when
// the leaf is not part of the tree.
func (t *Tree) AncestorPath(leaf *Node) []*Node {
	if !t.Contains(leaf) {
		return nil
	}
	var path []*Node
	for n := leaf.Parent; n != nil && n != t.Root; n = n.Parent {
		path = append(path, n)
	}
	return path
}

// Traverse calls fn for every node in the tree, parents before children.
func (t *Tree) Traverse(fn func(*Node)) {
	traverse(t.Root, fn)
}

func traverse(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		traverse(child, fn)
	}
}

// FindFirstLeaf descends to the first tab group under node.
func (t *Tree) FindFirstLeaf(node *Node) *Node {
	curr := node
	for curr != nil && len(curr.Children) > 0 {
		curr = curr.Children[0]
	}
	return curr
}

// SplitActive splits the active leaf, attaching a new group. If the parent
// split already runs in the requested direction the new leaf joins the
// existing sibling list; otherwise the leaf becomes a split of two.
func (t *Tree) SplitActive(dir SplitDir, g *TabGroup) *Node {
	if t.ActiveLeaf == nil {
		log.Printf("Tree: SplitActive with no active leaf")
		return nil
	}

	target := t.ActiveLeaf
	parent := target.Parent
	newLeaf := NewLeaf(g)

	if parent != nil && parent.Dir == dir {
		newLeaf.Parent = parent
		idx := childIndex(parent, target)
		parent.Children = append(parent.Children, nil)
		copy(parent.Children[idx+2:], parent.Children[idx+1:])
		parent.Children[idx+1] = newLeaf
	} else {
		// The leaf becomes an internal node holding the old group and the
		// new one.
		oldLeaf := NewLeaf(target.Group)
		oldLeaf.Parent = target
		newLeaf.Parent = target
		target.Kind = KindSplit
		target.Group = nil
		target.Dir = dir
		target.Children = []*Node{oldLeaf, newLeaf}
	}

	t.ActiveLeaf = newLeaf
	log.Printf("Tree: Split %s, active leaf is now '%s'", dir, g.Title())
	return newLeaf
}

// CloseActiveLeaf removes the active leaf and returns the next leaf to
// activate. A split left with a single child is replaced by that child.
func (t *Tree) CloseActiveLeaf() *Node {
	leaf := t.ActiveLeaf
	if leaf == nil || leaf.Parent == nil {
		// Never close the root pane.
		return t.ActiveLeaf
	}

	parent := leaf.Parent
	idx := childIndex(parent, leaf)
	if idx < 0 {
		return t.ActiveLeaf
	}
	parent.Children = append(parent.Children[:idx], parent.Children[idx+1:]...)

	var next *Node
	if len(parent.Children) == 1 {
		remaining := parent.Children[0]
		grandparent := parent.Parent
		remaining.Parent = grandparent
		if grandparent == nil {
			t.Root = remaining
		} else {
			grandparent.Children[childIndex(grandparent, parent)] = remaining
		}
		next = t.FindFirstLeaf(remaining)
	} else {
		i := idx
		if i >= len(parent.Children) {
			i = len(parent.Children) - 1
		}
		next = t.FindFirstLeaf(parent.Children[i])
	}

	t.ActiveLeaf = next
	return next
}

// MoveDir is a focus-movement direction.
type MoveDir int

const (
	DirUp MoveDir = iota
	DirDown
	DirLeft
	DirRight
)

// MoveActive shifts focus to the neighboring leaf in the given direction,
// if one exists.
func (t *Tree) MoveActive(d MoveDir) {
	if target := t.FindNeighbor(d); target != nil {
		t.ActiveLeaf = target
	}
}

// FindNeighbor locates the leaf adjacent to the active leaf in direction d
// by walking up until a split along the matching axis has a sibling there.
func (t *Tree) FindNeighbor(d MoveDir) *Node {
	curr := t.ActiveLeaf
	if curr == nil {
		return nil
	}
	for curr.Parent != nil {
		parent := curr.Parent
		idx := childIndex(parent, curr)
		if idx < 0 {
			return nil
		}

		switch d {
		case DirRight:
			if parent.Dir == Row && idx+1 < len(parent.Children) {
				return t.FindFirstLeaf(parent.Children[idx+1])
			}
		case DirLeft:
			if parent.Dir == Row && idx-1 >= 0 {
				return t.FindFirstLeaf(parent.Children[idx-1])
			}
		case DirDown:
			if parent.Dir == Column && idx+1 < len(parent.Children) {
				return t.FindFirstLeaf(parent.Children[idx+1])
			}
		case DirUp:
			if parent.Dir == Column && idx-1 >= 0 {
				return t.FindFirstLeaf(parent.Children[idx-1])
			}
		}
		curr = parent
	}
	return nil
}

func childIndex(parent, child *Node) int {
	for i, c := range parent.Children {
		if c == child {
			return i
		}
	}
	return -1
}
