// Copyright © 2026 Arranger contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: arrange/minsize.go
// Summary: Bottom-up minimum-size computation over the pane tree.

package arrange

import "fmt"

// Per-pane size floors, in pixels. Every tab group reports the same minimum
// regardless of how many tabs it stacks.
const (
	MinPaneWidth  = 200
	MinPaneHeight = 80
)

// Size is a width/height pair in pixels.
type Size struct {
	W, H int
}

// MinSizeMap records the minimum renderable size of every node visited by
// ComputeMinSize, keyed by node identity. Built once per arrangement
// operation and discarded afterwards.
type MinSizeMap map[*Node]Size

// ComputeMinSize returns the smallest box the subtree rooted at n can be
// rendered in without pushing any tab group below its floor, recording the
// result for n and every descendant in out. A row split is as wide as its
// children combined and as tall as its tallest child; a column split is the
// transpose. The tree is assumed well-formed by construction: a node with an
// unrecognized kind or direction is an invariant violation and panics.
func ComputeMinSize(n *Node, out MinSizeMap) Size {
	switch n.Kind {
	case KindTabGroup:
		s := Size{W: MinPaneWidth, H: MinPaneHeight}
		if out != nil {
			out[n] = s
		}
		return s

	case KindSplit:
		var s Size
		switch n.Dir {
		case Row:
			for _, child := range n.Children {
				cs := ComputeMinSize(child, out)
				s.W += cs.W
				if cs.H > s.H {
					s.H = cs.H
				}
			}
		case Column:
			for _, child := range n.Children {
				cs := ComputeMinSize(child, out)
				s.H += cs.H
				if cs.W > s.W {
					s.W = cs.W
				}
			}
		default:
			panic(fmt.Sprintf("arrange: split has unknown direction %d", int(n.Dir)))
		}
		if out != nil {
			out[n] = s
		}
		return s
	}
	panic(fmt.Sprintf("arrange: node has unknown kind %d", int(n.Kind)))
}
