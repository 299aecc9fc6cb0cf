// Copyright © 2026 Arranger contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: arrange/resize.go
// Summary: Top-down proportional weight assignment along the active path.

package arrange

// Weights maps node identity to its share (0–100) of the parent split's
// main-axis space. The shares of one split's children always sum to 100.
// A node absent from the map renders at the default even distribution.
type Weights map[*Node]float64

// Resize walks the subtree under node and emits a weight for each child,
// enlarging the branch that leads to the active pane while reserving only
// the minimum for every sibling subtree. route is the chain of nodes from
// the active leaf (inclusive) up to, and excluding, the tree root; at any
// split at most one child lies on it. availW/availH is the node's real
// rendered box in pixels.
//
// Splits with no child on the route distribute their space evenly, so
// subtrees off the active branch stay internally balanced. When the
// reserved minimums alone exceed the container, the active branch is
// clamped to its floor and the layout overflows; degraded but safe.
func Resize(node *Node, minSizes MinSizeMap, route []*Node, availW, availH int, out Weights) {
	if node == nil || node.IsLeaf() || len(node.Children) == 0 {
		return
	}

	main := availW
	floor := MinPaneWidth
	if node.Dir == Column {
		main = availH
		floor = MinPaneHeight
	}

	var pathChild *Node
	nonPathMin := 0
	for _, child := range node.Children {
		if onRoute(route, child) {
			pathChild = child
		} else {
			nonPathMin += onAxisMin(minSizes, child, node.Dir)
		}
	}

	if pathChild == nil {
		even := 100.0 / float64(len(node.Children))
		for _, child := range node.Children {
			out[child] = even
		}
	} else {
		pathShare := main - nonPathMin
		if pathShare < floor {
			pathShare = floor
		}
		pathWeight := 100 * float64(pathShare) / float64(pathShare+nonPathMin)
		out[pathChild] = pathWeight
		if rest := len(node.Children) - 1; rest > 0 {
			share := (100 - pathWeight) / float64(rest)
			for _, child := range node.Children {
				if child != pathChild {
					out[child] = share
				}
			}
		}
	}

	// Recurse with each child's own pixel box so nested splits see real
	// container sizes. The cross axis stretches to fill the parent.
	used := 0
	for i, child := range node.Children {
		span := int(float64(main) * out[child] / 100)
		if i == len(node.Children)-1 {
			span = main - used
		}
		used += span
		if child.IsLeaf() {
			continue
		}
		if node.Dir == Row {
			Resize(child, minSizes, route, span, availH, out)
		} else {
			Resize(child, minSizes, route, availW, span, out)
		}
	}
}

func onRoute(route []*Node, n *Node) bool {
	for _, r := range route {
		if r == n {
			return true
		}
	}
	return false
}

func onAxisMin(minSizes MinSizeMap, n *Node, dir SplitDir) int {
	s := minSizes[n]
	if dir == Row {
		return s.W
	}
	return s.H
}
