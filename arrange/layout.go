// Copyright © 2026 Arranger contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: arrange/layout.go
// Summary: Converts per-node weights into pixel rectangles for rendering.

package arrange

// Rect is an absolute pixel box, origin top-left.
type Rect struct {
	X, Y, W, H int
}

// LayoutTree assigns every node under root a pixel rectangle, splitting each
// split's main axis according to the children's weights. Children without an
// explicit weight share the space evenly, which is what "cleared weights"
// renders as. The rectangles of a split's children partition its own box
// exactly: the last child absorbs the integer remainder.
func LayoutTree(root *Node, weights Weights, x, y, w, h int, out map[*Node]Rect) {
	if root == nil {
		return
	}
	out[root] = Rect{X: x, Y: y, W: w, H: h}
	if root.IsLeaf() || len(root.Children) == 0 {
		return
	}

	shares := make([]float64, len(root.Children))
	total := 0.0
	for i, child := range root.Children {
		share, ok := weights[child]
		if !ok || share <= 0 {
			share = 100.0 / float64(len(root.Children))
		}
		shares[i] = share
		total += share
	}
	if total <= 0 {
		even := 1.0 / float64(len(root.Children))
		for i := range shares {
			shares[i] = even
		}
		total = 1.0
	}

	if root.Dir == Row {
		currX := x
		for i, child := range root.Children {
			childW := int(float64(w) * shares[i] / total)
			if i == len(root.Children)-1 {
				childW = x + w - currX
			}
			LayoutTree(child, weights, currX, y, childW, h, out)
			currX += childW
		}
	} else {
		currY := y
		for i, child := range root.Children {
			childH := int(float64(h) * shares[i] / total)
			if i == len(root.Children)-1 {
				childH = y + h - currY
			}
			LayoutTree(child, weights, x, currY, w, childH, out)
			currY += childH
		}
	}
}
