package arrange

import "testing"

func TestAncestorPathOrderAndRootExclusion(t *testing.T) {
	tree, a, _, _, left, _ := specTree()

	path := tree.AncestorPath(a)
	if len(path) != 1 {
		t.Fatalf("path length = %d, want 1", len(path))
	}
	if path[0] != left {
		t.Fatalf("path[0] should be the immediate parent column")
	}
	for _, n := range path {
		if n == tree.Root {
			t.Fatal("ancestor path must never contain the tree root")
		}
	}
}

func TestAncestorPathDeepNesting(t *testing.T) {
	a := leaf("a")
	inner := NewSplit(Row, a, leaf("b"))
	mid := NewSplit(Column, inner, leaf("c"))
	root := NewSplit(Row, mid, leaf("d"))
	tree := NewTree()
	tree.Root = root

	path := tree.AncestorPath(a)
	if len(path) != 2 || path[0] != inner || path[1] != mid {
		t.Fatalf("path = %v, want [inner, mid] parent-first", path)
	}
}

func TestContainsRejectsDetachedLeaf(t *testing.T) {
	tree, _, _, _, _, _ := specTree()
	outside := leaf("sidebar")
	if tree.Contains(outside) {
		t.Fatal("detached leaf must not be contained")
	}
	if tree.AncestorPath(outside) != nil {
		t.Fatal("ancestor path of a detached leaf must be nil")
	}
}

func TestSetRootActivatesLeaf(t *testing.T) {
	tree := NewTree()
	n := tree.SetRoot(NewTabGroup("welcome"))
	if tree.Root != n || tree.ActiveLeaf != n {
		t.Fatal("SetRoot must install the leaf as root and active")
	}
}

func TestSplitActiveCreatesNewGroup(t *testing.T) {
	tree := NewTree()
	tree.SetRoot(NewTabGroup("a"))
	n := tree.SplitActive(Row, NewTabGroup("b"))

	if tree.Root.Kind != KindSplit || tree.Root.Dir != Row {
		t.Fatalf("root should have become a row split")
	}
	if len(tree.Root.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(tree.Root.Children))
	}
	if tree.ActiveLeaf != n {
		t.Fatal("new leaf should be active")
	}
}

func TestSplitActiveJoinsMatchingDirection(t *testing.T) {
	tree := NewTree()
	tree.SetRoot(NewTabGroup("a"))
	tree.SplitActive(Row, NewTabGroup("b"))
	tree.SplitActive(Row, NewTabGroup("c"))

	if len(tree.Root.Children) != 3 {
		t.Fatalf("same-direction split should extend the group, got %d children", len(tree.Root.Children))
	}
}

func TestSplitActiveNestsOnDirectionChange(t *testing.T) {
	tree := NewTree()
	tree.SetRoot(NewTabGroup("a"))
	tree.SplitActive(Row, NewTabGroup("b"))
	tree.SplitActive(Column, NewTabGroup("c"))

	if len(tree.Root.Children) != 2 {
		t.Fatalf("root should keep 2 children, got %d", len(tree.Root.Children))
	}
	nested := tree.Root.Children[1]
	if nested.Kind != KindSplit || nested.Dir != Column || len(nested.Children) != 2 {
		t.Fatalf("second child should be a column split of two")
	}
}

func TestCloseActiveLeafPromotesSingleChild(t *testing.T) {
	tree := NewTree()
	tree.SetRoot(NewTabGroup("a"))
	tree.SplitActive(Row, NewTabGroup("b"))

	next := tree.CloseActiveLeaf()
	if tree.Root.Kind != KindTabGroup {
		t.Fatal("closing one of two should promote the survivor to root")
	}
	if next != tree.Root || tree.ActiveLeaf != tree.Root {
		t.Fatal("survivor should be the next active leaf")
	}
}

func TestCloseRootIsRefused(t *testing.T) {
	tree := NewTree()
	tree.SetRoot(NewTabGroup("a"))
	if got := tree.CloseActiveLeaf(); got != tree.Root {
		t.Fatal("root pane must not be closed")
	}
}

func TestFindNeighborAcrossSplit(t *testing.T) {
	tree, a, b, c, _, _ := specTree()

	tree.ActiveLeaf = a
	if got := tree.FindNeighbor(DirDown); got != b {
		t.Errorf("neighbor below a = %v, want b", got)
	}
	if got := tree.FindNeighbor(DirRight); got != c {
		t.Errorf("neighbor right of a = %v, want c", got)
	}
	if got := tree.FindNeighbor(DirLeft); got != nil {
		t.Errorf("no neighbor left of a, got %v", got)
	}

	tree.MoveActive(DirRight)
	if tree.ActiveLeaf != c {
		t.Fatal("MoveActive should shift focus to c")
	}
}
