package screen

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/vailmont/arranger/arrange"
	"github.com/vailmont/arranger/config"
)

type stubDriver struct {
	width, height int
	initCalled    bool
	finiCalled    bool
	mouseEnabled  bool
	cells         map[[2]int]rune
}

func newStubDriver(w, h int) *stubDriver {
	return &stubDriver{width: w, height: h, cells: make(map[[2]int]rune)}
}

func (s *stubDriver) Init() error {
	s.initCalled = true
	return nil
}

func (s *stubDriver) Fini() {
	s.finiCalled = true
}

func (s *stubDriver) Size() (int, int) {
	return s.width, s.height
}

func (s *stubDriver) SetStyle(style tcell.Style) {}

func (s *stubDriver) HideCursor() {}

func (s *stubDriver) EnableMouse() {
	s.mouseEnabled = true
}

func (s *stubDriver) Clear() {
	s.cells = make(map[[2]int]rune)
}

func (s *stubDriver) Show() {}

func (s *stubDriver) PollEvent() tcell.Event { return nil }

func (s *stubDriver) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	s.cells[[2]int{x, y}] = mainc
}

func (s *stubDriver) row(y int) string {
	out := make([]rune, 0, s.width)
	for x := 0; x < s.width; x++ {
		ch, ok := s.cells[[2]int{x, y}]
		if !ok {
			ch = ' '
		}
		out = append(out, ch)
	}
	return string(out)
}

// newTestScreen builds a screen over a row of two columns, the left column
// holding a and b, the right holding c. 120x41 cells with an 8x16 cell box
// gives the engine a 960x640 primary area after the status line.
func newTestScreen(t *testing.T) (*Screen, *stubDriver, *arrange.Node, *arrange.Node, *arrange.Node) {
	t.Helper()
	a := arrange.NewLeaf(arrange.NewTabGroup("a"))
	b := arrange.NewLeaf(arrange.NewTabGroup("b"))
	c := arrange.NewLeaf(arrange.NewTabGroup("c"))
	left := arrange.NewSplit(arrange.Column, a, b)
	right := arrange.NewSplit(arrange.Column, c)
	root := arrange.NewSplit(arrange.Row, left, right)
	tree := arrange.NewTree()
	tree.Root = root
	tree.ActiveLeaf = a

	driver := newStubDriver(120, 41)
	s := New(driver, tree, config.Default())
	return s, driver, a, b, c
}

func TestRootSizeExcludesStatusLine(t *testing.T) {
	s, _, _, _, _ := newTestScreen(t)
	w, h := s.rootSizePx()
	if w != 120*8 || h != 40*16 {
		t.Fatalf("root box = %dx%d px, want 960x640", w, h)
	}
}

func TestDrawTilesWithoutOverlap(t *testing.T) {
	s, driver, a, b, c := newTestScreen(t)
	s.Draw()

	// Even arrangement: the row splits 60/60 cells, the left column splits
	// 20/20 rows.
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, leafNode := range []*arrange.Node{a, b, c} {
		if _, ok := s.rects[leafNode]; !ok {
			t.Fatalf("no rect for %s", leafNode.Title())
		}
	}
	x0, _, x1, _ := s.cellBox(s.rects[a])
	if x0 != 0 || x1 != 60 {
		t.Errorf("pane a spans cells %d..%d, want 0..60", x0, x1)
	}
	x0, _, x1, _ = s.cellBox(s.rects[c])
	if x0 != 60 || x1 != 120 {
		t.Errorf("pane c spans cells %d..%d, want 60..120", x0, x1)
	}
	if driver.cells[[2]int{0, 0}] != tcell.RuneULCorner {
		t.Error("top-left corner not drawn")
	}
}

func TestExpandChangesRenderedBoxes(t *testing.T) {
	s, _, a, _, _ := newTestScreen(t)

	if err := s.Commands().Dispatch(arrange.CmdExpandActive); err != nil {
		t.Fatalf("expand: %v", err)
	}
	s.Draw()

	s.mu.Lock()
	ra := s.rects[a]
	s.mu.Unlock()
	// Path share: 960 - 200 = 760 px of the 960px row.
	if ra.W != 760 {
		t.Fatalf("expanded pane width = %dpx, want 760", ra.W)
	}
}

func TestStatusLineClickToggles(t *testing.T) {
	s, _, _, _, _ := newTestScreen(t)
	s.Draw()

	click := tcell.NewEventMouse(3, 40, tcell.Button1, tcell.ModNone)
	release := tcell.NewEventMouse(3, 40, tcell.ButtonNone, tcell.ModNone)
	s.handleEvent(click)
	s.handleEvent(release)

	if s.Controller().Mode() != arrange.ModeExpanded {
		t.Fatal("clicking the status line should toggle to Expanded")
	}
	s.handleEvent(tcell.NewEventMouse(3, 40, tcell.Button1, tcell.ModNone))
	if s.Controller().Mode() != arrange.ModeNormal {
		t.Fatal("second click should toggle back to Normal")
	}
}

func TestTabHeaderClickReExpands(t *testing.T) {
	s, _, _, _, c := newTestScreen(t)
	s.Draw()

	if err := s.Commands().Dispatch(arrange.CmdExpandActive); err != nil {
		t.Fatalf("expand: %v", err)
	}
	s.Draw()

	// c's header row is the top of the right branch.
	s.mu.Lock()
	_, y0, x1, _ := s.cellBox(s.rects[c])
	s.mu.Unlock()
	s.handleEvent(tcell.NewEventMouse(x1-2, y0, tcell.Button1, tcell.ModNone))

	if got := s.Controller().ExpandedLeaf(); got != c {
		t.Fatalf("expanded leaf = %v, want the clicked pane", got)
	}
	if s.tree.ActiveLeaf != c {
		t.Fatal("click should move focus to the clicked pane")
	}
}

func TestStatusBarReflectsMode(t *testing.T) {
	s, driver, _, _, _ := newTestScreen(t)
	s.Draw()
	if got := driver.row(40); !strings.Contains(got, "Normal") {
		t.Fatalf("status row %q should say Normal", got)
	}

	if err := s.Commands().Dispatch(arrange.CmdToggleExpand); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	s.Draw()
	if got := driver.row(40); !strings.Contains(got, "Expanded") {
		t.Fatalf("status row %q should say Expanded", got)
	}
}

type treeChangeCounter struct {
	changes int
}

func (l *treeChangeCounter) OnEvent(event arrange.Event) {
	if event.Type == arrange.EventTreeChanged {
		l.changes++
	}
}

func TestTreeSurgeryBroadcastsTreeChanged(t *testing.T) {
	s, _, _, _, _ := newTestScreen(t)
	counter := &treeChangeCounter{}
	s.dispatcher.Subscribe(counter)

	s.runAction("split-row")
	if counter.changes != 1 {
		t.Fatalf("tree-changed events after split = %d, want 1", counter.changes)
	}
	s.runAction("close-pane")
	if counter.changes != 2 {
		t.Fatalf("tree-changed events after close = %d, want 2", counter.changes)
	}
}

func TestKeyBindingsRunCommands(t *testing.T) {
	s, _, _, _, _ := newTestScreen(t)

	s.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	if s.Controller().Mode() != arrange.ModeExpanded {
		t.Fatal("z should toggle to Expanded")
	}
	s.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone))
	if s.Controller().Mode() != arrange.ModeNormal {
		t.Fatal("e should arrange evenly")
	}
}
