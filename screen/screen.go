// Copyright © 2026 Arranger contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/screen.go
// Summary: Renders the pane tree and routes input to the controller.

package screen

import (
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/vailmont/arranger/apps/statusbar"
	"github.com/vailmont/arranger/arrange"
	"github.com/vailmont/arranger/config"
)

// Screen owns the terminal, the pane tree, and the arrangement controller.
// All input funnels through its event loop; the controller's weights come
// back out as pixel rectangles and then terminal cells.
type Screen struct {
	mu         sync.Mutex
	driver     Driver
	tree       *arrange.Tree
	dispatcher *arrange.EventDispatcher
	ctrl       *arrange.Controller
	commands   *arrange.CommandRegistry
	status     *statusbar.StatusBar
	cfg        *config.Config

	keys        map[rune]string // rune -> action
	rects       map[*arrange.Node]arrange.Rect
	lastButtons tcell.ButtonMask
	paneSeq     int

	quit      chan struct{}
	refresh   chan bool
	closeOnce sync.Once
}

// New assembles a screen over the given driver and tree. The controller
// reads the root container size through the cell→pixel mapping, so weights
// always reflect the real terminal dimensions.
func New(driver Driver, tree *arrange.Tree, cfg *config.Config) *Screen {
	s := &Screen{
		driver:     driver,
		tree:       tree,
		dispatcher: arrange.NewEventDispatcher(),
		status:     statusbar.New(),
		cfg:        cfg,
		keys:       make(map[rune]string),
		rects:      make(map[*arrange.Node]arrange.Rect),
		quit:       make(chan struct{}),
		refresh:    make(chan bool, 1),
	}
	s.ctrl = arrange.NewController(tree, s.dispatcher, s.rootSizePx)
	s.commands = arrange.NewCommandRegistry(s.ctrl)

	for action, key := range cfg.Keys {
		r := []rune(key)
		if len(r) != 1 {
			log.Printf("Screen: Ignoring binding %q for %s, want a single rune", key, action)
			continue
		}
		s.keys[r[0]] = action
	}

	s.dispatcher.Subscribe(s.status)
	s.dispatcher.Subscribe(s)
	return s
}

// Controller exposes the arrangement controller, e.g. for config reload.
func (s *Screen) Controller() *arrange.Controller {
	return s.ctrl
}

// Commands exposes the command registry.
func (s *Screen) Commands() *arrange.CommandRegistry {
	return s.commands
}

// OnEvent implements arrange.Listener; any state change redraws.
func (s *Screen) OnEvent(event arrange.Event) {
	s.requestRefresh()
}

// rootSizePx reports the primary area's rendered box in pixels: the full
// terminal minus the status line, scaled by the configured cell box.
func (s *Screen) rootSizePx() (int, int) {
	w, h := s.driver.Size()
	if s.cfg.StatusBar {
		h--
	}
	if h < 1 {
		h = 1
	}
	return w * s.cfg.CellWidthPx, h * s.cfg.CellHeightPx
}

// Run drives the event loop until Close.
func (s *Screen) Run() error {
	if err := s.driver.Init(); err != nil {
		return err
	}
	s.driver.SetStyle(tcell.StyleDefault)
	s.driver.HideCursor()
	s.driver.EnableMouse()

	eventChan := make(chan tcell.Event, 10)
	go func() {
		for {
			ev := s.driver.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-s.quit:
				return
			}
		}
	}()

	s.Draw()
	for {
		select {
		case ev := <-eventChan:
			s.handleEvent(ev)
			s.Draw()
		case <-s.ctrl.ResizeSignal():
			s.ctrl.ApplyResize()
			s.Draw()
		case <-s.refresh:
			s.Draw()
		case <-s.quit:
			return nil
		}
	}
}

// Close stops the loop and restores the terminal.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
		s.ctrl.Close()
		s.driver.Fini()
	})
}

func (s *Screen) requestRefresh() {
	select {
	case s.refresh <- true:
	default:
	}
}

func (s *Screen) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(ev)
	case *tcell.EventMouse:
		s.handleMouse(ev)
	case *tcell.EventResize:
		s.ctrl.WindowResized()
	}
}

func (s *Screen) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.Close()
		return
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		var d arrange.MoveDir
		switch ev.Key() {
		case tcell.KeyUp:
			d = arrange.DirUp
		case tcell.KeyDown:
			d = arrange.DirDown
		case tcell.KeyLeft:
			d = arrange.DirLeft
		case tcell.KeyRight:
			d = arrange.DirRight
		}
		s.tree.MoveActive(d)
		s.ctrl.FocusChanged(s.tree.ActiveLeaf)
		return
	case tcell.KeyRune:
	default:
		return
	}

	action, ok := s.keys[ev.Rune()]
	if !ok {
		return
	}
	s.runAction(action)
}

func (s *Screen) runAction(action string) {
	var err error
	switch action {
	case "toggle-expand":
		err = s.commands.Dispatch(arrange.CmdToggleExpand)
	case "expand-active":
		err = s.commands.Dispatch(arrange.CmdExpandActive)
	case "arrange-evenly":
		err = s.commands.Dispatch(arrange.CmdArrangeEvenly)
	case "split-row":
		s.splitActive(arrange.Row)
	case "split-column":
		s.splitActive(arrange.Column)
	case "close-pane":
		s.tree.CloseActiveLeaf()
		s.dispatcher.Broadcast(arrange.Event{Type: arrange.EventTreeChanged})
		s.ctrl.FocusChanged(s.tree.ActiveLeaf)
	case "quit":
		s.Close()
	default:
		log.Printf("Screen: Unknown action %q", action)
	}
	if err != nil {
		// Already surfaced as a notice; keep a trace for debugging.
		log.Printf("Screen: Action %s: %v", action, err)
	}
}

func (s *Screen) splitActive(dir arrange.SplitDir) {
	s.paneSeq++
	title := "pane " + string(rune('A'+s.paneSeq%26))
	s.tree.SplitActive(dir, arrange.NewTabGroup(title))
	s.dispatcher.Broadcast(arrange.Event{Type: arrange.EventTreeChanged})
	// A new pane takes focus; while Expanded the expansion follows it.
	s.ctrl.FocusChanged(s.tree.ActiveLeaf)
}

func (s *Screen) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && s.lastButtons&tcell.Button1 == 0
	s.lastButtons = buttons
	if !pressed {
		return
	}

	x, y := ev.Position()
	_, h := s.driver.Size()
	if s.cfg.StatusBar && y == h-1 {
		// The status indicator is clickable: toggle.
		if err := s.commands.Dispatch(arrange.CmdToggleExpand); err != nil {
			log.Printf("Screen: Status toggle: %v", err)
		}
		return
	}

	leaf, header := s.leafAtCell(x, y)
	if leaf == nil {
		return
	}
	s.tree.ActiveLeaf = leaf
	if header {
		s.ctrl.PaneClicked(leaf)
	} else {
		s.ctrl.FocusChanged(leaf)
	}
}

// leafAtCell maps a terminal cell to the pane under it, using the rects of
// the last draw. header reports whether the hit landed on the pane's tab
// header row.
func (s *Screen) leafAtCell(x, y int) (*arrange.Node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found *arrange.Node
	var header bool
	for n, r := range s.rects {
		if !n.IsLeaf() {
			continue
		}
		x0, y0, x1, y1 := s.cellBox(r)
		if x >= x0 && x < x1 && y >= y0 && y < y1 {
			found = n
			header = y == y0
			break
		}
	}
	return found, header
}

// cellBox converts a pixel rect to half-open cell bounds. Edges are
// converted, not sizes, so neighboring panes stay gap- and overlap-free
// after integer division.
func (s *Screen) cellBox(r arrange.Rect) (int, int, int, int) {
	cw, ch := s.cfg.CellWidthPx, s.cfg.CellHeightPx
	return r.X / cw, r.Y / ch, (r.X + r.W) / cw, (r.Y + r.H) / ch
}

// Draw lays the tree out with the current weights and paints it.
func (s *Screen) Draw() {
	w, h := s.driver.Size()
	if w <= 0 || h <= 0 {
		return
	}
	paneRows := h
	if s.cfg.StatusBar {
		paneRows--
	}

	pxW, pxH := s.rootSizePx()
	rects := make(map[*arrange.Node]arrange.Rect)
	if s.tree.Root != nil {
		arrange.LayoutTree(s.tree.Root, s.ctrl.Weights(), 0, 0, pxW, pxH, rects)
	}
	s.mu.Lock()
	s.rects = rects
	s.mu.Unlock()

	s.driver.Clear()
	for n, r := range rects {
		if !n.IsLeaf() {
			continue
		}
		s.drawPane(n, r, paneRows)
	}
	if s.cfg.StatusBar {
		s.drawStatus(w, h-1)
	}
	s.driver.Show()
}

func (s *Screen) drawPane(n *arrange.Node, r arrange.Rect, maxRows int) {
	x0, y0, x1, y1 := s.cellBox(r)
	if y1 > maxRows {
		y1 = maxRows
	}
	w, h := x1-x0, y1-y0
	if w < 2 || h < 2 {
		return
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if n == s.tree.ActiveLeaf {
		style = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	}

	for x := x0; x < x1; x++ {
		s.driver.SetContent(x, y0, tcell.RuneHLine, nil, style)
		s.driver.SetContent(x, y1-1, tcell.RuneHLine, nil, style)
	}
	for y := y0; y < y1; y++ {
		s.driver.SetContent(x0, y, tcell.RuneVLine, nil, style)
		s.driver.SetContent(x1-1, y, tcell.RuneVLine, nil, style)
	}
	s.driver.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	s.driver.SetContent(x1-1, y0, tcell.RuneURCorner, nil, style)
	s.driver.SetContent(x0, y1-1, tcell.RuneLLCorner, nil, style)
	s.driver.SetContent(x1-1, y1-1, tcell.RuneLRCorner, nil, style)

	title := n.Title()
	if title == "" || w <= 4 {
		return
	}
	label := " " + title + " "
	if runewidth.StringWidth(label) > w-2 {
		label = runewidth.Truncate(label, w-2, "…")
	}
	x := x0 + 1
	for _, ch := range label {
		if x >= x1-1 {
			break
		}
		s.driver.SetContent(x, y0, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

func (s *Screen) drawStatus(width, row int) {
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, ch := range s.status.Line(width) {
		if x >= width {
			break
		}
		s.driver.SetContent(x, row, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}
