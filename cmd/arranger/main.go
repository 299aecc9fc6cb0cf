// Copyright © 2026 Arranger contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/arranger/main.go
// Summary: Demo shell: a pane workspace with evenly/expanded arrangement.
// Usage: Run `arranger` in a terminal. z toggles, x expands, e evens out.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/vailmont/arranger/arrange"
	"github.com/vailmont/arranger/config"
	"github.com/vailmont/arranger/screen"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("arranger", flag.ContinueOnError)
	logPath := fs.String("log", "", "File to append debug logs (default: <config dir>/arranger.log)")
	noWatch := fs.Bool("no-watch", false, "Disable live config reload")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("arranger needs a terminal")
	}

	closeLog, err := setupLogging(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Main: Config problem, running on defaults: %v", err)
	}

	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}

	s := screen.New(screen.NewTcellDriver(tcellScreen), demoTree(), cfg)
	s.Controller().Debouncer().SetWindow(time.Duration(cfg.ResizeDebounceMs) * time.Millisecond)

	if !*noWatch {
		stop, err := config.Watch(func(next *config.Config) {
			s.Controller().Debouncer().SetWindow(time.Duration(next.ResizeDebounceMs) * time.Millisecond)
			log.Printf("Main: Applied reloaded config (debounce %dms)", next.ResizeDebounceMs)
		})
		if err != nil {
			log.Printf("Main: Config watch unavailable: %v", err)
		} else {
			defer stop()
		}
	}

	defer s.Close()
	return s.Run()
}

// demoTree builds the starting arrangement: a row of two columns, ready to
// be split further from the keyboard.
func demoTree() *arrange.Tree {
	a := arrange.NewLeaf(arrange.NewTabGroup("notes.txt", "draft.md"))
	b := arrange.NewLeaf(arrange.NewTabGroup("todo.md"))
	c := arrange.NewLeaf(arrange.NewTabGroup("scratch"))
	left := arrange.NewSplit(arrange.Column, a, b)
	right := arrange.NewSplit(arrange.Column, c)

	tree := arrange.NewTree()
	tree.Root = arrange.NewSplit(arrange.Row, left, right)
	tree.ActiveLeaf = a
	return tree
}

// setupLogging sends the standard logger to a file so it never scribbles
// over the terminal UI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "arranger.log")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { f.Close() }, nil
}
