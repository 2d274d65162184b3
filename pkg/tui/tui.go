// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tui hosts split containers in a terminal.  It wraps the
// package https://github.com/gdamore/tcell which does the heavy
// lifting on the terminal side and provides
//
//   - an event loop reporting resize, mouse, key and update events
//   - Panes which are the panels of a split container
//   - Splits which render a splits.Container with its dividers and
//     route mouse drags on a divider to its drag controller
//   - a Testing fixture on tcell's simulation screen
//
// A layout is a tree of Splits whose leafs are Panes; a Pane may hold
// an other Split as its content which makes two dimensional layouts
// possible:
//
//	left := tui.NewPane("left", "hello")
//	top, bottom := tui.NewPane("top", ""), tui.NewPane("bottom", "")
//	inner, _ := tui.NewSplit([]*tui.Pane{top, bottom},
//	    splits.WithOrientation(splits.TopToBottom))
//	right := tui.NewPane("", "").SetContent(inner)
//	root, _ := tui.NewSplit([]*tui.Pane{left, right})
//
//	ee, err := tui.New(root)
//	if err != nil {
//	    log.Fatalf("can't acquire events: %v", err)
//	}
//	ee.Listen()
//
// Listen blocks until 'q', ctrl-c or ctrl-d is pressed or
// ee.QuitListening() is called.  Dragging a divider with the primary
// mouse button resizes the two panes adjacent to it; Tab focuses the
// next divider which then may be moved by '<' and '>'.
//
// Sizes of a Split's panes are calculated by splits.Engine in
// fractional cells.  A Split then rounds them to whole cells the way a
// flex box would do it and reports the rounded sizes back as the
// panes' actual sizes which the engine reconciles its model with.
package tui

import (
	"io"
	"log/slog"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))
