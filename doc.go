// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package splits provides the layout computation of split panels:
// sibling panels arranged along one axis with draggable dividers
// between them.  It is host agnostic; see package pkg/tui for a
// terminal host based on tcell.
//
// A Container receives three kinds of signals from its host:
//
//	c := splits.NewContainer(splits.WithOrientationAttr("rl"))
//	c.ChildrenReady(p1, p2, p3)                  // once
//	c.Draw(splits.Box{Height: 24, Width: 80})   // on each box change
//	c.Press(0, 27); c.Move(33); c.Release(33)   // divider drags
//
// On the first Draw the container's extent along its axis, minus the
// space consumed by the dividers, is split evenly among the panels.
// Every following Draw spreads only the difference between the new
// container box and the space currently occupied evenly among the
// panels, i.e. sizes a user established by dragging dividers are kept
// in absolute terms.  Across the axis panels always fill the container.
//
// A divider drag is a zero-sum transfer between the two panels
// adjacent to the divider:
//
//	+--------+-+--------+        +-----------+-+-----+
//	|        | |        |  drag  |           | |     |
//	|   p1   |<|>  p2   |  ===>  |    p1     | | p2  |
//	|        | |        |   +3   |           | |     |
//	+--------+-+--------+        +-----------+-+-----+
//
// What the panel before the divider gains the panel after it loses.
// No panel is ever sized below zero; is a panel exhausted the
// transfer is capped accordingly.  Pointer movements smaller than a
// threshold (DefaultThreshold) are ignored.  Is a container's
// orientation reversed, the roles of a divider's panels are swapped
// such that "before" always denotes the panel rendered before the
// divider.
//
// While a divider is dragged it holds the pointer Capture; the
// previously installed pointer handler is restored when the drag ends.
// Only one drag can hold a capture at a time.
//
// Panels are provided by the host through the Panel interface.  A
// panel's Box is its actual rendered size which may differ from the
// size requested by SetBox, e.g. due to rounding to terminal cells.
// After each layout pass the engine's model is reconciled with the
// actual sizes.
package splits

import (
	"io"
	"log/slog"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))
