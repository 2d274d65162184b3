// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/slukits/splits"
)

// Rect is a screen area in cells.
type Rect struct{ X, Y, Width, Height int }

// Box returns the extent of a rect as layout box.
func (r Rect) Box() splits.Box {
	return splits.Box{Height: float64(r.Height), Width: float64(r.Width)}
}

// Empty is true if a rect has no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains is true if given cell is inside a rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Along returns the rect's extent along given axis.
func (r Rect) Along(ax splits.Axis) int {
	if ax == splits.Vertical {
		return r.Height
	}
	return r.Width
}

// Start returns the rect's start coordinate along given axis.
func (r Rect) Start(ax splits.Axis) int {
	if ax == splits.Vertical {
		return r.Y
	}
	return r.X
}

// Element is a node of a layout tree which is hosted by an Events
// instance.
type Element interface {

	// Layout assigns given screen area to an element.
	Layout(Rect)

	// Draw writes an element to given screen.
	Draw(tcell.Screen)

	// DividerAt reports the split and the index of its divider at
	// given cell; the last return value is false if there is no
	// divider.
	DividerAt(x, y int) (*Split, int, bool)
}

// Divider identifies a divider of a split in a layout tree.
type Divider struct {
	Split *Split
	Index int
}

// Splits returns all splits of given layout tree in depth first order.
func Splits(e Element) []*Split {
	ss := []*Split{}
	switch e := e.(type) {
	case *Split:
		ss = append(ss, e)
		for _, p := range e.pp {
			ss = append(ss, Splits(p)...)
		}
	case *Pane:
		if e.Content != nil {
			ss = append(ss, Splits(e.Content)...)
		}
	}
	return ss
}

// Dividers returns all dividers of given layout tree in depth first
// order.
func Dividers(e Element) []Divider {
	dd := []Divider{}
	for _, s := range Splits(e) {
		for i := range s.c.Dividers() {
			dd = append(dd, Divider{Split: s, Index: i})
		}
	}
	return dd
}
