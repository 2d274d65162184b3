// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Screen draws a layout tree to a terminal screen.
type Screen struct {
	lib        tcell.Screen
	root       Element
	errScr     *ErrScr
	minW, minH int
}

// Size returns the width and height of the wrapped terminal screen.
// Note the simulation screen defaults to 80x25.
func (s *Screen) Size() (width, height int) { return s.lib.Size() }

// Root returns the layout tree drawn to the screen.
func (s *Screen) Root() Element { return s.root }

// SetMin defines the minimal expected screen size.  An error is
// displayed and events other than quitting are not reported as long as
// the screen is smaller.
func (s *Screen) SetMin(width, height int) {
	s.minW, s.minH = width, height
	if !s.ToSmall() {
		return
	}
	s.minErr()
}

// ToSmall returns true if a set minimal screen size is greater than the
// available screen size.
func (s *Screen) ToSmall() bool {
	w, h := s.Size()
	return w < s.minW || h < s.minH
}

// resize lays out the root element into the new screen area.  It
// returns false if the screen is too small.
func (s *Screen) resize() (ok bool) {
	s.lib.Clear()
	if s.ToSmall() {
		s.minErr()
		return false
	}
	if s.errScr != nil && s.errScr.Active {
		s.errScr.Active = false
	}
	if s.root != nil {
		w, h := s.Size()
		s.root.Layout(Rect{Width: w, Height: h})
	}
	return true
}

// ErrScreenFmt is the displayed error message for the case that a set
// minimal size is greater than the available screen size.
const ErrScreenFmt = "minimum screen size: %dx%d"

func (s *Screen) minErr() {
	if !s.ErrScreen().Active {
		s.ErrScreen().Active = true
	}
	s.ErrScreen().Set(fmt.Sprintf(ErrScreenFmt, s.minW, s.minH))
}

// ErrScreen returns an overlaying (if activated) error-screen allowing
// to report errors without loosing the layout.
func (s *Screen) ErrScreen() *ErrScr {
	if s.errScr == nil {
		s.errScr = &ErrScr{lib: s.lib}
	}
	return s.errScr
}

// sync redraws the layout tree, or the error screen if it is active,
// and shows it on the terminal.  A full sync is needed after a resize.
func (s *Screen) sync(show bool) {
	flush := func() {
		if show {
			s.lib.Show()
		} else {
			s.lib.Sync()
		}
	}
	if s.errScr != nil && s.errScr.Active {
		if s.errScr.IsDirty() || !show {
			s.errScr.sync()
			flush()
		}
		return
	}
	s.lib.Clear()
	if s.root != nil {
		s.root.Draw(s.lib)
	}
	flush()
}

// screenFactory is used to create new tcell-screens for production or
// for simulation.  export_test.go makes it possible to replace this
// screen factory with a screen-factory mocking up tcell's screen
// creation errors so they can be tested.
var screenFactory screenFactoryer = &defaultFactory{}

type defaultFactory struct{}

func (f *defaultFactory) NewScreen() (tcell.Screen, error) {
	return tcell.NewScreen()
}

func (f *defaultFactory) NewSimulationScreen(
	s string,
) tcell.SimulationScreen {
	return tcell.NewSimulationScreen(s)
}

type screenFactoryer interface {
	NewScreen() (tcell.Screen, error)
	NewSimulationScreen(string) tcell.SimulationScreen
}
