// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tui

import "github.com/gdamore/tcell/v2"

// Env is an environment provided to event listeners when they are
// called back.  It provides an encapsulated Screen's public API,
// information about the event which triggered the callback and the
// Events instance reporting it.
//
// NOTE it is not save to provide an Env instance or one of its method's
// return values to an other go routine.  If you want to use concurrency
// use the Events.Update-method to obtain an environment in the
// concurrent go routine, e.g.:
//
//	func myListener(e *tui.Env) {
//	    go func(ee *tui.Events) {
//	        // heavy lifting
//	        ee.Update(func(e *tui.Env) {
//	            e.ErrScreen().Set("done")
//	        })
//	    }(e.EE)
//	}
type Env struct {
	scr *Screen

	// EE is the Events instance providing given environment
	// instance.
	EE *Events

	// Evn is the tcell-event triggering the creation of a receiving
	// environment to report it back to a registered listener.
	Evn tcell.Event
}

// Size returns the width and height of the terminal screen.
func (e *Env) Size() (width, height int) { return e.scr.Size() }

// Root returns the layout tree of the screen.
func (e *Env) Root() Element { return e.scr.Root() }

// SetMin defines the minimal expected screen size.  An error is
// displayed and event reporting is suppressed as long as the screen is
// smaller.
func (e *Env) SetMin(width, height int) { e.scr.SetMin(width, height) }

// ToSmall returns true if a set minimal screen size is greater than
// the available screen size.
func (e *Env) ToSmall() bool { return e.scr.ToSmall() }

// ErrScreen returns an overlaying (if activated) error-screen allowing
// to report errors without loosing the layout.
func (e *Env) ErrScreen() *ErrScr { return e.scr.ErrScreen() }

func (e *Env) reset() {
	e.scr = nil
	e.EE = nil
	e.Evn = nil
}
