// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tui

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Testing augments an Events instance created by Test with useful
// features for testing like firing an event or getting the current
// screen content as string.
// NOTE do not use an Events/Testing-instances concurrently.
// NOTE Events.Listen-method becomes non-blocking and starts event-loop
// polling in its own go-routine.
// NOTE all event triggering methods start event-listening if it is not
// already started.
// NOTE It is guaranteed that all methods of an Events/Testing-instances
// which trigger an event do not return before the event is processed
// and the layout is drawn to the screen, e.g.
//
//	func TestDrag(t *testing.T) {
//	    left, right := tui.NewPane("", "l"), tui.NewPane("", "r")
//	    root, _ := tui.NewSplit([]*tui.Pane{left, right})
//	    _, tt := tui.Test(t, root, 0)
//	    tt.FireResize(21, 3)           // divider at column 10
//	    tt.FireDrag(10, 1, 14, 1)      // moved by 4 cells
//	    if left.Rect().Width != 14 {
//	        t.Errorf("expected width 14; got %d", left.Rect().Width)
//	    }
//	}
type Testing struct {
	ee            *Events
	lib           tcell.SimulationScreen
	autoTerminate bool
	mutex         *sync.Mutex
	waitStack     []string
	waiting       bool
	t             *testing.T

	// Max is the number of reported events after which the
	// event-loop of a fixture is terminated.  Max is decremented after
	// each reported event.  I.e. events for which no listener is
	// registered are not counted.
	Max int

	// LastScreen provides the screen content right before quitting
	// listening.  NOTE it is guaranteed that that this snapshot is
	// taken *after* all layout updates have made it to the screen.
	LastScreen string

	// Timeout defines how long an event-triggering method waits for the
	// event to be processed.  It defaults to 200ms.
	Timeout time.Duration
}

func decrement(fx *Testing) func() {
	return func() {
		fx.Max--
	}
}

// Test creates a new Events-test-fixture hosting given layout tree
// with additional features for testing.  max defaults to 1, i.e. after
// Listen was called the event-loop stops automatically after the first
// reported event.  Is max 0 or negative listening doesn't stop
// automatically but at the latest when the test has finished.
//
// Event generating operations on the test-fixture are Listen,
// FireResize, FireRune, FireKey, FireMouse and FireDrag; on the
// Events-instance: QuitListening and Update.
func Test(t *testing.T, root Element, max ...int) (*Events, *Testing) {
	t.Helper()
	ee, lib, err := Sim(root)
	if err != nil {
		t.Fatalf("test: init sim: %v", err)
	}
	ee.t = &Testing{ee: ee, lib: lib, t: t,
		Timeout: 200 * time.Millisecond,
		mutex:   &sync.Mutex{}}
	switch len(max) {
	case 0:
		ee.t.SetMax(1)
	default:
		ee.t.SetMax(max[0])
	}
	t.Cleanup(func() {
		if ee.IsListening() {
			ee.QuitListening()
		}
	})
	return ee, ee.t
}

// SetMax define the maximum number of reported events before listening
// for events is terminated automatically.  If m is 0 (or lower)
// listening doesn't stop automatically.
func (fx *Testing) SetMax(m int) *Events {
	switch {
	case m <= 0:
		fx.ee.Reported(nil)
		fx.autoTerminate = false
	default:
		fx.ee.Reported(decrement(fx))
		fx.autoTerminate = true
	}
	fx.Max = m
	return fx.ee
}

// waitForSynced waits on associated Events.Synced channel if not
// already waiting.  If already waiting the wait-stack is increased
// by given err and waitForSynced returns; leaving it to the currently
// waiting waitForSynced call to wait for this synchronization as well.
func (fx *Testing) waitForSynced(err string) {
	if fx.pushWaiting(err) { // return if already waiting
		return
	}
	tmr := time.NewTimer(fx.Timeout)
	for err := fx.popWaiting(); err != ""; err = fx.popWaiting() {
		select {
		case <-fx.ee.Synced:
			tmr.Reset(fx.Timeout)
		case <-tmr.C:
			fx.t.Fatal(err)
		}
	}
	tmr.Stop()
}

// pushWaiting adds given string onto the wait-stack and returns true if
// if we are already waiting otherwise false and waiting is started.
func (fx *Testing) pushWaiting(err string) bool {
	fx.mutex.Lock()
	defer fx.mutex.Unlock()
	fx.waitStack = append(fx.waitStack, err)
	if fx.waiting {
		return true
	}
	fx.waiting = true
	return false
}

// popWaiting pops the first entry from the wait-stack and returns its
// error string unless the wait-stack is empty in which case the empty
// string is returned and we stop waiting.
func (fx *Testing) popWaiting() string {
	fx.mutex.Lock()
	defer fx.mutex.Unlock()
	if len(fx.waitStack) == 0 {
		fx.waiting = false
		return ""
	}
	err := fx.waitStack[0]
	fx.waitStack = fx.waitStack[1:]
	return err
}

// FireResize resizes the simulation screen to given size, posts a
// resize event and returns after this event has been processed.  Is
// associated Events instance not listening it is started with given
// size, i.e. the initial resize is the fired resize.
func (fx *Testing) FireResize(width, height int) *Events {
	fx.t.Helper()
	fx.lib.SetSize(width, height)
	if !fx.ee.IsListening() {
		return fx.listen()
	}
	err := fx.lib.PostEvent(tcell.NewEventResize(width, height))
	if err != nil {
		fx.t.Fatal(err)
	}
	fx.waitForSynced("test: fire resize: sync timed out")
	fx.checkTermination()
	return fx.ee
}

// FireRune posts given run-key-press event and returns after this
// event has been processed.  Note modifier keys are ignored for
// rune-triggered key-events.  Are wrapped Events not polling it is
// started (ee.Listen()).
func (fx *Testing) FireRune(r rune) *Events {
	fx.t.Helper()
	if !fx.ee.IsListening() {
		fx.listen()
	}
	fx.lib.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	fx.waitForSynced("test: fire rune: sync timed out")
	fx.checkTermination()
	return fx.ee
}

// FireKey posts given special-key event and returns after this
// event has been processed.  Are wrapped Events not polling it is
// started (ee.Listen()).
func (fx *Testing) FireKey(k tcell.Key, m ...tcell.ModMask) *Events {
	fx.t.Helper()
	if !fx.ee.IsListening() {
		fx.listen()
	}
	if len(m) == 0 {
		fx.lib.InjectKey(k, 0, tcell.ModNone)
	} else {
		fx.lib.InjectKey(k, 0, m[0])
	}
	fx.waitForSynced("test: fire key: sync timed out")
	fx.checkTermination()
	return fx.ee
}

// FireMouse posts a mouse event at given cell with given buttons held
// and returns after this event has been processed.
func (fx *Testing) FireMouse(
	x, y int, bb tcell.ButtonMask,
) *Events {
	fx.t.Helper()
	if !fx.ee.IsListening() {
		fx.listen()
	}
	fx.lib.InjectMouse(x, y, bb, tcell.ModNone)
	fx.waitForSynced("test: fire mouse: sync timed out")
	fx.checkTermination()
	return fx.ee
}

// FireDrag presses the primary mouse button at the first given cell,
// moves the pointer to the second given cell and releases the button.
func (fx *Testing) FireDrag(x0, y0, x1, y1 int) *Events {
	fx.t.Helper()
	fx.FireMouse(x0, y0, tcell.Button1)
	fx.FireMouse(x1, y1, tcell.Button1)
	return fx.FireMouse(x1, y1, tcell.ButtonNone)
}

// listen posts the initial resize event and starts listening for events
// in a new go-routine.  listen returns after the initial resize has
// completed.
func (fx *Testing) listen() *Events {
	fx.t.Helper()
	err := fx.lib.PostEvent(tcell.NewEventResize(fx.lib.Size()))
	if err != nil {
		fx.t.Fatalf("test: listen: post resize: %v", err)
	}
	go fx.ee.listen()
	fx.waitForSynced("test: listen: sync timed out")
	fx.checkTermination()
	return fx.ee
}

func (fx *Testing) checkTermination() {
	if !fx.autoTerminate {
		return
	}
	if fx.Max <= 0 {
		// the last reported event might was a quit event,
		if fx.ee.IsListening() { // i.e. we stopped already listening
			fx.ee.QuitListening()
		}
	}
}

func (fx *Testing) beforeFinalize() {
	fx.LastScreen = fx.String()
}

// String returns the test-screen's content as string with line breaks
// where a new screen line starts.  Empty lines at the end of the screen
// are not returned and empty cells at the end of a line are trimmed.
// I.e.
//
//	+-------------+
//	|             |
//	|   content   |   => "   content"
//	|             |
//	+-------------+
func (fx *Testing) String() string {
	cc, w, h := fx.lib.GetContents()
	sb := &strings.Builder{}
	for y := 0; y < h; y++ {
		line := []rune{}
		for x := 0; x < w; x++ {
			cell := cc[y*w+x]
			if len(cell.Runes) == 0 {
				line = append(line, ' ')
				continue
			}
			line = append(line, cell.Runes[0])
		}
		sb.WriteString(strings.TrimRight(string(line), " \t\r") + "\n")
	}
	return strings.TrimLeft(
		strings.TrimRight(sb.String(), " \t\r\n"), "\n")
}

// StyleAt returns the style of given cell of the test-screen.
func (fx *Testing) StyleAt(x, y int) tcell.Style {
	cc, w, h := fx.lib.GetContents()
	if x < 0 || y < 0 || x >= w || y >= h {
		return tcell.StyleDefault
	}
	return cc[y*w+x].Style
}
