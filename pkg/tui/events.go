// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/slukits/splits"
)

// ErrScreen is returned by New if tcell fails to provide a screen.
var ErrScreen = errors.New("tui: can't create screen")

// ErrInit is returned by New and Sim if tcell fails to initialize the
// screen.
var ErrInit = errors.New("tui: can't initialize screen")

// Events listens for user-input events which are then reported to the
// hosted layout tree and registered listeners.  It also manages behind
// the scenes the screen synchronization.
type Events struct {
	scr         *Screen
	mutex       *sync.Mutex
	ll          *Listeners
	resize      Listener
	quit        func(e *Env)
	isListening bool
	reported    func()
	t           *Testing
	lg          *slog.Logger
	buttons     tcell.ButtonMask
	drag        *Split
	focus       int

	// Synced sends a message after a the screen synchronization
	// following a reported event.
	Synced chan bool

	// Features are the keys and runes which are used for "internal"
	// event handling, e.g. the keys/runes for the quit event are q,
	// ctrl-c and ctrl-d.  Features default to a copy of
	// DefaultFeatures.
	Features *Features

	// NudgeStep is the number of cells the focused divider is moved
	// by the FtShrink and FtGrow features.  It defaults to the default
	// drag threshold.
	NudgeStep int
}

// Option configures an Events instance at its creation.
type Option func(*Events)

// Logger sets the logger of an Events instance and of the splits of
// its layout tree.
func Logger(lg *slog.Logger) Option {
	return func(ee *Events) {
		if lg != nil {
			ee.lg = lg
		}
	}
}

// NudgeStep sets the number of cells a focused divider is moved by
// keyboard.
func NudgeStep(cells int) Option {
	return func(ee *Events) { ee.NudgeStep = cells }
}

// New creates an Events instance hosting given layout tree on the
// terminal screen.  Events are reported once Listen is called.
func New(root Element, oo ...Option) (*Events, error) {
	lib, err := screenFactory.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreen, err)
	}
	if err := lib.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}
	return newEvents(lib, root, oo...), nil
}

// Sim creates an Events instance hosting given layout tree on a tcell
// simulation screen which is returned as well.
func Sim(root Element, oo ...Option) (
	*Events, tcell.SimulationScreen, error,
) {
	lib := screenFactory.NewSimulationScreen("")
	if err := lib.Init(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInit, err)
	}
	return newEvents(lib, root, oo...), lib, nil
}

func newEvents(lib tcell.Screen, root Element, oo ...Option) *Events {
	ff := DefaultFeatures.Copy()
	ee := &Events{
		scr:       &Screen{lib: lib, root: root},
		mutex:     &sync.Mutex{},
		ll:        NewListeners(ff),
		lg:        discard,
		focus:     -1,
		Synced:    make(chan bool, 1),
		Features:  ff,
		NudgeStep: int(splits.DefaultThreshold),
	}
	for _, opt := range oo {
		opt(ee)
	}
	for _, s := range Splits(root) {
		s.SetLogger(ee.lg)
	}
	lib.EnableMouse()
	return ee
}

// IsListening returns true if given Events polling from the event loop.
func (ee *Events) IsListening() bool {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	return ee.isListening
}

// Listen blocks and starts polling from the event loop reporting
// received events to the layout tree and registered listeners.  Listen
// returns if either a quit-event was received ('q', ctrl-c, ctrl-d
// input) or QuitListening was called.  NOTE in testing Listen is
// non-blocking, i.e. returns after the initial resize was processed.
func (ee *Events) Listen() {
	if ee.t != nil {
		ee.t.listen()
		return
	}
	ee.listen()
}

func (ee *Events) listen() {
	if !ee.startPolling() { // ignore subsequent calls of Listen
		return
	}
	for {
		ev := ee.scr.lib.PollEvent()

		select {
		case <-ee.Synced:
		default:
		}

		switch ev := ev.(type) {
		case nil: // event-loop ended
			return
		case *quitEvent:
			ee.stopPolling()
			if ee.quit != nil {
				ee.quit(ee.env(ev))
			}
			ee.quitListening()
			return
		case *tcell.EventResize:
			if ee.scr.resize() {
				ee.report(ev)
			}
			ee.scr.sync(false)
			ee.Synced <- true
		default:
			if quit := ee.report(ev); quit {
				ee.stopPolling()
				ee.quitListening()
				return
			}
			ee.scr.sync(true)
			ee.Synced <- true
		}
	}
}

func (ee *Events) startPolling() bool {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	if ee.isListening {
		return false
	}
	ee.isListening = true
	return true
}

func (ee *Events) stopPolling() {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	ee.isListening = false
}

// Reported calls back if an event was reported for logging and testing.
func (ee *Events) Reported(listener func()) {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	ee.reported = listener
}

// Resize registers given listener for the resize event which is
// reported after the layout tree was laid out.  Note starting the
// event-loop by calling Listen will trigger a mandatory initial resize
// event.
func (ee *Events) Resize(l Listener) {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	ee.resize = l
}

// Quit registers given listener for the quit event which is triggered
// by 'q'-rune, ctrl-c and ctrl-d.
func (ee *Events) Quit(listener func(*Env)) {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	ee.quit = listener
}

// Update posts a new event into the event loop which calls once it is
// its turn given listener.  Update fails if the event-loop is full
// returned error will wrap tcell's PostEvent error.  Update is an
// no-op if listener is nil.  NOTE in testing Update returns after the
// event was processed.
func (ee *Events) Update(l Listener) error {
	if l == nil {
		return nil
	}
	if ee.t != nil && !ee.IsListening() {
		ee.t.listen()
	}
	evt := &updateEvent{
		when:     time.Now(),
		listener: l,
	}
	if err := ee.scr.lib.PostEvent(evt); err != nil {
		return fmt.Errorf(ErrUpdateFmt, err)
	}
	if ee.t != nil {
		ee.t.waitForSynced("test: update: sync timed out")
		ee.t.checkTermination()
	}
	return nil
}

// ErrUpdateFmt is the error message for a failing update-event post.
var ErrUpdateFmt = "tui: can't post event: %w"

type updateEvent struct {
	when     time.Time
	listener Listener
}

func (u *updateEvent) When() time.Time { return u.when }

// Rune registers a given listener for given rune-event.  It fails if
// already a listener is registered for given rune-event.
func (ee *Events) Rune(r rune, l Listener) error {
	return ee.ll.Rune(r, l)
}

// Keyboard listener shadows all other rune/key listeners until it is
// removed by Keyboard(nil).
func (ee *Events) Keyboard(l KBListener) {
	ee.ll.Keyboard(l)
}

// Key registers given listener for given key/mode-event.  It fails if
// already a listener is registered for given key/mode combination.
func (ee *Events) Key(k tcell.Key, m tcell.ModMask, l Listener) error {
	return ee.ll.Key(k, m, l)
}

// Mouse registers given listener for mouse events.
func (ee *Events) Mouse(l MouseListener) {
	ee.ll.Mouse(l)
}

// Focused returns the divider which is moved by keyboard; its split
// is nil if no divider is focused.
func (ee *Events) Focused() Divider {
	dd := Dividers(ee.scr.root)
	if ee.focus < 0 || ee.focus >= len(dd) {
		return Divider{}
	}
	return dd[ee.focus]
}

// QuitListening posts a quit event ending the event-loop, i.e.
// IsListening will be false.
func (ee *Events) QuitListening() {
	if ee.IsListening() {
		ee.scr.lib.PostEvent(&quitEvent{when: time.Now()})
		if ee.t != nil {
			ee.t.waitForSynced("test: quit listening: sync timed out")
		}
		return
	}
	ee.quitListening()
}

func (ee *Events) quitListening() {
	if ee.drag != nil {
		ee.drag.Container().Close()
		ee.drag = nil
	}
	if ee.t != nil {
		ee.t.beforeFinalize()
	}
	ee.scr.lib.Fini()
	close(ee.Synced)
}

type quitEvent struct {
	when time.Time
}

func (u *quitEvent) When() time.Time { return u.when }

func (ee *Events) report(ev tcell.Event) (quit bool) {
	if ee.scr.ToSmall() {
		return ee.reportToSmall(ev)
	}
	switch ev := ev.(type) {
	case *tcell.EventResize:
		if listener := ee.resizeListener(); listener != nil {
			env := ee.env(ev)
			listener(env)
			ee.reportReported(env)
		}
	case *tcell.EventKey:
		return ee.reportKeyEvent(ev)
	case *tcell.EventMouse:
		ee.reportMouseEvent(ev)
	case *updateEvent:
		env := ee.env(ev)
		ev.listener(env)
		ee.reportReported(env)
	}
	return false
}

// reportToSmall handles reporting an event in case the screen is to
// small, i.e. only reports the quit-event.
func (ee *Events) reportToSmall(ev tcell.Event) bool {
	if ev, ok := ev.(*tcell.EventKey); ok {
		if ee.feature(ev) == FtQuit {
			ee.reportQuit(ev)
			return true
		}
	}
	return false
}

func (ee *Events) feature(ev *tcell.EventKey) Feature {
	if ev.Key() == tcell.KeyRune {
		return ee.Features.RuneEvent(ev.Rune())
	}
	return ee.Features.KeyEvent(ev.Key(), ev.Modifiers())
}

func (ee *Events) reportQuit(ev *tcell.EventKey) {
	if listener := ee.quitListener(); listener != nil {
		env := ee.env(ev)
		listener(env)
		ee.reportReported(env)
	}
}

func (ee *Events) reportKeyEvent(ev *tcell.EventKey) bool {
	switch ee.feature(ev) {
	case FtQuit:
		ee.reportQuit(ev)
		return true
	case FtFocus:
		ee.focusNext()
		return false
	case FtShrink:
		ee.nudge(-ee.NudgeStep)
		return false
	case FtGrow:
		ee.nudge(ee.NudgeStep)
		return false
	}
	if kbl := ee.ll.KBListener(); kbl != nil {
		env := ee.env(ev)
		kbl(env, ev.Rune(), ev.Key(), ev.Modifiers())
		ee.reportReported(env)
		return false
	}
	if ev.Key() == tcell.KeyRune {
		if l, ok := ee.ll.RuneListenerOf(ev.Rune()); ok {
			env := ee.env(ev)
			l(env)
			ee.reportReported(env)
		}
		return false
	}
	if l, ok := ee.ll.KeyListenerOf(ev.Key(), ev.Modifiers()); ok {
		env := ee.env(ev)
		l(env)
		ee.reportReported(env)
	}
	return false
}

// focusNext moves the keyboard focus to the next divider of the layout
// tree.
func (ee *Events) focusNext() {
	dd := Dividers(ee.scr.root)
	if len(dd) == 0 {
		return
	}
	if d := ee.Focused(); d.Split != nil {
		d.Split.Focus(-1)
	}
	ee.focus = (ee.focus + 1) % len(dd)
	dd[ee.focus].Split.Focus(dd[ee.focus].Index)
}

func (ee *Events) nudge(cells int) {
	d := ee.Focused()
	if d.Split == nil {
		return
	}
	ok, err := d.Split.Nudge(d.Index, cells)
	if err != nil {
		ee.lg.Warn("nudge", slog.Int("divider", d.Index),
			slog.String("err", err.Error()))
		return
	}
	ee.lg.Debug("nudge", slog.Int("divider", d.Index),
		slog.Int("cells", cells), slog.Bool("updated", ok))
}

// reportMouseEvent starts a divider drag if the primary button is
// pressed on a divider, passes pointer movements on to the dragged
// divider and ends the drag once the primary button is released.
func (ee *Events) reportMouseEvent(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasPressed := ee.buttons&tcell.Button1 != 0
	ee.buttons = ev.Buttons()

	switch {
	case ee.drag != nil && pressed:
		ee.drag.Move(x, y)
	case ee.drag != nil:
		ee.drag.Release(x, y)
		ee.drag = nil
	case pressed && !wasPressed && ee.scr.root != nil:
		s, i, ok := ee.scr.root.DividerAt(x, y)
		if !ok {
			break
		}
		if err := s.Press(i, x, y); err != nil {
			ee.lg.Warn("press divider", slog.Int("divider", i),
				slog.String("err", err.Error()))
			break
		}
		ee.drag = s
	}

	if l := ee.ll.MouseListener(); l != nil {
		env := ee.env(ev)
		l(env, x, y, ev.Buttons())
		ee.reportReported(env)
	}
}

// Dragging returns the split whose divider is dragged or nil.
func (ee *Events) Dragging() *Split { return ee.drag }

func (ee *Events) env(ev tcell.Event) *Env {
	return &Env{
		scr: ee.scr,
		EE:  ee,
		Evn: ev,
	}
}

// reportReported is for testing purposes reporting back each time an
// event was reported allowing the Testing-fixture-implementation to
// count reported events and end the event-loop automatically after a
// certain amount of reported events.
func (ee *Events) reportReported(env *Env) {
	if env != nil {
		env.reset()
	}
	if l := ee.reportedListener(); l != nil {
		l()
	}
}

func (ee *Events) reportedListener() func() {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	return ee.reported
}

func (ee *Events) resizeListener() Listener {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	return ee.resize
}

func (ee *Events) quitListener() func(*Env) {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	return ee.quit
}
