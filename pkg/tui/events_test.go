// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tui_test

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	. "github.com/slukits/gounit"
	"github.com/slukits/splits/pkg/tui"
)

var (
	errScreen = errors.New("mock: screen: failing creation")
	errInit   = errors.New("mock: screen: failing initialization")
)

type screenFactory struct{ fail, failInit bool }

func (f *screenFactory) NewScreen() (tcell.Screen, error) {
	if f.fail {
		return nil, errScreen
	}
	return f.NewSimulationScreen(""), nil
}

func (f *screenFactory) NewSimulationScreen(
	s string,
) tcell.SimulationScreen {
	return &failingScreen{
		SimulationScreen: tcell.NewSimulationScreen(s),
		fail:             f.failInit,
	}
}

// failingScreen is a simulation screen whose initialization may fail.
type failingScreen struct {
	tcell.SimulationScreen
	fail bool
}

func (s *failingScreen) Init() error {
	if s.fail {
		return errInit
	}
	return s.SimulationScreen.Init()
}

type NewEvents struct{ Suite }

func (s *NewEvents) Fails_if_tcell_s_screen_creation_fails(t *T) {
	tui.SetScreenFactory(&screenFactory{fail: true})
	_, err := tui.New(nil)
	t.ErrIs(err, tui.ErrScreen)
}

func (s *NewEvents) Fails_if_tcell_s_screen_init_fails(t *T) {
	tui.SetScreenFactory(&screenFactory{failInit: true})
	_, err := tui.New(nil)
	t.ErrIs(err, tui.ErrInit)
}

func (s *NewEvents) Succeeds_if_none_of_the_above(t *T) {
	tui.SetScreenFactory(&screenFactory{})
	ee, err := tui.New(nil)
	t.FatalOn(err)
	tui.GetLib(ee).Fini()
}

func (s *NewEvents) Sim_fails_if_tcell_s_sim_init_fails(t *T) {
	tui.SetScreenFactory(&screenFactory{failInit: true})
	_, _, err := tui.Sim(nil)
	t.ErrIs(err, tui.ErrInit)
}

func (s *NewEvents) Has_copy_of_default_features(t *T) {
	tui.SetScreenFactory(tui.DefaultScreenFactory())
	ee, _ := tui.Test(t.GoT(), nil)
	for _, f := range tui.AllFeatures {
		for _, k := range tui.DefaultFeatures.KeysOf(f) {
			t.Eq(f, ee.Features.KeyEvent(k.Key, k.Mod))
		}
		for _, r := range tui.DefaultFeatures.RunesOf(f) {
			t.Eq(f, ee.Features.RuneEvent(r))
		}
	}
	t.True(tui.DefaultFeatures != ee.Features)
}

func (s *NewEvents) Finalize(t *S) {
	tui.SetScreenFactory(tui.DefaultScreenFactory())
}

// TestNewEvents can not run in parallel since its tests manipulate the
// package-global state which is necessary to mock errors of the
// tcell-library.
func TestNewEvents(t *testing.T) { Run(&NewEvents{}, t) }

type events struct{ Suite }

func (s *events) Report_an_initial_resize_on_listening(t *T) {
	ee, tt := tui.Test(t.GoT(), nil)
	resized := 0
	ee.Resize(func(e *tui.Env) {
		w, h := e.Size()
		t.Eq(80, w)
		t.Eq(25, h)
		resized++
	})

	ee.Listen()

	t.Eq(1, resized)
	t.Not.True(ee.IsListening())
	t.Eq(0, tt.Max)
}

func (s *events) Report_an_update_to_its_listener(t *T) {
	ee, _ := tui.Test(t.GoT(), nil, 0)
	updated := false

	t.FatalOn(ee.Update(func(e *tui.Env) { updated = true }))

	t.True(updated)
	t.True(ee.IsListening())
	t.FatalOn(ee.Update(nil))
}

func (s *events) Stop_listening_on_quit_runes_and_keys(t *T) {
	for _, fire := range []func(*tui.Testing){
		func(tt *tui.Testing) { tt.FireRune('q') },
		func(tt *tui.Testing) { tt.FireKey(tcell.KeyCtrlC) },
		func(tt *tui.Testing) { tt.FireKey(tcell.KeyCtrlD) },
	} {
		ee, tt := tui.Test(t.GoT(), nil, 0)
		quitted := false
		ee.Quit(func(*tui.Env) { quitted = true })
		fire(tt)
		t.Not.True(ee.IsListening())
		t.True(quitted)
	}
}

func (s *events) Preserve_the_last_screen_on_quit_listening(t *T) {
	root, err := tui.NewSplit([]*tui.Pane{
		tui.NewPane("", "left"), tui.NewPane("", "right")})
	t.FatalOn(err)
	ee, tt := tui.Test(t.GoT(), root, 0)
	tt.FireResize(11, 1)

	ee.QuitListening()

	t.Not.True(ee.IsListening())
	t.Eq("left │right", tt.LastScreen)
}

func (s *events) Report_runes_and_keys_to_their_listeners(t *T) {
	ee, tt := tui.Test(t.GoT(), nil, 2)
	runes, keys := 0, 0
	t.FatalOn(ee.Rune('a', func(*tui.Env) { runes++ }))
	t.FatalOn(ee.Key(tcell.KeyEnter, tcell.ModNone,
		func(*tui.Env) { keys++ }))

	tt.FireRune('a')
	tt.FireKey(tcell.KeyEnter)

	t.Eq(1, runes)
	t.Eq(1, keys)
	t.Not.True(ee.IsListening())
}

func (s *events) Shadow_rune_listeners_by_a_keyboard_listener(t *T) {
	ee, tt := tui.Test(t.GoT(), nil, 0)
	runes := 0
	t.FatalOn(ee.Rune('a', func(*tui.Env) { runes++ }))
	got := []rune{}
	ee.Keyboard(func(_ *tui.Env, r rune, _ tcell.Key, _ tcell.ModMask) {
		got = append(got, r)
	})

	tt.FireRune('a')
	tt.FireRune('b')
	ee.Keyboard(nil)
	tt.FireRune('a')

	t.Eq([]rune{'a', 'b'}, got)
	t.Eq(1, runes)
}

func (s *events) Show_an_error_on_a_too_small_screen(t *T) {
	ee, tt := tui.Test(t.GoT(), nil, 0)
	resized := 0
	ee.Resize(func(*tui.Env) { resized++ })
	ee.Update(func(e *tui.Env) { e.SetMin(30, 5) })
	t.Eq(1, resized)

	tt.FireResize(40, 3)

	t.Eq(1, resized)
	t.Contains(tt.String(), "minimum screen size: 30x5")

	tt.FireResize(40, 5)

	t.Eq(2, resized)
	t.Not.Contains(tt.String(), "minimum")
}

func (s *events) Report_mouse_events_to_the_mouse_listener(t *T) {
	ee, tt := tui.Test(t.GoT(), nil, 0)
	type click struct {
		x, y int
		bb   tcell.ButtonMask
	}
	got := []click{}
	ee.Mouse(func(_ *tui.Env, x, y int, bb tcell.ButtonMask) {
		got = append(got, click{x, y, bb})
	})

	tt.FireMouse(3, 4, tcell.Button1)
	tt.FireMouse(3, 4, tcell.ButtonNone)

	t.Eq([]click{
		{3, 4, tcell.Button1}, {3, 4, tcell.ButtonNone}}, got)
}

func TestEvents(t *testing.T) { Run(&events{}, t) }
