// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tui

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Listener is the most common type of listener: a callback provided
// with the event's environment.
type Listener = func(*Env)

// KBListener is a keyboard callback provided with the environment and
// all information about the received key event as reported by tcell.
type KBListener = func(*Env, rune, tcell.Key, tcell.ModMask)

// MouseListener is called back with the cell and the buttons of a
// mouse event.  It is informed after a potential divider drag has
// processed the event.
type MouseListener = func(*Env, int, int, tcell.ButtonMask)

// Listeners resembles a concurrency save set of registered event
// listeners mapped to their events.
type Listeners struct {
	mutex *sync.Mutex
	ff    *Features
	kk    map[tcell.ModMask]map[tcell.Key]Listener
	rr    map[rune]Listener
	kb    KBListener
	mouse MouseListener
}

// NewListeners creates a new listeners instance whereas given features
// define the runes and keys which may not be used for listener
// registration.  If ff is nil DefaultFeatures are used.
func NewListeners(ff *Features) *Listeners {
	if ff == nil {
		ff = DefaultFeatures
	}
	return &Listeners{
		ff:    ff,
		mutex: &sync.Mutex{},
		rr:    map[rune]Listener{},
		kk:    map[tcell.ModMask]map[tcell.Key]Listener{},
	}
}

// ErrEvents is the general type for errors at listener registration.
var ErrEvents = errors.New("tui: add event")

// ErrZeroRune for attempting to register for the zero-rune.
var ErrZeroRune = fmt.Errorf("%w: can't register zero-rune", ErrEvents)

// ErrZeroKey for attempting to register for the zero-key
var ErrZeroKey = fmt.Errorf("%w: can't register zero-key", ErrEvents)

// ErrFeature for attempting to register for a key/rune which is
// associated with a feature.
var ErrFeature = fmt.Errorf("%w: associated with a feature", ErrEvents)

// ErrExists for attempting to register for a key/rune which is already
// registered.
var ErrExists = fmt.Errorf("%w: already registered", ErrEvents)

// Rune registers provided listener for given rune respectively removes
// the registration for given rune if the listener is nil.  Rune fails
// if already a listener is registered for given rune or if the zero
// rune is given or if given rune is associated with a feature.
func (ll *Listeners) Rune(r rune, l Listener) error {
	ll.mutex.Lock()
	defer ll.mutex.Unlock()

	if l == nil {
		delete(ll.rr, r)
		return nil
	}
	if r == rune(0) {
		return ErrZeroRune
	}
	if ll.ff.HasRune(r) {
		return fmt.Errorf("%w: %c", ErrFeature, r)
	}
	if _, ok := ll.rr[r]; ok {
		return fmt.Errorf("%w: %c", ErrExists, r)
	}
	ll.rr[r] = l
	return nil
}

// Keyboard listener shadows all other rune/key listeners except for
// features until it is removed by Keyboard(nil).
func (ll *Listeners) Keyboard(l KBListener) {
	ll.mutex.Lock()
	defer ll.mutex.Unlock()
	ll.kb = l
}

func (ll *Listeners) KBListener() KBListener {
	ll.mutex.Lock()
	defer ll.mutex.Unlock()
	return ll.kb
}

// Mouse registers given mouse listener, nil removes it.
func (ll *Listeners) Mouse(l MouseListener) {
	ll.mutex.Lock()
	defer ll.mutex.Unlock()
	ll.mouse = l
}

func (ll *Listeners) MouseListener() MouseListener {
	ll.mutex.Lock()
	defer ll.mutex.Unlock()
	return ll.mouse
}

// Key registers provided listener for given key/mode combination
// respectively removes the registration for given key/mode if the
// listener is nil.  Key fails if already a listener is registered for
// given key/mode or if the zero key is given or if given key is
// associated with a feature.
func (ll *Listeners) Key(k tcell.Key, m tcell.ModMask, l Listener) error {
	ll.mutex.Lock()
	defer ll.mutex.Unlock()

	if l == nil {
		if ll.kk[m] != nil {
			delete(ll.kk[m], k)
		}
		return nil
	}
	if k == tcell.KeyNUL {
		return ErrZeroKey
	}
	if ll.ff.HasKey(k, m) {
		return ErrFeature
	}
	if ll.kk[m] == nil {
		ll.kk[m] = map[tcell.Key]Listener{k: l}
		return nil
	}
	if _, ok := ll.kk[m][k]; ok {
		return ErrExists
	}
	ll.kk[m][k] = l
	return nil
}

// KeyListenerOf returns the listener registered for given key/mode
// combination.  The second return value is false if no listener is
// registered for given key.
func (ll *Listeners) KeyListenerOf(
	k tcell.Key, m tcell.ModMask,
) (Listener, bool) {
	ll.mutex.Lock()
	defer ll.mutex.Unlock()

	l, ok := ll.kk[m][k]
	return l, ok
}

// RuneListenerOf returns the listener registered for given rune.  The
// second return value is false if no listener is registered for given
// rune.
func (ll *Listeners) RuneListenerOf(r rune) (Listener, bool) {
	ll.mutex.Lock()
	defer ll.mutex.Unlock()

	l, ok := ll.rr[r]
	return l, ok
}
