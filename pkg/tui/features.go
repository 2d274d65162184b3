// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/slukits/ints"
)

// Feature classifies keys/runes for "internal" event handling.
type Feature uint64

const (
	// NoFeature classifies keys/runes not registered for any "internal"
	// event.
	NoFeature Feature = iota
	// FtQuit classifies keys/runes registered for the quit event.
	FtQuit
	// FtFocus classifies keys/runes registered for focusing the next
	// divider.
	FtFocus
	// FtShrink classifies keys/runes registered for moving the focused
	// divider towards the start edge of its split.
	FtShrink
	// FtGrow classifies keys/runes registered for moving the focused
	// divider towards the end edge of its split.
	FtGrow
)

// AllFeatures provides a slice of all internally handled features.
var AllFeatures = []Feature{FtQuit, FtFocus, FtShrink, FtGrow}

// Features provides information about keys/runes which are registered
// for features provided by the tui-package.  It also allows to change
// these in a consistent and convenient way.  The zero value is not
// ready to use.  An Events instance is initialized with a copy of the
// DefaultFeatures.
type Features struct {
	mutex  *sync.Mutex
	frozen bool
	keys   map[tcell.ModMask]map[tcell.Key]Feature
	runes  map[rune]Feature
}

// DefaultFeatures are the default runes and keys which are associated
// with internally handled events.  NOTE DefaultFeatures cannot be
// modified, a copy of them can!
var DefaultFeatures = &Features{
	mutex:  &sync.Mutex{},
	frozen: true,
	keys: map[tcell.ModMask]map[tcell.Key]Feature{
		tcell.ModNone: {
			tcell.KeyCtrlC: FtQuit,
			tcell.KeyCtrlD: FtQuit,
			tcell.KeyTab:   FtFocus,
		},
	},
	runes: map[rune]Feature{
		'q': FtQuit,
		'<': FtShrink,
		'>': FtGrow,
	},
}

// Copy creates a new Features instance initialized with the features of
// receiving Features instance.
func (ff *Features) Copy() *Features {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	cpy := Features{
		mutex: &sync.Mutex{},
		keys:  make(map[tcell.ModMask]map[tcell.Key]Feature),
		runes: map[rune]Feature{},
	}
	for m, kk := range ff.keys {
		cpy.keys[m] = map[tcell.Key]Feature{}
		for k, f := range kk {
			cpy.keys[m][k] = f
		}
	}
	for r, f := range ff.runes {
		cpy.runes[r] = f
	}
	return &cpy
}

// Add associates given feature with given rune respectively given
// key and modifier.  Provide the zero rune to associate a key; a
// non-zero rune is associated regardless of the key.
func (ff *Features) Add(f Feature, r rune, k tcell.Key, m tcell.ModMask) {
	if ff.frozen || f == NoFeature {
		return
	}
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	if r != 0 {
		ff.runes[r] = f
		return
	}
	if k == tcell.KeyNUL {
		return
	}
	if ff.keys[m] == nil {
		ff.keys[m] = map[tcell.Key]Feature{}
	}
	ff.keys[m][k] = f
}

// Del removes all keys and runes registered for given feature except
// for the quit feature.  In the later case only registered runes are
// removed, i.e. ctrl-c and ctrl-d always quit.
func (ff *Features) Del(f Feature) {
	if ff.frozen {
		return
	}
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	for r, _f := range ff.runes {
		if f == _f {
			delete(ff.runes, r)
		}
	}
	if f == FtQuit {
		return
	}
	for _, kk := range ff.keys {
		for k, _f := range kk {
			if f == _f {
				delete(kk, k)
			}
		}
	}
}

// Registered returns the set of features currently registered.
func (ff *Features) Registered() *ints.Set {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	_ff := &ints.Set{}
	for _, kk := range ff.keys {
		for _, f := range kk {
			_ff.Add(int(f))
		}
	}
	for _, f := range ff.runes {
		_ff.Add(int(f))
	}
	return _ff
}

type FeatureKey struct {
	Mod tcell.ModMask
	Key tcell.Key
}

// KeysOf returns the keys with their modifiers for given feature.
func (ff *Features) KeysOf(f Feature) []*FeatureKey {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	kk := []*FeatureKey{}
	for m, _kk := range ff.keys {
		for k, _f := range _kk {
			if f != _f {
				continue
			}
			kk = append(kk, &FeatureKey{Mod: m, Key: k})
		}
	}
	return kk
}

// RunesOf returns the runes for given feature.
func (ff *Features) RunesOf(f Feature) []rune {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	rr := []rune{}
	for r, _f := range ff.runes {
		if f != _f {
			continue
		}
		rr = append(rr, r)
	}
	return rr
}

// HasKey returns true if given key is registered for a feature.
func (ff *Features) HasKey(k tcell.Key, m tcell.ModMask) bool {
	return ff.KeyEvent(k, m) != NoFeature
}

// HasRune returns true if given rune is registered for a feature.
func (ff *Features) HasRune(r rune) bool {
	return ff.RuneEvent(r) != NoFeature
}

// KeyEvent maps a key to its feature or to NoFeature if not
// registered.  Control keys are found regardless of a reported ctrl
// modifier.
func (ff *Features) KeyEvent(k tcell.Key, m tcell.ModMask) Feature {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	if f := ff.keys[m][k]; f != NoFeature || m&tcell.ModCtrl == 0 {
		return f
	}
	return ff.keys[m&^tcell.ModCtrl][k]
}

// RuneEvent maps a rune to its feature or to NoFeature if not
// registered.
func (ff *Features) RuneEvent(r rune) Feature {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	return ff.runes[r]
}
