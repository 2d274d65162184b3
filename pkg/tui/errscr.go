// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ErrScr overlays the layout with a centered message while it is
// active.
type ErrScr struct {
	lib     tcell.Screen
	content string
	isDirty bool
	mutex   sync.Mutex
	Active  bool
	Style   tcell.Style
}

// IsDirty is true if the message changed since it was last drawn.
func (e *ErrScr) IsDirty() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.isDirty
}

func (e *ErrScr) String() string {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.content
}

// Set sets the displayed message.
func (e *ErrScr) Set(s string) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if s == e.content {
		return
	}
	e.isDirty = true
	e.content = s
}

func (e *ErrScr) sync() {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.isDirty = false
	e.lib.Clear()
	w, h := e.lib.Size()
	content := runewidth.Truncate(e.content, w, "")
	x, y := (w-runewidth.StringWidth(content))/2, h/2
	for _, r := range content {
		e.lib.SetContent(x, y, r, nil, e.Style)
		x += runewidth.RuneWidth(r)
	}
}
