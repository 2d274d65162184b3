// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package splits

import (
	"errors"
	"sync"
)

// PointerHandler receives pointer movements and the pointer release
// along a container's axis.
type PointerHandler interface {
	Move(pos float64)
	Up(pos float64)
}

// ErrCaptured is returned by Capture.Acquire and Divider.Press if an
// other drag currently holds the pointer capture.
var ErrCaptured = errors.New("splits: pointer captured by other drag")

// Capture is the single slot of the currently installed pointer
// handler shared by all dividers of a screen.  A drag acquires the
// capture on pointer-down which saves the installed handler and
// installs the drag's handler; releasing the obtained token restores
// the saved handler.  Only one drag may hold the capture at a time.
// The zero value is ready to use.
type Capture struct {
	mutex   sync.Mutex
	current PointerHandler
	token   *Token
}

// Token represents an acquired capture.  Its release is idempotent.
type Token struct {
	c     *Capture
	saved PointerHandler
	done  bool
}

// Install installs given foreign (i.e. non-drag) handler and returns a
// function restoring the handler installed before.
func (c *Capture) Install(h PointerHandler) (restore func()) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	saved := c.current
	c.current = h
	return func() {
		c.mutex.Lock()
		defer c.mutex.Unlock()
		c.current = saved
	}
}

// Acquire installs given drag handler and returns the token which
// releases it again.  Acquire fails with ErrCaptured while an other
// token is active.
func (c *Capture) Acquire(h PointerHandler) (*Token, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.token != nil {
		return nil, ErrCaptured
	}
	c.token = &Token{c: c, saved: c.current}
	c.current = h
	return c.token, nil
}

// Active is true while a drag holds the capture.
func (c *Capture) Active() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.token != nil
}

// Handler returns the currently installed handler.
func (c *Capture) Handler() PointerHandler {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.current
}

// Move reports a pointer movement to the installed handler.
func (c *Capture) Move(pos float64) {
	if h := c.Handler(); h != nil {
		h.Move(pos)
	}
}

// Up reports the pointer release to the installed handler.  If a drag
// holds the capture its token is released afterwards.
func (c *Capture) Up(pos float64) {
	c.mutex.Lock()
	h, token := c.current, c.token
	c.mutex.Unlock()
	if h != nil {
		h.Up(pos)
	}
	if token != nil {
		token.Release()
	}
}

// Cancel releases an active drag without reporting a pointer release,
// e.g. if the dragged container is disconnected.
func (c *Capture) Cancel() {
	c.mutex.Lock()
	token := c.token
	c.mutex.Unlock()
	if token != nil {
		token.Release()
	}
}

// Active is true until the token is released.
func (t *Token) Active() bool {
	t.c.mutex.Lock()
	defer t.c.mutex.Unlock()
	return !t.done
}

// Release restores the handler which was installed when the token was
// acquired.  Release is idempotent.
func (t *Token) Release() {
	t.c.mutex.Lock()
	defer t.c.mutex.Unlock()
	if t.done {
		return
	}
	t.done = true
	if t.c.token == t {
		t.c.token = nil
		t.c.current = t.saved
	}
}
