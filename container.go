// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package splits

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrCollected is returned by Container.ChildrenReady if the
// container's panels have already been collected.
var ErrCollected = errors.New("splits: panels already collected")

// ErrNoDivider is returned for a divider index out of range.
var ErrNoDivider = errors.New("splits: no such divider")

// Container arranges its panels along one axis with a divider between
// each two adjacent panels.  It composes a layout Engine with the
// dividers' drag controllers and a pointer Capture.  A Container is
// driven by its host through three signals: ChildrenReady once the
// panels are available, Draw whenever the container's box changed and
// Press/Move/Release for pointer drags on a divider.
type Container struct {
	*Engine
	o         Orientation
	thickness float64
	threshold float64
	capture   *Capture
	centers   func(divider int) float64
	lg        *slog.Logger
	dd        []*Divider
	pressed   *Divider
	collected bool
}

// Option configures a container at its creation.
type Option func(*Container)

// WithOrientation sets the container's orientation which defaults to
// LeftToRight.
func WithOrientation(o Orientation) Option {
	return func(c *Container) { c.o = o }
}

// WithOrientationAttr sets the container's orientation from an
// orientation attribute value, see ParseOrientation.
func WithOrientationAttr(s string) Option {
	return func(c *Container) { c.o = ParseOrientation(s) }
}

// WithThickness sets the thickness of the container's dividers which
// defaults to DefaultThickness.
func WithThickness(t float64) Option {
	return func(c *Container) { c.thickness = nonNegative(t) }
}

// WithThreshold sets the minimal drag movement of the container's
// dividers which defaults to DefaultThreshold.
func WithThreshold(t float64) Option {
	return func(c *Container) { c.threshold = nonNegative(t) }
}

// WithCapture lets the container's dividers share given pointer
// capture, e.g. with the dividers of other containers on the same
// screen.  By default a container has its own capture.
func WithCapture(cp *Capture) Option {
	return func(c *Container) {
		if cp != nil {
			c.capture = cp
		}
	}
}

// WithCenters provides the live center along the axis of a divider
// given by its index as rendered by the host.  It defaults to
// Container.DividerCenter.
func WithCenters(f func(divider int) float64) Option {
	return func(c *Container) { c.centers = f }
}

// WithLogger sets the logger of the container, its engine and its
// dividers.
func WithLogger(lg *slog.Logger) Option {
	return func(c *Container) {
		if lg != nil {
			c.lg = lg
		}
	}
}

// NewContainer creates a new container without panels.  Panels are
// provided by ChildrenReady.
func NewContainer(oo ...Option) *Container {
	c := &Container{
		thickness: DefaultThickness,
		threshold: DefaultThreshold,
		capture:   &Capture{},
		lg:        discard,
	}
	for _, opt := range oo {
		opt(c)
	}
	c.Engine = NewEngine(c.o, 0)
	c.Engine.SetLogger(c.lg)
	return c
}

// SetLogger replaces the logger of the container, its engine and its
// dividers.
func (c *Container) SetLogger(lg *slog.Logger) {
	if lg == nil {
		lg = discard
	}
	c.lg = lg
	c.Engine.SetLogger(lg)
	for _, d := range c.dd {
		d.lg = lg
	}
}

// Thickness returns the thickness of the container's dividers.
func (c *Container) Thickness() float64 { return c.thickness }

// Capture returns the pointer capture of the container's dividers.
func (c *Container) Capture() *Capture { return c.capture }

// Collected is true once ChildrenReady was called, even with no
// panels.
func (c *Container) Collected() bool { return c.collected }

// ChildrenReady collects given panels and creates a divider between
// each two adjacent panels.  ChildrenReady fails with ErrCollected if
// it was already called, even with no panels.  Adding or removing
// panels afterwards is not supported.
func (c *Container) ChildrenReady(pp ...Panel) error {
	if c.collected {
		return ErrCollected
	}
	c.collected = true
	c.Engine = NewEngine(c.o, ExtraSpace(c.thickness, len(pp)), pp...)
	c.Engine.SetLogger(c.lg)
	c.dd = nil
	for i := 0; i+1 < len(pp); i++ {
		idx := i
		c.dd = append(c.dd, NewDivider(i, c.Engine, c.o,
			Thickness(c.thickness),
			Threshold(c.threshold),
			Logger(c.lg),
			Center(func() float64 { return c.center(idx) }),
		))
	}
	c.lg.Debug("children ready",
		slog.Int("panels", len(pp)),
		slog.Float64("extraSpace", c.ExtraSpace()))
	return nil
}

// Dividers returns the container's dividers in collection order.
func (c *Container) Dividers() []*Divider {
	return append([]*Divider(nil), c.dd...)
}

// Divider returns the divider with given index.
func (c *Container) Divider(i int) (*Divider, error) {
	if i < 0 || i >= len(c.dd) {
		return nil, fmt.Errorf("%w: %d", ErrNoDivider, i)
	}
	return c.dd[i], nil
}

// Draw reports a changed container box.  The first reported box
// triggers the initial layout, every following one a redistribution of
// the difference.  Draw is a no-op before the panels are collected.
func (c *Container) Draw(container Box) []Box {
	if !c.Collected() {
		return nil
	}
	return c.Engine.Draw(container)
}

// DividerBox returns the rendered box of the divider with given index
// in the container's current box.
func (c *Container) DividerBox(i int) Box {
	if i < 0 || i >= len(c.dd) {
		return Box{}
	}
	return c.dd[i].Box(c.Container())
}

// DividerCenter returns the center along the axis of the divider with
// given index relative to the container's start edge as calculated
// from the panels' actual sizes.
func (c *Container) DividerCenter(i int) float64 {
	if i < 0 || i >= len(c.dd) {
		return 0
	}
	before := c.dd[i].BeforeIndex
	return c.Offset(before, c.thickness) + c.Size(before) +
		c.thickness/2
}

func (c *Container) center(i int) float64 {
	if c.centers != nil {
		return c.centers(i)
	}
	return c.DividerCenter(i)
}

// Press starts dragging the divider with given index at given pointer
// position along the axis relative to the container's start edge.
func (c *Container) Press(divider int, pos float64) error {
	d, err := c.Divider(divider)
	if err != nil {
		return err
	}
	if err := d.Press(c.capture, pos); err != nil {
		return err
	}
	c.pressed = d
	return nil
}

// Dragging returns the currently dragged divider or nil.
func (c *Container) Dragging() *Divider {
	if c.pressed == nil || !c.pressed.Dragging() {
		return nil
	}
	return c.pressed
}

// Move reports a pointer movement to the capture which passes it on to
// the dragged divider if any.
func (c *Container) Move(pos float64) { c.capture.Move(pos) }

// Release reports the pointer release ending a drag.
func (c *Container) Release(pos float64) {
	c.capture.Up(pos)
	c.pressed = nil
}

// Nudge moves the divider with given index by given delta as if it had
// been dragged by that distance.  Nudge returns true iff the layout was
// updated.
func (c *Container) Nudge(divider int, delta float64) (bool, error) {
	d, err := c.Divider(divider)
	if err != nil {
		return false, err
	}
	center := c.center(divider)
	return d.Move(center+delta, center), nil
}

// Close releases a drag in progress without a pointer release, e.g. if
// the container is removed from its host.
func (c *Container) Close() {
	if c.pressed != nil {
		c.pressed.Release()
		c.pressed = nil
	}
}
