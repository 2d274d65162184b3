// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package splits

import (
	"log/slog"
)

const (
	// DefaultThreshold is the minimal pointer movement along the axis
	// in cells which is reported to the layout engine by a dragged
	// divider.
	DefaultThreshold = 3.0

	// DefaultThickness is the default extent of a divider along its
	// container's axis in cells.
	DefaultThickness = 1.0
)

// Resizer is the layout engine's side of a divider drag: Size provides
// the current size along the axis of a panel by its index and
// ConstrainedUpdate applies new sizes to the given panels only.
// *Engine implements Resizer.
type Resizer interface {
	Size(idx int) float64
	ConstrainedUpdate(idx []int, sizes []float64) []Box
}

// DividerConfig assigns the panel roles of a divider: the panel
// visually preceding the divider is the "before" panel, the panel
// visually following it the "after" panel.
type DividerConfig struct {
	BeforeIndex, AfterIndex int
}

// NewDividerConfig returns the roles of the divider between the panels
// with index i and i+1 for given orientation.  Is the orientation
// reversed the panel i+1 is rendered before the divider and becomes
// the before panel.
func NewDividerConfig(i int, o Orientation) DividerConfig {
	if o.Reversed() {
		return DividerConfig{BeforeIndex: i + 1, AfterIndex: i}
	}
	return DividerConfig{BeforeIndex: i, AfterIndex: i + 1}
}

// Divider sits between two adjacent panels and turns a pointer drag
// into a zero-sum size transfer between them: what the before panel
// gains the after panel loses and vice versa.  No panel is ever sized
// below zero.
type Divider struct {
	DividerConfig
	idx       int
	r         Resizer
	o         Orientation
	threshold float64
	thickness float64
	lg        *slog.Logger
	token     *Token
	center    func() float64
	last      float64
}

// DividerOption configures a divider at its creation.
type DividerOption func(*Divider)

// Threshold sets the minimal pointer movement which is passed on to
// the layout engine.  Smaller movements are ignored to avoid layout
// churn on pointer jitter.
func Threshold(t float64) DividerOption {
	return func(d *Divider) { d.threshold = nonNegative(t) }
}

// Thickness sets a divider's extent along the axis.
func Thickness(t float64) DividerOption {
	return func(d *Divider) { d.thickness = nonNegative(t) }
}

// Logger sets the logger a divider reports its drags to.
func Logger(lg *slog.Logger) DividerOption {
	return func(d *Divider) {
		if lg != nil {
			d.lg = lg
		}
	}
}

// Center sets the function providing a divider's live center along
// the axis which moves reported by a pointer capture are measured
// against.  Without it moves are measured against the last position
// which was passed on to the layout engine.
func Center(f func() float64) DividerOption {
	return func(d *Divider) { d.center = f }
}

// NewDivider creates the divider between the panels with index idx
// and idx+1 of given resizer whose panels are arranged according to
// given orientation.
func NewDivider(
	idx int, r Resizer, o Orientation, oo ...DividerOption,
) *Divider {
	d := &Divider{
		DividerConfig: NewDividerConfig(idx, o),
		idx:           idx,
		r:             r,
		o:             o,
		threshold:     DefaultThreshold,
		thickness:     DefaultThickness,
		lg:            discard,
	}
	for _, opt := range oo {
		opt(d)
	}
	return d
}

// Index returns the index of the panel which precedes the divider in
// collection order.
func (d *Divider) Index() int { return d.idx }

// Thickness returns the divider's extent along the axis.
func (d *Divider) Thickness() float64 { return d.thickness }

// Threshold returns the divider's minimal reported movement.
func (d *Divider) Threshold() float64 { return d.threshold }

// Box returns the divider's rendered box in given container: its
// thickness along the axis and the container's extent across it.
func (d *Divider) Box(container Box) Box {
	ax := d.o.Axis()
	return Box{}.WithAlong(ax, d.thickness).
		WithAcross(ax, container.Across(ax))
}

// Dragging is true between a successful Press and the Release.
func (d *Divider) Dragging() bool {
	return d.token != nil && d.token.Active()
}

// Press starts a drag at given pointer position along the axis by
// acquiring given pointer capture.  Press fails with ErrCaptured if an
// other drag holds the capture.  Move events dispatched by the capture
// are passed to the divider until the capture receives the pointer-up
// event or Release is called.
func (d *Divider) Press(c *Capture, pos float64) error {
	token, err := c.Acquire(&dragHandler{d: d})
	if err != nil {
		return err
	}
	d.token = token
	d.last = pos
	d.lg.Debug("drag start",
		slog.Int("divider", d.idx),
		slog.Float64("pos", pos))
	return nil
}

// Release ends a drag and restores the pointer handler which was
// installed before the drag started.  Release is idempotent.
func (d *Divider) Release() {
	if d.token == nil {
		return
	}
	d.token.Release()
	d.token = nil
	d.lg.Debug("drag end", slog.Int("divider", d.idx))
}

// Move reports the pointer position pos along the axis while the
// divider's live center along the axis is at given midpoint.  The
// difference is the distance the divider has to move which is ignored
// if it is smaller than the divider's threshold.  Otherwise the before
// panel grows by that distance and the after panel shrinks by it (or
// vice versa for a negative distance) respecting that no panel may
// become smaller than zero.  Move returns true iff the layout engine
// was updated.
func (d *Divider) Move(pos, midpoint float64) bool {
	delta := pos - midpoint
	if abs(delta) < d.threshold {
		return false
	}
	before, after := Transfer(
		d.r.Size(d.BeforeIndex), d.r.Size(d.AfterIndex), delta)
	d.r.ConstrainedUpdate(
		[]int{d.BeforeIndex, d.AfterIndex}, []float64{before, after})
	d.lg.Debug("drag move",
		slog.Int("divider", d.idx),
		slog.Float64("delta", delta),
		slog.Float64("before", before),
		slog.Float64("after", after))
	return true
}

// Transfer moves delta from the after size to the before size.  Would
// one of them become negative it is set to zero and its deficit is
// charged to the other one, i.e. the sum of the returned sizes always
// equals the sum of given sizes.
func Transfer(before, after, delta float64) (float64, float64) {
	total := before + after
	before += delta
	switch {
	case before < 0:
		before = 0
	case before > total:
		before = total
	}
	return before, total - before
}

// midpoint returns the divider's live center if known and the last
// position passed on to the layout engine otherwise.
func (d *Divider) midpoint() float64 {
	if d.center != nil {
		return d.center()
	}
	return d.last
}

// dragHandler is the pointer handler a divider installs at the capture
// while it is dragged.
type dragHandler struct{ d *Divider }

func (h *dragHandler) Move(pos float64) {
	if h.d.Move(pos, h.d.midpoint()) {
		h.d.last = pos
	}
}

// Up is called by the capture before it releases the drag's token.
func (h *dragHandler) Up(pos float64) {
	h.d.lg.Debug("drag end",
		slog.Int("divider", h.d.idx), slog.Float64("pos", pos))
	h.d.token = nil
}
