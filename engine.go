// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package splits

import (
	"log/slog"
	"math"

	"github.com/slukits/ints"
)

// epsilon relative to a container's extent below which a difference
// between container and panels is float noise.
const epsilon = 1e-9

// Engine owns the sizing model of one container's panels along one
// axis.  It computes the initial equal split, spreads the difference
// of a container resize evenly among the panels and applies
// constrained updates in which only a subset of panels may change
// size.
//
// An Engine is not concurrency save.  It is meant to be driven by a
// single event loop which processes a resize and a divider drag
// atomically one after the other.
type Engine struct {
	o           Orientation
	pp          []Panel
	ss          []Box
	extraSpace  float64
	container   Box
	initialized bool
	lg          *slog.Logger
}

// NewEngine creates an engine for given panels arranged according to
// given orientation whereas extraSpace is the space along the axis
// which is reserved for dividers and not available to the panels.
// Note the panels are collected once; adding or removing panels later
// is not supported.
func NewEngine(o Orientation, extraSpace float64, pp ...Panel) *Engine {
	return &Engine{
		o:          o,
		pp:         append([]Panel(nil), pp...),
		ss:         make([]Box, len(pp)),
		extraSpace: nonNegative(extraSpace),
		lg:         discard,
	}
}

// SetLogger replaces the engine's logger which defaults to a logger
// discarding all records.
func (e *Engine) SetLogger(lg *slog.Logger) {
	if lg == nil {
		lg = discard
	}
	e.lg = lg
}

// Len returns the number of panels.
func (e *Engine) Len() int { return len(e.pp) }

// Orientation returns the orientation of the engine's panels.
func (e *Engine) Orientation() Orientation { return e.o }

// ExtraSpace returns the space reserved for dividers.
func (e *Engine) ExtraSpace() float64 { return e.extraSpace }

// Initialized is true after the initial layout was calculated.
func (e *Engine) Initialized() bool { return e.initialized }

// Container returns the container box of the last layout pass.
func (e *Engine) Container() Box { return e.container }

// Panels returns the engine's panels in collection order.
func (e *Engine) Panels() []Panel {
	return append([]Panel(nil), e.pp...)
}

// Sizes returns a copy of the stored size model.
func (e *Engine) Sizes() []Box {
	return append([]Box(nil), e.ss...)
}

// Size returns the actual size along the axis of the panel with given
// index or 0 for an index out of range.
func (e *Engine) Size(i int) float64 {
	if i < 0 || i >= len(e.pp) {
		return 0
	}
	return e.pp[i].Box().Along(e.o.Axis())
}

// Visual maps the visual slot v, i.e. the v-th panel seen from the
// container's start edge, to its panel index.
func (e *Engine) Visual(v int) int {
	if e.o.Reversed() {
		return len(e.pp) - 1 - v
	}
	return v
}

// Offset returns the distance along the axis from the container's
// start edge to the start edge of the panel with given index whereas
// each panel visually preceding given panel is followed by a divider
// of given thickness.  The offset is calculated from actual panel
// sizes.
func (e *Engine) Offset(i int, thickness float64) float64 {
	offset := 0.0
	for v := 0; v < len(e.pp); v++ {
		idx := e.Visual(v)
		if idx == i {
			break
		}
		offset += e.Size(idx) + thickness
	}
	return offset
}

// Draw is the engine's reaction to a changed container box.  The first
// call calculates the initial layout and reconciles the model with the
// actual panel sizes; any following call redistributes the difference
// between the new container box and the current panel sizes.
func (e *Engine) Draw(container Box) []Box {
	if !e.initialized {
		e.InitialLayout(container)
		e.reconcile(nil)
		return e.Sizes()
	}
	return e.Resize(container)
}

// InitialLayout sets all panels to the container's extent across the
// axis and splits the container's extent along the axis, minus the
// extra space, evenly among them.  InitialLayout is effective only
// once, following calls return the current model untouched.
func (e *Engine) InitialLayout(container Box) []Box {
	if e.initialized {
		return e.Sizes()
	}
	e.initialized = true
	e.container = container
	if len(e.pp) == 0 {
		return nil
	}
	ax := e.o.Axis()
	along := nonNegative(
		(container.Along(ax) - e.extraSpace) / float64(len(e.pp)))
	box := Box{}.WithAlong(ax, along).WithAcross(ax, container.Across(ax))
	for i, p := range e.pp {
		e.ss[i] = box
		p.SetBox(box)
	}
	e.lg.Debug("initial layout",
		slog.String("pass", "initial"),
		slog.String("orientation", e.o.String()),
		slog.Int("panels", len(e.pp)),
		slog.Float64("size", along))
	return e.Sizes()
}

// Resize spreads the difference between the container's new extent
// along the axis and the space currently occupied by the panels (plus
// the extra space) evenly among all panels.  Note that only the
// difference is spread, i.e. proportions established by divider drags
// are preserved in absolute terms.  Across the axis all panels are set
// to the container's extent.  Finally the model is reconciled with the
// panels' actual sizes.
func (e *Engine) Resize(container Box) []Box {
	if !e.initialized {
		return e.InitialLayout(container)
	}
	e.container = container
	e.redistribute(nil)
	return e.Sizes()
}

// ConstrainedUpdate sets the panels with given indices to given sizes
// along the axis and reconciles them with the container like Resize
// does; all panels not listed keep their sizes.  ConstrainedUpdate
// returns the updated boxes of the listed indices in the order of
// given indices.  Indices out of range are ignored, if the slices'
// lengths differ the shorter one is used.
func (e *Engine) ConstrainedUpdate(idx []int, sizes []float64) []Box {
	n := len(idx)
	if len(sizes) < n {
		n = len(sizes)
	}
	ax := e.o.Axis()
	affected := &ints.Set{}
	for k := 0; k < n; k++ {
		i := idx[k]
		if i < 0 || i >= len(e.pp) {
			continue
		}
		affected.Add(i)
		e.ss[i] = e.ss[i].WithAlong(ax, nonNegative(sizes[k]))
		e.pp[i].SetBox(e.ss[i])
	}
	if affected.Len() == 0 {
		return nil
	}
	e.redistribute(affected)

	bb := make([]Box, 0, n)
	for k := 0; k < n; k++ {
		if idx[k] < 0 || idx[k] >= len(e.pp) {
			continue
		}
		bb = append(bb, e.ss[idx[k]])
	}
	return bb
}

// redistribute spreads the difference between the container and the
// panels' actual sizes evenly among the panels in given set or all
// panels if the set is nil.  A share a panel can't absorb without
// becoming negative is spread again among the remaining panels.  A
// difference within float noise of the container's extent is ignored.
func (e *Engine) redistribute(only *ints.Set) {
	if len(e.pp) == 0 {
		return
	}
	ax := e.o.Axis()
	// all actual sizes are taken before the first panel is updated
	sizes := make([]float64, len(e.pp))
	occupied := e.extraSpace
	open := []int{}
	for i, p := range e.pp {
		sizes[i] = p.Box().Along(ax)
		occupied += sizes[i]
		if only == nil || only.Has(i) {
			open = append(open, i)
		}
	}
	diff := e.container.Along(ax) - occupied
	if abs(diff) <= epsilon*math.Max(1, e.container.Along(ax)) {
		diff = 0
	}
	share := diff / float64(len(open))

	for left := diff; left != 0 && len(open) > 0; {
		spread, kept := left/float64(len(open)), open[:0]
		left = 0
		for _, i := range open {
			sizes[i] += spread
			if sizes[i] <= 0 {
				left += sizes[i]
				sizes[i] = 0
				continue
			}
			kept = append(kept, i)
		}
		open = kept
	}

	for i, p := range e.pp {
		if only != nil && !only.Has(i) {
			continue
		}
		e.ss[i] = e.ss[i].
			WithAlong(ax, sizes[i]).
			WithAcross(ax, e.container.Across(ax))
		p.SetBox(e.ss[i])
	}
	e.reconcile(only)

	e.lg.Debug("redistribute",
		slog.String("pass", pass(only)),
		slog.Float64("diff", diff),
		slog.Float64("share", share),
		slog.Any("sizes", e.alongSizes()))
}

// reconcile overwrites the model with the actual sizes of the panels
// in given set or of all panels if the set is nil.
func (e *Engine) reconcile(only *ints.Set) {
	for i, p := range e.pp {
		if only != nil && !only.Has(i) {
			continue
		}
		e.ss[i] = p.Box()
	}
}

func (e *Engine) alongSizes() []float64 {
	ff := make([]float64, len(e.ss))
	for i, b := range e.ss {
		ff[i] = b.Along(e.o.Axis())
	}
	return ff
}

func pass(only *ints.Set) string {
	if only == nil {
		return "resize"
	}
	return "constrained"
}
