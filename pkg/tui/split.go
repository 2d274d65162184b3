// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/slukits/splits"
)

// ErrParent is returned by NewSplit for a pane which already belongs
// to a split.
var ErrParent = errors.New("tui: pane already has a split")

// Split renders a splits.Container: its panes next to each other along
// the container's axis with a divider between each two adjacent panes.
// Dividers are drawn as lines of '│' respectively '─' runes.
type Split struct {
	c       *splits.Container
	pp      []*Pane
	rect    Rect
	dd      []Rect
	dirty   bool
	placing bool
	focused int
	lg      *slog.Logger

	Style      tcell.Style
	DragStyle  tcell.Style
	FocusStyle tcell.Style
}

// NewSplit creates a split for given panes whereas given options
// configure the split's container.  Note that a split measures the
// live center of a dragged divider on the screen, i.e. a WithCenters
// option is overwritten.
func NewSplit(pp []*Pane, oo ...splits.Option) (*Split, error) {
	s := &Split{
		focused:    -1,
		lg:         discard,
		DragStyle:  tcell.StyleDefault.Reverse(true),
		FocusStyle: tcell.StyleDefault.Bold(true),
	}
	for _, p := range pp {
		if p.parent != nil {
			return nil, fmt.Errorf("%w: %s", ErrParent, p.Title)
		}
	}
	oo = append(oo, splits.WithCenters(s.center))
	s.c = splits.NewContainer(oo...)
	panels := make([]splits.Panel, len(pp))
	for i, p := range pp {
		p.parent = s
		panels[i] = p
	}
	s.pp = append(s.pp, pp...)
	if err := s.c.ChildrenReady(panels...); err != nil {
		return nil, err
	}
	return s, nil
}

// SetLogger sets given logger for a split and its container.
func (s *Split) SetLogger(lg *slog.Logger) {
	if lg == nil {
		lg = discard
	}
	s.lg = lg
	s.c.SetLogger(lg)
}

// Container returns the split container rendered by a split.
func (s *Split) Container() *splits.Container { return s.c }

// Panes returns a split's panes in collection order.
func (s *Split) Panes() []*Pane { return append([]*Pane(nil), s.pp...) }

// Rect returns the screen area of a split.
func (s *Split) Rect() Rect { return s.rect }

// DividerRect returns the screen area of the divider with given index.
func (s *Split) DividerRect(i int) Rect {
	s.place()
	if i < 0 || i >= len(s.dd) {
		return Rect{}
	}
	return s.dd[i]
}

// Layout assigns given area to a split which reports it to its
// container; the first area triggers the initial layout of its panes
// any following one the redistribution of the difference.
func (s *Split) Layout(r Rect) {
	s.rect = r
	s.c.Draw(r.Box())
	s.dirty = true
	s.place()
	s.layoutContents()
}

func (s *Split) layoutContents() {
	for _, p := range s.pp {
		p.layoutContent()
	}
}

func (s *Split) thickness() int {
	return int(math.Round(s.c.Thickness()))
}

// place distributes a split's area among its panes and dividers if a
// pane's requested box has changed.  The requested sizes are treated
// like flex bases of flex items which grow and shrink to fill the
// split; the resulting fractions are rounded by the largest remainder
// method.  The placed boxes become the panes' requested boxes, i.e.
// once placed all requests are whole cells filling the split and a
// following request changing two panes by a zero-sum amount leaves
// all other panes in place.
func (s *Split) place() {
	if !s.dirty || s.placing || len(s.pp) == 0 {
		return
	}
	s.placing = true
	defer func() { s.placing = false }()
	s.dirty = false

	ax, n, th := s.c.Orientation().Axis(), len(s.pp), s.thickness()
	avail := s.rect.Along(ax) - th*(n-1)
	if avail < 0 {
		avail = 0
	}
	bases := make([]float64, n)
	for i, p := range s.pp {
		bases[i] = p.req.Along(ax)
	}
	sizes := flex(bases, avail)

	s.dd = make([]Rect, n-1)
	pos := s.rect.Start(ax)
	for v := 0; v < n; v++ {
		i := s.c.Visual(v)
		s.pp[i].rect = s.span(ax, pos, sizes[i])
		s.pp[i].req = s.pp[i].rect.Box()
		pos += sizes[i]
		if v+1 == n {
			break
		}
		d := i
		if next := s.c.Visual(v + 1); next < d {
			d = next
		}
		s.dd[d] = s.span(ax, pos, th)
		pos += th
	}
}

// span returns the rect starting at given position along given axis
// with given extent which spans the split across the axis.
func (s *Split) span(ax splits.Axis, pos, extent int) Rect {
	if ax == splits.Vertical {
		return Rect{X: s.rect.X, Y: pos, Width: s.rect.Width,
			Height: extent}
	}
	return Rect{X: pos, Y: s.rect.Y, Width: extent, Height: s.rect.Height}
}

// flex grows given bases evenly or shrinks them weighted by their size
// until they sum up to given available space and rounds them to whole
// cells whose sum is the available space.
func flex(bases []float64, avail int) []int {
	sum := 0.0
	for _, b := range bases {
		sum += math.Max(0, b)
	}
	free := float64(avail) - sum
	ff := make([]float64, len(bases))
	for i, b := range bases {
		b = math.Max(0, b)
		switch {
		case free >= 0:
			ff[i] = b + free/float64(len(bases))
		case sum > 0:
			ff[i] = b + free*b/sum
		}
		ff[i] = math.Max(0, ff[i])
	}
	return largestRemainder(ff, avail)
}

func largestRemainder(ff []float64, total int) []int {
	ii, taken := make([]int, len(ff)), 0
	if len(ff) == 0 {
		return ii
	}
	for i, f := range ff {
		ii[i] = int(math.Floor(f))
		taken += ii[i]
	}
	used := make([]bool, len(ff))
	for ; taken < total; taken++ {
		top := -1
		for i, f := range ff {
			if used[i] {
				continue
			}
			if top < 0 || f-math.Floor(f) > ff[top]-math.Floor(ff[top]) {
				top = i
			}
		}
		if top < 0 { // all got one; start over
			used = make([]bool, len(ff))
			taken--
			continue
		}
		used[top] = true
		ii[top]++
	}
	return ii
}

// Draw writes a split's panes and dividers to given screen.
func (s *Split) Draw(scr tcell.Screen) {
	s.place()
	for _, p := range s.pp {
		p.Draw(scr)
	}
	glyph := '│'
	if s.c.Orientation().Axis() == splits.Vertical {
		glyph = '─'
	}
	dragged := -1
	if d := s.c.Dragging(); d != nil {
		dragged = d.Index()
	}
	for i, r := range s.dd {
		sty := s.Style
		switch i {
		case dragged:
			sty = s.DragStyle
		case s.focused:
			sty = s.FocusStyle
		}
		for x := r.X; x < r.X+r.Width; x++ {
			for y := r.Y; y < r.Y+r.Height; y++ {
				scr.SetContent(x, y, glyph, nil, sty)
			}
		}
	}
}

// DividerAt reports the divider of a split or of a nested split at
// given cell.
func (s *Split) DividerAt(x, y int) (*Split, int, bool) {
	if !s.rect.Contains(x, y) {
		return nil, 0, false
	}
	s.place()
	for i, r := range s.dd {
		if r.Contains(x, y) {
			return s, i, true
		}
	}
	for _, p := range s.pp {
		if !p.rect.Contains(x, y) {
			continue
		}
		return p.DividerAt(x, y)
	}
	return nil, 0, false
}

// pos maps given cell to a pointer position along the split's axis
// relative to its start edge.  A pointer is at the center of a cell.
func (s *Split) pos(x, y int) float64 {
	ax := s.c.Orientation().Axis()
	if ax == splits.Vertical {
		return float64(y-s.rect.Y) + 0.5
	}
	return float64(x-s.rect.X) + 0.5
}

// center returns the live center of given divider relative to the
// split's start edge as it is rendered.
func (s *Split) center(divider int) float64 {
	r := s.DividerRect(divider)
	ax := s.c.Orientation().Axis()
	return float64(r.Start(ax)-s.rect.Start(ax)) +
		float64(r.Along(ax))/2
}

// Press starts dragging the divider with given index at given cell.
func (s *Split) Press(divider, x, y int) error {
	if err := s.c.Press(divider, s.pos(x, y)); err != nil {
		return err
	}
	s.lg.Debug("divider pressed",
		slog.Int("divider", divider), slog.Int("x", x), slog.Int("y", y))
	return nil
}

// Move reports a pointer movement to given cell during a drag.
func (s *Split) Move(x, y int) {
	s.c.Move(s.pos(x, y))
	s.layoutContents()
}

// Release ends a drag at given cell.
func (s *Split) Release(x, y int) {
	s.c.Release(s.pos(x, y))
	s.layoutContents()
	s.lg.Debug("divider released", slog.Int("x", x), slog.Int("y", y))
}

// Dragging returns the index of the dragged divider or -1.
func (s *Split) Dragging() int {
	if d := s.c.Dragging(); d != nil {
		return d.Index()
	}
	return -1
}

// Nudge moves the divider with given index by given number of cells.
// Nudge returns true if the layout was updated.
func (s *Split) Nudge(divider, cells int) (bool, error) {
	ok, err := s.c.Nudge(divider, float64(cells))
	if ok {
		s.layoutContents()
	}
	return ok, err
}

// Focus highlights the divider with given index; -1 removes the
// highlight.
func (s *Split) Focus(divider int) { s.focused = divider }

// Focused returns the index of the highlighted divider or -1.
func (s *Split) Focused() int { return s.focused }
