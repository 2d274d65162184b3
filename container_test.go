// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package splits_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/slukits/splits"
)

func Test_a_container_reserves_space_for_its_dividers(t *testing.T) {
	c := splits.NewContainer(splits.WithThickness(4))
	pp := panels(3)
	if err := c.ChildrenReady(pp...); err != nil {
		t.Fatal(err)
	}
	if c.ExtraSpace() != 8 {
		t.Errorf("expected extra space 8; got %v", c.ExtraSpace())
	}
	if len(c.Dividers()) != 2 {
		t.Errorf("expected 2 dividers; got %d", len(c.Dividers()))
	}

	c.Draw(splits.Box{Height: 50, Width: 300})

	exp := []float64{292.0 / 3, 292.0 / 3, 292.0 / 3}
	if diff := cmp.Diff(exp, widths(pp), approx); diff != "" {
		t.Errorf("unexpected widths (-want +got):\n%s", diff)
	}
}

func Test_a_container_collects_its_panels_once(t *testing.T) {
	c := splits.NewContainer()
	if err := c.ChildrenReady(panels(2)...); err != nil {
		t.Fatal(err)
	}
	if err := c.ChildrenReady(panels(3)...); !errors.Is(
		err, splits.ErrCollected) {
		t.Errorf("expected ErrCollected; got %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 panels; got %d", c.Len())
	}
}

func Test_a_container_collected_without_panels_stays_empty(
	t *testing.T,
) {
	c := splits.NewContainer()
	if err := c.ChildrenReady(); err != nil {
		t.Fatal(err)
	}
	if !c.Collected() {
		t.Error("expected a container collected without panels")
	}
	if err := c.ChildrenReady(panels(2)...); !errors.Is(
		err, splits.ErrCollected) {
		t.Errorf("expected ErrCollected; got %v", err)
	}
	if c.Len() != 0 || len(c.Dividers()) != 0 {
		t.Errorf("expected no panels and dividers; got %d, %d",
			c.Len(), len(c.Dividers()))
	}
}

func Test_a_dragged_container_resized_to_zero_collapses_all_panels(
	t *testing.T,
) {
	c := splits.NewContainer(splits.WithThickness(2))
	pp := panels(3)
	if err := c.ChildrenReady(pp...); err != nil {
		t.Fatal(err)
	}
	c.Draw(splits.Box{Height: 10, Width: 94})
	center := c.DividerCenter(0)
	if err := c.Press(0, center); err != nil {
		t.Fatal(err)
	}
	c.Move(center - 25)
	c.Release(center - 25)
	if diff := cmp.Diff([]float64{5, 55, 30}, widths(pp)); diff != "" {
		t.Fatalf("unexpected widths after drag (-want +got):\n%s", diff)
	}

	c.Draw(splits.Box{})

	if diff := cmp.Diff([]float64{0, 0, 0}, widths(pp)); diff != "" {
		t.Errorf("expected collapsed panels (-want +got):\n%s", diff)
	}
}

func Test_a_container_without_panels_ignores_draws(t *testing.T) {
	c := splits.NewContainer()
	if bb := c.Draw(splits.Box{Height: 3, Width: 3}); bb != nil {
		t.Errorf("expected no sizes; got %v", bb)
	}
	if c.Initialized() {
		t.Error("expected an uncollected container to stay " +
			"uninitialized")
	}
	if c.ExtraSpace() != 0 {
		t.Errorf("expected no extra space; got %v", c.ExtraSpace())
	}
}

func Test_a_container_s_orientation_attribute_defaults_to_lr(
	t *testing.T,
) {
	c := splits.NewContainer(splits.WithOrientationAttr("diagonal"))
	if c.Orientation() != splits.LeftToRight {
		t.Errorf("expected lr; got %v", c.Orientation())
	}
	c = splits.NewContainer(splits.WithOrientationAttr("reverse-vertical"))
	if c.Orientation() != splits.BottomToTop {
		t.Errorf("expected bt; got %v", c.Orientation())
	}
}

func Test_a_container_drag_updates_the_divider_s_panels(t *testing.T) {
	c := splits.NewContainer(splits.WithThickness(4))
	pp := panels(2)
	c.ChildrenReady(pp...)
	c.Draw(splits.Box{Height: 10, Width: 204})

	center := c.DividerCenter(0)
	if center != 102 {
		t.Fatalf("expected divider center 102; got %v", center)
	}
	if err := c.Press(0, center); err != nil {
		t.Fatal(err)
	}
	c.Move(center + 30)
	if c.Dragging() == nil {
		t.Error("expected a dragged divider")
	}
	c.Release(center + 30)

	if diff := cmp.Diff([]float64{130, 70}, widths(pp)); diff != "" {
		t.Errorf("unexpected widths (-want +got):\n%s", diff)
	}
	if c.Dragging() != nil || c.Capture().Active() {
		t.Error("expected drag to have ended")
	}
}

func Test_a_container_measures_moves_against_the_live_center(
	t *testing.T,
) {
	c := splits.NewContainer()
	pp := panels(2)
	c.ChildrenReady(pp...)
	c.Draw(splits.Box{Height: 10, Width: 41})

	c.Press(0, 20.5)
	c.Move(22.5) // below threshold
	c.Move(24.5) // 4 from the live center
	c.Move(26.5) // 2 from the live center: ignored
	c.Release(26.5)

	if diff := cmp.Diff([]float64{24, 16}, widths(pp)); diff != "" {
		t.Errorf("unexpected widths (-want +got):\n%s", diff)
	}
}

func Test_a_reversed_container_s_drag_follows_the_pointer(t *testing.T) {
	c := splits.NewContainer(splits.WithOrientation(splits.RightToLeft))
	pp := panels(2)
	c.ChildrenReady(pp...)
	c.Draw(splits.Box{Height: 10, Width: 41})

	// panel 1 is rendered left of the divider
	c.Press(0, c.DividerCenter(0))
	c.Move(c.DividerCenter(0) + 10)
	c.Release(0)

	if diff := cmp.Diff([]float64{10, 30}, widths(pp)); diff != "" {
		t.Errorf("unexpected widths (-want +got):\n%s", diff)
	}
}

func Test_a_container_keeps_foreign_pointer_handlers(t *testing.T) {
	cp := &splits.Capture{}
	foreign := &recorder{}
	restore := cp.Install(foreign)
	defer restore()

	c := splits.NewContainer(splits.WithCapture(cp))
	c.ChildrenReady(panels(2)...)
	c.Draw(splits.Box{Height: 10, Width: 41})

	c.Press(0, 20.5)
	c.Move(30)
	c.Release(30)
	c.Move(31)

	if diff := cmp.Diff([]float64{31}, foreign.moves); diff != "" {
		t.Errorf("expected only moves after the drag:\n%s", diff)
	}
	if len(foreign.ups) != 0 {
		t.Errorf("expected the drag's pointer-up not to be reported; "+
			"got %v", foreign.ups)
	}
}

func Test_closing_a_container_releases_a_drag(t *testing.T) {
	c := splits.NewContainer()
	c.ChildrenReady(panels(3)...)
	c.Draw(splits.Box{Height: 10, Width: 50})
	if err := c.Press(1, c.DividerCenter(1)); err != nil {
		t.Fatal(err)
	}

	c.Close()

	if c.Capture().Active() {
		t.Error("expected capture to be released")
	}
	if err := c.Press(0, 0); err != nil {
		t.Errorf("expected a new drag to be possible; got %v", err)
	}
}

func Test_a_container_reports_unknown_dividers(t *testing.T) {
	c := splits.NewContainer()
	c.ChildrenReady(panels(2)...)
	if err := c.Press(1, 0); !errors.Is(err, splits.ErrNoDivider) {
		t.Errorf("expected ErrNoDivider; got %v", err)
	}
	if _, err := c.Nudge(-1, 3); !errors.Is(err, splits.ErrNoDivider) {
		t.Errorf("expected ErrNoDivider; got %v", err)
	}
}

func Test_nudging_a_divider_moves_it_by_the_given_delta(t *testing.T) {
	c := splits.NewContainer(splits.WithOrientation(splits.TopToBottom))
	pp := panels(3)
	c.ChildrenReady(pp...)
	c.Draw(splits.Box{Height: 32, Width: 10})

	if ok, _ := c.Nudge(1, -1); ok {
		t.Error("expected a nudge below the threshold to be ignored")
	}
	if ok, _ := c.Nudge(1, -3); !ok {
		t.Error("expected a nudge of -3 to update the layout")
	}

	if diff := cmp.Diff([]float64{10, 7, 13}, heights(pp)); diff != "" {
		t.Errorf("unexpected heights (-want +got):\n%s", diff)
	}
}

func Test_divider_boxes_are_refreshed_on_every_draw(t *testing.T) {
	c := splits.NewContainer(splits.WithThickness(2))
	c.ChildrenReady(panels(2)...)

	c.Draw(splits.Box{Height: 10, Width: 40})
	if got := c.DividerBox(0); got != (splits.Box{Height: 10, Width: 2}) {
		t.Errorf("unexpected divider box %v", got)
	}
	c.Draw(splits.Box{Height: 17, Width: 40})
	if got := c.DividerBox(0); got != (splits.Box{Height: 17, Width: 2}) {
		t.Errorf("unexpected divider box %v", got)
	}
}

type recorder struct{ moves, ups []float64 }

func (r *recorder) Move(pos float64) { r.moves = append(r.moves, pos) }
func (r *recorder) Up(pos float64)   { r.ups = append(r.ups, pos) }
