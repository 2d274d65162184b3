// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package splits_test

import (
	"testing"

	"github.com/slukits/splits"
)

func Test_orientation_attributes_map_to_axis_and_direction(t *testing.T) {
	for attr, exp := range map[string]struct {
		o        splits.Orientation
		axis     splits.Axis
		reversed bool
		flex     string
	}{
		"tb":                  {splits.TopToBottom, splits.Vertical, false, "column"},
		"Vertical":            {splits.TopToBottom, splits.Vertical, false, "column"},
		"bt":                  {splits.BottomToTop, splits.Vertical, true, "column-reverse"},
		"reverse-vertical":    {splits.BottomToTop, splits.Vertical, true, "column-reverse"},
		"LR":                  {splits.LeftToRight, splits.Horizontal, false, "row"},
		"horizontal":          {splits.LeftToRight, splits.Horizontal, false, "row"},
		"rl":                  {splits.RightToLeft, splits.Horizontal, true, "row-reverse"},
		" reverse-horizontal": {splits.RightToLeft, splits.Horizontal, true, "row-reverse"},
		"":                    {splits.LeftToRight, splits.Horizontal, false, "row"},
		"sideways":            {splits.LeftToRight, splits.Horizontal, false, "row"},
	} {
		o := splits.ParseOrientation(attr)
		if o != exp.o {
			t.Errorf("%q: expected %v; got %v", attr, exp.o, o)
		}
		if o.Axis() != exp.axis {
			t.Errorf("%q: expected axis %v; got %v",
				attr, exp.axis, o.Axis())
		}
		if o.Reversed() != exp.reversed {
			t.Errorf("%q: expected reversed %v", attr, exp.reversed)
		}
		if o.FlexDirection() != exp.flex {
			t.Errorf("%q: expected flex direction %s; got %s",
				attr, exp.flex, o.FlexDirection())
		}
	}
}

func Test_an_orientation_s_string_parses_back_to_it(t *testing.T) {
	for _, o := range []splits.Orientation{splits.LeftToRight,
		splits.RightToLeft, splits.TopToBottom, splits.BottomToTop} {
		if got := splits.ParseOrientation(o.String()); got != o {
			t.Errorf("%s: parsed back to %s", o, got)
		}
	}
}

func Test_boxes_are_measured_along_and_across_an_axis(t *testing.T) {
	b := splits.Box{Height: 3, Width: 7}
	if b.Along(splits.Horizontal) != 7 || b.Across(splits.Horizontal) != 3 {
		t.Errorf("unexpected horizontal extents of %v", b)
	}
	if b.Along(splits.Vertical) != 3 || b.Across(splits.Vertical) != 7 {
		t.Errorf("unexpected vertical extents of %v", b)
	}
	exp := splits.Box{Height: 5, Width: 11}
	if got := b.WithAlong(splits.Vertical, 5).
		WithAcross(splits.Vertical, 11); got != exp {
		t.Errorf("expected %v; got %v", exp, got)
	}
}

func Test_extra_space_is_reserved_for_n_minus_one_dividers(
	t *testing.T,
) {
	for n, exp := range map[int]float64{0: 0, 1: 0, 2: 2, 5: 8} {
		if got := splits.ExtraSpace(2, n); got != exp {
			t.Errorf("%d panels: expected %v; got %v", n, exp, got)
		}
	}
}
