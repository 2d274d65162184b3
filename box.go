// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package splits

import "golang.org/x/exp/constraints"

// Box is the size of a rendered area, e.g. of a container, a panel or
// a divider.  Sizes are measured in terminal cells but are not
// necessarily integral since the layout model distributes space
// evenly.
type Box struct {
	Height, Width float64
}

// Along returns the box's extent along given axis, i.e. its width for
// the horizontal axis and its height for the vertical axis.
func (b Box) Along(a Axis) float64 {
	if a == Vertical {
		return b.Height
	}
	return b.Width
}

// Across returns the box's extent perpendicular to given axis.
func (b Box) Across(a Axis) float64 {
	if a == Vertical {
		return b.Width
	}
	return b.Height
}

// WithAlong returns a copy of b whose extent along given axis is set to
// given size.
func (b Box) WithAlong(a Axis, size float64) Box {
	if a == Vertical {
		b.Height = size
		return b
	}
	b.Width = size
	return b
}

// WithAcross returns a copy of b whose extent perpendicular to given
// axis is set to given size.
func (b Box) WithAcross(a Axis, size float64) Box {
	if a == Vertical {
		b.Width = size
		return b
	}
	b.Height = size
	return b
}

// Panel is a child of a container which is laid out along the
// container's axis.  A container does not own a panel's lifecycle, it
// only requests sizes.
type Panel interface {

	// Box returns the panel's actual rendered size which may differ
	// from the last requested size, e.g. due to rounding to terminal
	// cells.
	Box() Box

	// SetBox requests given size for the panel.
	SetBox(Box)
}

// ExtraSpace returns the space consumed by the n-1 dividers of n
// panels.  It is zero for n <= 1.
func ExtraSpace(thickness float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	return thickness * float64(n-1)
}

func nonNegative[T constraints.Integer | constraints.Float](v T) T {
	if v < 0 {
		return 0
	}
	return v
}

func abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
