// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package splits

import "strings"

// Axis is the single dimension along which the panels of a container
// are arranged and resized.
type Axis uint8

const (
	// Horizontal distributes a container's width among its panels.
	Horizontal Axis = iota
	// Vertical distributes a container's height among its panels.
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Orientation combines an Axis with a direction, i.e. whether panels
// are rendered in collection order or in reversed order along the
// axis.  The zero value is LeftToRight.
type Orientation uint8

const (
	LeftToRight Orientation = iota
	RightToLeft
	TopToBottom
	BottomToTop
)

// ParseOrientation maps the value of an orientation attribute to an
// Orientation.  Recognized are (case-insensitive) "tb" and "vertical",
// "bt" and "reverse-vertical", "lr" and "horizontal", "rl" and
// "reverse-horizontal".  Any other value, the empty string included,
// falls back to LeftToRight.
func ParseOrientation(s string) Orientation {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tb", "vertical":
		return TopToBottom
	case "bt", "reverse-vertical":
		return BottomToTop
	case "rl", "reverse-horizontal":
		return RightToLeft
	default:
		return LeftToRight
	}
}

// Axis returns the axis along which panels are distributed.
func (o Orientation) Axis() Axis {
	if o == TopToBottom || o == BottomToTop {
		return Vertical
	}
	return Horizontal
}

// Reversed is true if panels are rendered in reversed collection
// order.
func (o Orientation) Reversed() bool {
	return o == RightToLeft || o == BottomToTop
}

// FlexDirection returns the css flex-direction equivalent of o which is
// one of "row", "row-reverse", "column" or "column-reverse".
func (o Orientation) FlexDirection() string {
	switch o {
	case RightToLeft:
		return "row-reverse"
	case TopToBottom:
		return "column"
	case BottomToTop:
		return "column-reverse"
	default:
		return "row"
	}
}

// String returns the short attribute value of o, i.e. "lr", "rl", "tb"
// or "bt".  ParseOrientation(o.String()) == o holds for all
// orientations.
func (o Orientation) String() string {
	switch o {
	case RightToLeft:
		return "rl"
	case TopToBottom:
		return "tb"
	case BottomToTop:
		return "bt"
	default:
		return "lr"
	}
}
