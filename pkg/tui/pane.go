// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tui

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/slukits/splits"
)

// Pane is a panel of a Split.  It displays an optional title in its
// first line followed by its text or its content element.  Text lines
// which don't fit into a pane's width are clipped.
//
// A Pane keeps the box requested by its split's layout engine apart
// from the screen area it actually got: the latter is what Box
// reports.
type Pane struct {
	Title string
	Text  string

	// Content is laid out into the pane's area below its title.  If
	// set the pane's Text is not displayed.
	Content Element

	Style      tcell.Style
	TitleStyle tcell.Style

	parent *Split
	req    splits.Box
	rect   Rect
}

// NewPane creates a pane with given title and text.
func NewPane(title, text string) *Pane {
	return &Pane{
		Title:      title,
		Text:       text,
		TitleStyle: tcell.StyleDefault.Bold(true),
	}
}

// SetContent sets the element displayed by a pane and returns the pane.
func (p *Pane) SetContent(e Element) *Pane {
	p.Content = e
	return p
}

// Box returns the whole cells a pane occupies on the screen.
func (p *Pane) Box() splits.Box {
	if p.parent != nil {
		p.parent.place()
	}
	return p.rect.Box()
}

// SetBox requests given box for a pane.  A pane of a split gets its
// actual area once the split places all of its panes; a pane without
// split rounds the requested box to whole cells.
func (p *Pane) SetBox(b splits.Box) {
	p.req = b
	if p.parent != nil {
		p.parent.dirty = true
		return
	}
	p.rect.Width = int(math.Round(b.Width))
	p.rect.Height = int(math.Round(b.Height))
}

// Requested returns the last box requested by SetBox.  For a pane of a
// split it is the box the pane was last placed in.
func (p *Pane) Requested() splits.Box { return p.req }

// Rect returns the screen area of a pane.
func (p *Pane) Rect() Rect {
	if p.parent != nil {
		p.parent.place()
	}
	return p.rect
}

// Layout assigns given area to a pane and lays out its content.
func (p *Pane) Layout(r Rect) {
	p.rect = r
	p.layoutContent()
}

func (p *Pane) layoutContent() {
	if p.Content == nil {
		return
	}
	p.Content.Layout(p.contentRect())
}

func (p *Pane) contentRect() Rect {
	r := p.rect
	if p.Title == "" || r.Height == 0 {
		return r
	}
	r.Y++
	r.Height--
	return r
}

// Draw writes a pane's title and text or content to given screen.
func (p *Pane) Draw(scr tcell.Screen) {
	if p.rect.Empty() {
		return
	}
	y := p.rect.Y
	if p.Title != "" {
		p.line(scr, y, p.Title, p.TitleStyle)
		y++
	}
	if p.Content != nil {
		p.Content.Draw(scr)
		return
	}
	for _, l := range strings.Split(p.Text, "\n") {
		if y >= p.rect.Y+p.rect.Height {
			return
		}
		p.line(scr, y, l, p.Style)
		y++
	}
}

// line writes given string at given screen line clipped to the pane's
// width.
func (p *Pane) line(scr tcell.Screen, y int, s string, sty tcell.Style) {
	x := p.rect.X
	for _, r := range runewidth.Truncate(s, p.rect.Width, "") {
		scr.SetContent(x, y, r, nil, sty)
		x += runewidth.RuneWidth(r)
	}
}

// DividerAt reports the divider of a pane's content at given cell.
func (p *Pane) DividerAt(x, y int) (*Split, int, bool) {
	if p.Content == nil {
		return nil, 0, false
	}
	return p.Content.DividerAt(x, y)
}
