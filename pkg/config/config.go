// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config reads the description of a layout tree from YAML and
// builds the corresponding tree of tui.Splits and tui.Panes, e.g.
//
//	orientation: lr
//	panels:
//	  - title: files
//	  - split:
//	      orientation: tb
//	      thickness: 1
//	      panels:
//	        - title: editor
//	          text: hello
//	        - title: terminal
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/slukits/splits"
	"github.com/slukits/splits/pkg/tui"
	"gopkg.in/yaml.v3"
)

// ErrConfig is wrapped by all errors reporting an invalid layout
// description.
var ErrConfig = errors.New("config: invalid layout")

// Layout describes a split container.  A zero Thickness or Threshold
// is replaced by the respective default.
type Layout struct {
	Orientation string  `yaml:"orientation"`
	Thickness   int     `yaml:"thickness"`
	Threshold   float64 `yaml:"threshold"`
	Panels      []Panel `yaml:"panels"`
}

// Panel describes a pane of a split container which either displays
// given text or a nested split container.
type Panel struct {
	Title string  `yaml:"title"`
	Text  string  `yaml:"text"`
	Split *Layout `yaml:"split"`
}

// Default returns the layout used if no layout file is given: a
// sidebar next to a vertically split main area.
func Default() *Layout {
	return &Layout{
		Orientation: "lr",
		Panels: []Panel{
			{Title: "sidebar", Text: "drag a divider with the mouse\n" +
				"or focus it with tab and\nmove it with < and >"},
			{Split: &Layout{
				Orientation: "tb",
				Panels: []Panel{
					{Title: "main", Text: "q quits"},
					{Title: "log"},
				},
			}},
		},
	}
}

// Load reads the layout description at given path.
func Load(path string) (*Layout, error) {
	bb, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load: %w", err)
	}
	return Parse(bb)
}

// Parse decodes given YAML layout description and validates it.
// Unknown fields are an error.
func Parse(bb []byte) (*Layout, error) {
	dec := yaml.NewDecoder(bytes.NewReader(bb))
	dec.KnownFields(true)
	l := &Layout{}
	if err := dec.Decode(l); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty description", ErrConfig)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate reports the first problem of a layout and its nested
// layouts.
func (l *Layout) Validate() error {
	return l.validate("layout")
}

func (l *Layout) validate(path string) error {
	switch {
	case len(l.Panels) == 0:
		return fmt.Errorf("%w: %s: no panels", ErrConfig, path)
	case l.Thickness < 0:
		return fmt.Errorf("%w: %s: negative thickness %d",
			ErrConfig, path, l.Thickness)
	case l.Threshold < 0:
		return fmt.Errorf("%w: %s: negative threshold %v",
			ErrConfig, path, l.Threshold)
	}
	for i, p := range l.Panels {
		if p.Split == nil {
			continue
		}
		err := p.Split.validate(fmt.Sprintf("%s.panels[%d].split", path, i))
		if err != nil {
			return err
		}
	}
	return nil
}

// Build creates the layout tree described by a layout.  All splits of
// the tree share one pointer capture, i.e. only one divider can be
// dragged at a time.
func (l *Layout) Build(lg *slog.Logger) (*tui.Split, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l.build(&splits.Capture{}, lg)
}

func (l *Layout) build(
	cp *splits.Capture, lg *slog.Logger,
) (*tui.Split, error) {
	pp := make([]*tui.Pane, len(l.Panels))
	for i, p := range l.Panels {
		pp[i] = tui.NewPane(p.Title, p.Text)
		if p.Split == nil {
			continue
		}
		nested, err := p.Split.build(cp, lg)
		if err != nil {
			return nil, err
		}
		pp[i].SetContent(nested)
	}
	oo := []splits.Option{
		splits.WithOrientationAttr(l.Orientation),
		splits.WithCapture(cp),
		splits.WithLogger(lg),
	}
	if l.Thickness > 0 {
		oo = append(oo, splits.WithThickness(float64(l.Thickness)))
	}
	if l.Threshold > 0 {
		oo = append(oo, splits.WithThreshold(l.Threshold))
	}
	return tui.NewSplit(pp, oo...)
}
