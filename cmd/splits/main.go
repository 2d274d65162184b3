// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Splits shows a tree of resizable panes in the terminal.  Dividers
between panes are dragged with the mouse or focused with tab and moved
with < and >.  q, ctrl-c or ctrl-d quit.

Usage:

	splits [-layout file.yaml] [-orientation lr|rl|tb|bt] [-log file]

Without a layout file a sidebar next to a vertically split main area is
shown.  The orientation flag overrides the orientation of the layout's
root.  If a log file is given, structured JSON records of drags, nudges
and redistributions are appended to it.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/slukits/splits/pkg/config"
	"github.com/slukits/splits/pkg/tui"
)

func main() {
	if err := run(os.Args[1:], os.Stderr, tui.New); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// listener creates the events of given layout tree.
type listener func(tui.Element, ...tui.Option) (*tui.Events, error)

// run parses given arguments, builds the layout tree and blocks until
// a quit event occurs.  Usage errors are reported to out.
func run(args []string, out io.Writer, ll listener) error {
	fs := flag.NewFlagSet("splits", flag.ContinueOnError)
	fs.SetOutput(out)
	layout := fs.String("layout", "", "yaml file describing the layout")
	orientation := fs.String("orientation", "",
		"orientation of the layout's root overriding the layout file")
	logFile := fs.String("log", "", "file JSON log records are appended to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("splits: unexpected argument %q", fs.Arg(0))
	}

	l := config.Default()
	if *layout != "" {
		var err error
		if l, err = config.Load(*layout); err != nil {
			return err
		}
	}
	if *orientation != "" {
		l.Orientation = *orientation
	}

	lg, closeLog, err := logger(*logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	root, err := l.Build(lg)
	if err != nil {
		return err
	}
	ee, err := ll(root, tui.Logger(lg))
	if err != nil {
		return err
	}
	lg.Info("listening", "layout", *layout, "splits", len(tui.Splits(root)))
	ee.Listen()
	return nil
}

func logger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)),
			func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("splits: log: %w", err)
	}
	lg := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return lg, func() { f.Close() }, nil
}
