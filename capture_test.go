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

func Test_a_capture_admits_only_one_drag(t *testing.T) {
	c := &splits.Capture{}
	token, err := c.Acquire(&recorder{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Acquire(&recorder{}); !errors.Is(
		err, splits.ErrCaptured) {
		t.Errorf("expected ErrCaptured; got %v", err)
	}
	token.Release()
	if _, err := c.Acquire(&recorder{}); err != nil {
		t.Errorf("expected acquisition after release; got %v", err)
	}
}

func Test_a_capture_restores_the_handler_saved_on_acquisition(
	t *testing.T,
) {
	c := &splits.Capture{}
	foreign, drag := &recorder{}, &recorder{}
	c.Install(foreign)

	token, _ := c.Acquire(drag)
	c.Move(1)
	c.Up(2)
	c.Move(3)

	if diff := cmp.Diff([]float64{1}, drag.moves); diff != "" {
		t.Errorf("unexpected drag moves:\n%s", diff)
	}
	if diff := cmp.Diff([]float64{2}, drag.ups); diff != "" {
		t.Errorf("unexpected drag ups:\n%s", diff)
	}
	if diff := cmp.Diff([]float64{3}, foreign.moves); diff != "" {
		t.Errorf("unexpected foreign moves:\n%s", diff)
	}
	if token.Active() {
		t.Error("expected pointer-up to release the drag's token")
	}
}

func Test_releasing_a_token_is_idempotent(t *testing.T) {
	c := &splits.Capture{}
	first := &recorder{}
	c.Install(first)
	token, _ := c.Acquire(&recorder{})
	token.Release()

	second := &recorder{}
	restore := c.Install(second)
	token.Release()

	if c.Handler() != second {
		t.Error("expected a second release to leave handlers alone")
	}
	restore()
	if c.Handler() != first {
		t.Error("expected restore to reinstall the first handler")
	}
}

func Test_canceling_a_capture_releases_without_pointer_up(t *testing.T) {
	c := &splits.Capture{}
	drag := &recorder{}
	c.Acquire(drag)

	c.Cancel()

	if c.Active() {
		t.Error("expected capture to be released")
	}
	if len(drag.ups) != 0 {
		t.Errorf("expected no pointer-up; got %v", drag.ups)
	}
	c.Cancel() // no-op
}
