// SPDX-License-Identifier: Unlicense OR MIT

package op

import (
	"testing"

	"gioui.org/x/arrange/f32"
)

func TestClipChecks(t *testing.T) {
	defer func() {
		if err := recover(); err == nil {
			t.Error("out of order Pop didn't panic")
		}
	}()
	var ops Ops
	outer := ops.PushClip(f32.Rect(0, 0, 10, 10))
	ops.PushClip(f32.Rect(0, 0, 5, 5))
	outer.Pop()
}

func TestReset(t *testing.T) {
	var ops Ops
	ops.PushClip(f32.Rect(0, 0, 10, 10)).Pop()
	if n := len(ops.List()); n != 2 {
		t.Fatalf("recorded %d ops, want 2", n)
	}
	ops.Reset()
	if n := len(ops.List()); n != 0 {
		t.Errorf("%d ops after Reset", n)
	}
	// The clip stack is empty again.
	ops.PushClip(f32.Rect(0, 0, 1, 1)).Pop()
}
