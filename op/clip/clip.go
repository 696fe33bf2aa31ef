// SPDX-License-Identifier: Unlicense OR MIT

/*
Package clip provides operations for clipping paint operations.
Drawing outside the current clip area is ignored.

The current clip is initially the whole frame. Pushing an area sets
the clip to the intersection of the current clip and the area. Popping
the area restores the clip to its state before pushing.
*/
package clip

import (
	"gioui.org/x/arrange/f32"
	"gioui.org/x/arrange/op"
)

// Rect represents the clip area of a rectangle.
type Rect f32.Rectangle

// Push the clip area on the clip stack.
func (r Rect) Push(o *op.Ops) op.ClipStack {
	return o.PushClip(f32.Rectangle(r))
}
