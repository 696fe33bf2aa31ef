// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/x/arrange/f32"
	"gioui.org/x/arrange/op"
	"gioui.org/x/arrange/op/clip"
	"gioui.org/x/arrange/op/paint"
)

// Painter is implemented by capabilities that draw themselves.
type Painter interface {
	Paint(ops *op.Ops, bounds f32.Rectangle)
}

// Paint records the drawing of placements into ops, in order. Pass the
// result of Arrange so that containers are drawn below their
// children. Cells draw their background and border, and generic
// widgets implementing Painter draw themselves clipped to their
// bounds.
//
// Painting a cell consumes its pending border flash.
func (t *Tree) Paint(ops *op.Ops, placements []Placement) {
	for _, p := range placements {
		n := t.node(p.Handle)
		switch n.kind {
		case KindCell:
			c := n.cell
			paint.FillShape(ops, c.Background(), p.Rect)
			paint.ColorOp{Color: c.BorderColor()}.Add(ops)
			paint.BorderOp{Rect: p.Rect, Width: t.Metric.Dp(c.BorderWidth)}.Add(ops)
		case KindGeneric:
			pt, ok := n.capability.(Painter)
			if !ok {
				break
			}
			cl := clip.Rect(p.Rect).Push(ops)
			pt.Paint(ops, p.Rect)
			cl.Pop()
		}
	}
}
