// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint provides drawing operations for 2D graphics.

The PaintOp operation fills a rectangular area with the current
material, taking the current clip area into account. BorderOp strokes
the inside of a rectangle and TextOp draws a line of text.

The material is set by a ColorOp for a constant color.
*/
package paint

import (
	"image/color"

	"golang.org/x/image/font"

	"gioui.org/x/arrange/f32"
	"gioui.org/x/arrange/op"
)

// ColorOp sets the material to a constant color.
type ColorOp struct {
	Color color.NRGBA
}

// PaintOp fills a rectangle with the current material.
type PaintOp struct {
	Rect f32.Rectangle
}

// BorderOp strokes the inside edge of a rectangle with the current
// material.
type BorderOp struct {
	Rect  f32.Rectangle
	Width float32
}

// TextOp draws a line of text with the current material, with its
// baseline starting at Dot.
type TextOp struct {
	Face font.Face
	Text string
	Dot  f32.Point
}

func (c ColorOp) Add(o *op.Ops) {
	o.Add(op.Op{Type: op.TypeColor, Color: c.Color})
}

func (d PaintOp) Add(o *op.Ops) {
	o.Add(op.Op{Type: op.TypePaint, Rect: d.Rect})
}

func (b BorderOp) Add(o *op.Ops) {
	if b.Width <= 0 {
		return
	}
	o.Add(op.Op{Type: op.TypeBorder, Rect: b.Rect, Width: b.Width})
}

func (t TextOp) Add(o *op.Ops) {
	o.Add(op.Op{Type: op.TypeText, Face: t.Face, Text: t.Text, Dot: t.Dot})
}

// FillShape fills r with c.
func FillShape(o *op.Ops, c color.NRGBA, r f32.Rectangle) {
	ColorOp{Color: c}.Add(o)
	PaintOp{Rect: r}.Add(o)
}
