// SPDX-License-Identifier: Unlicense OR MIT

/*
Package op implements operations for describing a frame.

Ops represents a list of drawing operations. Widgets add operations to
an Ops list and a rasterizer executes the list into an image.

Drawing a colored square:

	import "gioui.org/x/arrange/op/paint"

	ops := new(op.Ops)
	paint.ColorOp{Color: ...}.Add(ops)
	paint.PaintOp{Rect: ...}.Add(ops)

State

An Ops list can be viewed as a very simple virtual machine: it has an
implicit current material, set by paint.ColorOp, and a stack of clip
areas, pushed by the clip package.
*/
package op

import (
	"image/color"

	"golang.org/x/image/font"

	"gioui.org/x/arrange/f32"
)

// Ops holds a list of operations.
type Ops struct {
	list []Op
	// clips is the depth of the clip stack.
	clips int
}

// Op is a recorded operation. Only the fields relevant to its Type
// are set.
type Op struct {
	Type  Type
	Color color.NRGBA
	Rect  f32.Rectangle
	// Width is the stroke width of a border.
	Width float32
	// Face and Text describe a line of text with its baseline at Dot.
	Face font.Face
	Text string
	Dot  f32.Point
}

// Type is the type of an operation.
type Type uint8

const (
	TypeColor Type = iota
	TypePaint
	TypeBorder
	TypeText
	TypeClip
	TypePopClip
)

// ClipStack represents a clip area pushed on the clip stack.
type ClipStack struct {
	ops   *Ops
	depth int
}

// Reset the Ops, preparing it for re-use.
func (o *Ops) Reset() {
	o.list = o.list[:0]
	o.clips = 0
}

// Add records an operation.
func (o *Ops) Add(op Op) {
	o.list = append(o.list, op)
}

// List returns the recorded operations in order.
func (o *Ops) List() []Op {
	return o.list
}

// PushClip records a clip area. It is for use by the clip package.
func (o *Ops) PushClip(r f32.Rectangle) ClipStack {
	o.clips++
	o.Add(Op{Type: TypeClip, Rect: r})
	return ClipStack{ops: o, depth: o.clips}
}

// Pop restores the clip area before the corresponding push.
func (s ClipStack) Pop() {
	if s.ops.clips != s.depth {
		panic("unbalanced clip pop")
	}
	s.ops.clips--
	s.ops.Add(Op{Type: TypePopClip})
}

func (t Type) String() string {
	switch t {
	case TypeColor:
		return "Color"
	case TypePaint:
		return "Paint"
	case TypeBorder:
		return "Border"
	case TypeText:
		return "Text"
	case TypeClip:
		return "Clip"
	case TypePopClip:
		return "PopClip"
	default:
		panic("invalid Type")
	}
}
