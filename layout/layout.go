// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout computes the size and position of widgets from their
intrinsic size hints.

A widget describes its size along each axis with an Extent: the
smallest size it accepts, the size it prefers and the largest size it
can use. Containers combine the hints of their children into their own
hint during the measurement pass, and split the space they are given
among the children during the arrangement pass.

Equal lays out a row or column whose children share one cross extent.
Grid lays out children in the areas of a table of variable column
widths and row heights.

Layouts never fail for lack of space. Conditions such as space smaller
than the summed minimums are reported as Warnings next to a best effort
result. Only invalid configurations, such as overlapping grid areas,
are errors.
*/
package layout

import (
	"errors"
	"fmt"

	"gioui.org/x/arrange/f32"
)

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Alignment is the mutual alignment of a list of widgets.
type Alignment uint8

// Direction is the alignment of widgets relative to a containing
// space.
type Direction uint8

const (
	Start Alignment = iota
	End
	Middle
)

const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	Center
)

const (
	Horizontal Axis = iota
	Vertical
)

// Inset adds space around a widget.
type Inset struct {
	Top, Right, Bottom, Left float32
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v float32) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

// Expand grows h by the inset.
func (in Inset) Expand(h Hint) Hint {
	return Hint{
		Width:  h.Width.Add(in.Left + in.Right),
		Height: h.Height.Add(in.Top + in.Bottom),
	}
}

// Shrink returns the space left inside the inset.
func (in Inset) Shrink(s Space) Space {
	return Space{
		Width:  nonNeg(s.Width - in.Left - in.Right),
		Height: nonNeg(s.Height - in.Top - in.Bottom),
	}
}

// Apply returns r with the inset removed. Insets larger than r
// collapse it to its center line.
func (in Inset) Apply(r f32.Rectangle) f32.Rectangle {
	r.Min.X += in.Left
	r.Min.Y += in.Top
	r.Max.X -= in.Right
	r.Max.Y -= in.Bottom
	if r.Max.X < r.Min.X {
		c := (r.Min.X + r.Max.X) / 2
		r.Min.X, r.Max.X = c, c
	}
	if r.Max.Y < r.Min.Y {
		c := (r.Min.Y + r.Max.Y) / 2
		r.Min.Y, r.Max.Y = c, c
	}
	return r
}

func (in Inset) along(a Axis) float32 {
	if a == Horizontal {
		return in.Left + in.Right
	}
	return in.Top + in.Bottom
}

func (in Inset) origin() f32.Point {
	return f32.Point{X: in.Left, Y: in.Top}
}

// Position places an object of size sz inside r according to d. An
// object larger than r is placed at r.Min along that axis.
func (d Direction) Position(sz f32.Point, r f32.Rectangle) f32.Point {
	p := r.Min
	free := r.Size().Sub(sz)
	free.X = nonNeg(free.X)
	free.Y = nonNeg(free.Y)
	switch d {
	case N, S, Center:
		p.X += free.X / 2
	case NE, SE, E:
		p.X += free.X
	}
	switch d {
	case W, Center, E:
		p.Y += free.Y / 2
	case SW, S, SE:
		p.Y += free.Y
	}
	return p
}

// Cross returns the other axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case Center:
		return "Center"
	default:
		panic("unreachable")
	}
}

// ErrConfig is matched by every ConfigError.
var ErrConfig = errors.New("layout: invalid configuration")

// ConfigError describes a widget configuration that cannot be laid out,
// such as overlapping grid areas. It is returned when the widget is
// constructed, before any measurement.
type ConfigError struct {
	Reason string
	// Index is the offending area, or -1.
	Index int
	// Other is the area Index collides with, or -1.
	Other int
}

func (e *ConfigError) Error() string {
	switch {
	case e.Index >= 0 && e.Other >= 0:
		return fmt.Sprintf("layout: area %d: %s with area %d", e.Index, e.Reason, e.Other)
	case e.Index >= 0:
		return fmt.Sprintf("layout: area %d: %s", e.Index, e.Reason)
	default:
		return "layout: " + e.Reason
	}
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

func configErr(reason string) *ConfigError {
	return &ConfigError{Reason: reason, Index: -1, Other: -1}
}

// WarningKind classifies a Warning.
type WarningKind uint8

const (
	// LayoutInfeasible reports available space smaller than the summed
	// minimums. The layout is still produced, with some children smaller
	// than their minimum.
	LayoutInfeasible WarningKind = iota
	// MeasurementInconsistency reports a child extent with Min > Max,
	// corrected by raising Max.
	MeasurementInconsistency
)

// Warning is a soft diagnostic produced by a measurement or layout.
// Rendering proceeds regardless.
type Warning struct {
	Kind WarningKind
	Axis Axis
	// Index is the child, track or area the warning applies to, or -1
	// for the widget as a whole.
	Index  int
	Detail string
}

func (k WarningKind) String() string {
	switch k {
	case LayoutInfeasible:
		return "LayoutInfeasible"
	case MeasurementInconsistency:
		return "MeasurementInconsistency"
	default:
		panic("unreachable")
	}
}

func (w Warning) String() string {
	if w.Index < 0 {
		return fmt.Sprintf("%v (%v): %s", w.Kind, w.Axis, w.Detail)
	}
	return fmt.Sprintf("%v (%v, %d): %s", w.Kind, w.Axis, w.Index, w.Detail)
}
