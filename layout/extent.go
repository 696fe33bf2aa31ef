// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"math"

	"gioui.org/x/arrange/f32"
)

// Unbounded is the value of a Space bound or an Extent maximum
// without limit.
var Unbounded = float32(math.Inf(1))

// Extent is the intrinsic size of a widget along one axis. A valid
// Extent satisfies 0 <= Min <= Preferred <= Max.
type Extent struct {
	Min, Preferred, Max float32
}

// Hint is the intrinsic size of a widget along both axes.
type Hint struct {
	Width, Height Extent
}

// Space is the space available to a widget. A bound is either
// Unbounded or non-negative.
type Space struct {
	Width, Height float32
}

// Rigid returns the Extent that only accepts v.
func Rigid(v float32) Extent {
	return Extent{Min: v, Preferred: v, Max: v}
}

// Shrink returns an Extent that prefers pref and never grows beyond
// it.
func Shrink(min, pref float32) Extent {
	return Extent{Min: min, Preferred: pref, Max: pref}
}

// Fill returns an Extent that prefers pref and grows into any
// space given to it.
func Fill(min, pref float32) Extent {
	return Extent{Min: min, Preferred: pref, Max: Unbounded}
}

// RigidHint returns the Hint that only accepts sz.
func RigidHint(sz f32.Point) Hint {
	return Hint{Width: Rigid(sz.X), Height: Rigid(sz.Y)}
}

// UnboundedSpace returns the Space without limits.
func UnboundedSpace() Space {
	return Space{Width: Unbounded, Height: Unbounded}
}

// Normalize returns e with its invariant restored and reports whether e
// was consistent. A negative Min is raised to zero, a Min larger than
// Max raises Max, and Preferred is clamped into [Min, Max].
func (e Extent) Normalize() (Extent, bool) {
	ok := true
	if e.Min < 0 || isNaN(e.Min) {
		e.Min = 0
	}
	if isNaN(e.Max) {
		e.Max = Unbounded
	}
	if e.Min > e.Max {
		e.Max = e.Min
		ok = false
	}
	if isNaN(e.Preferred) || e.Preferred < e.Min {
		e.Preferred = e.Min
	}
	if e.Preferred > e.Max {
		e.Preferred = e.Max
	}
	return e, ok
}

// Add returns e grown by v on every component.
func (e Extent) Add(v float32) Extent {
	return Extent{Min: e.Min + v, Preferred: e.Preferred + v, Max: e.Max + v}
}

// Constrain clamps v into [e.Min, e.Max].
func (e Extent) Constrain(v float32) float32 {
	if v < e.Min {
		return e.Min
	}
	if v > e.Max {
		return e.Max
	}
	return v
}

// Fit returns the size e takes in the space bound: its preferred
// size, reduced to the bound but never below Min.
func (e Extent) Fit(bound float32) float32 {
	v := e.Preferred
	if v > bound {
		v = bound
	}
	if v < e.Min {
		v = e.Min
	}
	return v
}

func (e Extent) String() string {
	return fmt.Sprintf("[%g %g %g]", e.Min, e.Preferred, e.Max)
}

// Normalize restores the invariant on both axes and returns the
// warnings for any inconsistent axis.
func (h Hint) Normalize() (Hint, []Warning) {
	var warns []Warning
	for _, a := range [...]Axis{Horizontal, Vertical} {
		e := h.Along(a)
		n, ok := e.Normalize()
		if !ok {
			warns = append(warns, Warning{
				Kind:   MeasurementInconsistency,
				Axis:   a,
				Index:  -1,
				Detail: fmt.Sprintf("min %g exceeds max %g", e.Min, e.Max),
			})
		}
		h = h.With(a, n)
	}
	return h, warns
}

// Along returns the Extent along axis a.
func (h Hint) Along(a Axis) Extent {
	if a == Horizontal {
		return h.Width
	}
	return h.Height
}

// With returns h with the Extent along a replaced.
func (h Hint) With(a Axis, e Extent) Hint {
	if a == Horizontal {
		h.Width = e
	} else {
		h.Height = e
	}
	return h
}

// Preferred returns the preferred size.
func (h Hint) Preferred() f32.Point {
	return f32.Point{X: h.Width.Preferred, Y: h.Height.Preferred}
}

// Fit returns the size h takes in s.
func (h Hint) Fit(s Space) f32.Point {
	return f32.Point{X: h.Width.Fit(s.Width), Y: h.Height.Fit(s.Height)}
}

// Along returns the bound along axis a.
func (s Space) Along(a Axis) float32 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

// With returns s with the bound along a replaced.
func (s Space) With(a Axis, v float32) Space {
	if a == Horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// Bounded reports whether the bound along a is finite.
func (s Space) Bounded(a Axis) bool {
	return !math.IsInf(float64(s.Along(a)), 1)
}

// Check panics if s has a negative bound. Negative space is a
// programming error in the caller, not a layout condition.
func (s Space) Check() {
	if s.Width < 0 || s.Height < 0 || isNaN(s.Width) || isNaN(s.Height) {
		panic(fmt.Sprintf("layout: invalid space %gx%g", s.Width, s.Height))
	}
}

// SpaceOf returns the space of the size sz.
func SpaceOf(sz f32.Point) Space {
	return Space{Width: sz.X, Height: sz.Y}
}

// Stack combines extents of widgets placed one after another along an
// axis, with spacing between neighbours.
func Stack(spacing float32, es ...Extent) Extent {
	var sum Extent
	for i, e := range es {
		if i > 0 {
			sum = sum.Add(spacing)
		}
		sum.Min += e.Min
		sum.Preferred += e.Preferred
		sum.Max += e.Max
	}
	return sum
}

// Cross combines extents of widgets sharing the cross axis: the result
// is as large as the largest of them.
func Cross(es ...Extent) Extent {
	var c Extent
	for _, e := range es {
		c.Min = max(c.Min, e.Min)
		c.Preferred = max(c.Preferred, e.Preferred)
		c.Max = max(c.Max, e.Max)
	}
	return c
}

func isNaN(v float32) bool {
	return v != v
}

func nonNeg(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}

func axisPoint(a Axis, main, cross float32) f32.Point {
	if a == Horizontal {
		return f32.Point{X: main, Y: cross}
	} else {
		return f32.Point{X: cross, Y: main}
	}
}

func axisMain(a Axis, sz f32.Point) float32 {
	if a == Horizontal {
		return sz.X
	} else {
		return sz.Y
	}
}

func axisCross(a Axis, sz f32.Point) float32 {
	if a == Horizontal {
		return sz.Y
	} else {
		return sz.X
	}
}
