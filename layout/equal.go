// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"gioui.org/x/arrange/f32"
)

// Equal lays out children one after another along an axis and gives
// every child the same extent across it. With Axis Horizontal it is a
// row whose children share one height; with Axis Vertical a column
// whose children share one width.
type Equal struct {
	// Axis is the main axis, either Horizontal or Vertical.
	Axis Axis
	// Spacing is the space between neighbouring children.
	Spacing float32
	// Inset is the padding around the children.
	Inset Inset
	// Fixed, if positive, replaces the shared cross extent.
	Fixed float32
	// Min and Max, if positive, bound the shared cross extent. The
	// shared extent never drops below the largest child minimum.
	Min, Max float32
	// Direction places the children inside a final rectangle larger
	// than their content.
	Direction Direction
	// Reverse lays out the children in reverse order.
	Reverse bool
}

// EqualLayout is the result of an Equal layout.
type EqualLayout struct {
	// Shared is the cross extent given to every child.
	Shared float32
	// Sizes are the main axis sizes of the children.
	Sizes []float32
	// Rects are the child rectangles, in child order, relative to
	// the origin of the layout.
	Rects []f32.Rectangle
	// Size is the size of the content, including the inset.
	Size     f32.Point
	Warnings []Warning
}

// Measure returns the intrinsic size of the children laid out by e.
func (e Equal) Measure(children []Hint) Hint {
	if len(children) == 0 {
		return Hint{}
	}
	children, _ = normalizeAll(children)
	mains := make([]Extent, len(children))
	for i, c := range children {
		mains[i] = c.Along(e.Axis)
	}
	var h Hint
	h = h.With(e.Axis, Stack(e.Spacing, mains...))
	h = h.With(e.Axis.Cross(), e.shared(children))
	return e.Inset.Expand(h)
}

// Layout computes the child rectangles in the available space.
func (e Equal) Layout(children []Hint, space Space) EqualLayout {
	space.Check()
	if len(children) == 0 {
		return EqualLayout{}
	}
	children, warns := normalizeAll(children)
	cross := e.Axis.Cross()
	inner := e.Inset.Shrink(space)

	shared := e.shared(children)
	l := EqualLayout{Shared: shared.Preferred, Warnings: warns}
	if avail := inner.Along(cross); avail < l.Shared {
		// Shrink the shared extent, but never below the largest minimum.
		l.Shared = max(avail, shared.Min)
		if avail < shared.Min {
			l.Warnings = append(l.Warnings, Warning{
				Kind:   LayoutInfeasible,
				Axis:   cross,
				Index:  -1,
				Detail: fmt.Sprintf("shared extent %g exceeds available %g", shared.Min, avail),
			})
		}
	}

	mains := make([]Extent, len(children))
	for i, c := range children {
		mains[i] = c.Along(e.Axis)
	}
	avail := nonNeg(inner.Along(e.Axis) - gaps(len(children), e.Spacing))
	sizes, ok := distribute(mains, avail)
	if !ok {
		l.Warnings = append(l.Warnings, Warning{
			Kind:   LayoutInfeasible,
			Axis:   e.Axis,
			Index:  -1,
			Detail: fmt.Sprintf("children need %g, available %g", Stack(0, mains...).Min, avail),
		})
	}
	l.Sizes = sizes

	content := axisPoint(e.Axis, sum(sizes)+gaps(len(sizes), e.Spacing), l.Shared)
	l.Size = content.Add(f32.Point{
		X: e.Inset.along(Horizontal),
		Y: e.Inset.along(Vertical),
	})
	origin := e.Inset.origin()
	if space.Bounded(Horizontal) && space.Bounded(Vertical) {
		origin = e.Direction.Position(l.Size, f32.Rect(0, 0, space.Width, space.Height)).Add(origin)
	}

	l.Rects = make([]f32.Rectangle, len(children))
	var main float32
	for j := range children {
		i := j
		if e.Reverse {
			i = len(children) - 1 - j
		}
		off := origin.Add(axisPoint(e.Axis, main, 0))
		sz := axisPoint(e.Axis, sizes[i], l.Shared)
		l.Rects[i] = f32.Rectangle{Min: off, Max: off.Add(sz)}
		main += sizes[i] + e.Spacing
	}
	return l
}

// shared returns the cross extent all children agree on. Its Preferred
// is the largest child preference within the range every child accepts.
// If the ranges don't intersect the largest minimum wins, and children
// with a smaller maximum overflow.
func (e Equal) shared(children []Hint) Extent {
	cross := e.Axis.Cross()
	lo, hi, pref := float32(0), Unbounded, float32(0)
	for _, c := range children {
		ce := c.Along(cross)
		lo = max(lo, ce.Min)
		hi = min(hi, ce.Max)
		pref = max(pref, ce.Preferred)
	}
	var s Extent
	if lo <= hi {
		s = Extent{Min: lo, Preferred: pref, Max: hi}
		s.Preferred = s.Constrain(pref)
	} else {
		s = Rigid(lo)
	}
	switch {
	case e.Fixed > 0:
		s = Rigid(max(e.Fixed, lo))
	default:
		if e.Max > 0 {
			s.Max = max(min(s.Max, e.Max), lo)
			s.Preferred = min(s.Preferred, s.Max)
		}
		if e.Min > 0 {
			s.Min = max(s.Min, e.Min)
			s.Preferred = max(s.Preferred, s.Min)
			s.Max = max(s.Max, s.Min)
		}
	}
	return s
}

func normalizeAll(hints []Hint) ([]Hint, []Warning) {
	var warns []Warning
	var out []Hint
	for i, h := range hints {
		n, w := h.Normalize()
		if len(w) > 0 || n != h {
			if out == nil {
				out = append([]Hint(nil), hints...)
			}
			out[i] = n
		}
		for _, w := range w {
			w.Index = i
			warns = append(warns, w)
		}
	}
	if out == nil {
		return hints, nil
	}
	return out, warns
}
