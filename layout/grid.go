// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"math"

	"gioui.org/x/arrange/f32"
)

// Grid lays out children in areas of a table with variable column
// widths and row heights. Tracks (rows and columns) are sized from the
// children occupying a single track; children spanning several tracks
// widen them only when they don't fit.
type Grid struct {
	Rows, Columns int
	// Spacing is the space between neighbouring tracks.
	Spacing float32
	// Inset is the padding around the grid.
	Inset Inset
	// ColumnWidths and RowHeights optionally fix the size of the
	// leading tracks. A zero entry sizes the track from its children.
	ColumnWidths, RowHeights []float32
}

// Area is the part of a Grid occupied by one child. A zero span is
// read as 1.
type Area struct {
	Row, Column         int
	RowSpan, ColumnSpan int
}

// GridLayout is the result of a Grid layout.
type GridLayout struct {
	// Columns and Rows are the track sizes.
	Columns, Rows []float32
	// Rects are the child rectangles, in area order, relative to the
	// origin of the grid.
	Rects []f32.Rectangle
	// Size is the size of the grid, including the inset.
	Size     f32.Point
	Warnings []Warning
}

// Cell returns the area of the single track cell at row, col.
func Cell(row, col int) Area {
	return Area{Row: row, Column: col, RowSpan: 1, ColumnSpan: 1}
}

func (a Area) start(axis Axis) int {
	if axis == Horizontal {
		return a.Column
	}
	return a.Row
}

func (a Area) span(axis Axis) int {
	s := a.RowSpan
	if axis == Horizontal {
		s = a.ColumnSpan
	}
	if s == 0 {
		s = 1
	}
	return s
}

func (a Area) String() string {
	return fmt.Sprintf("(%d,%d)+(%d,%d)", a.Row, a.Column, a.span(Vertical), a.span(Horizontal))
}

func (g Grid) count(axis Axis) int {
	if axis == Horizontal {
		return g.Columns
	}
	return g.Rows
}

func (g Grid) fixed(axis Axis) []float32 {
	if axis == Horizontal {
		return g.ColumnWidths
	}
	return g.RowHeights
}

// Validate checks the grid dimensions and that areas lie inside the
// grid without overlapping each other. The error is a *ConfigError.
func (g Grid) Validate(areas []Area) error {
	if g.Rows <= 0 || g.Columns <= 0 {
		return configErr(fmt.Sprintf("grid of %dx%d tracks", g.Rows, g.Columns))
	}
	for _, axis := range [...]Axis{Horizontal, Vertical} {
		fixed := g.fixed(axis)
		if len(fixed) > g.count(axis) {
			return configErr(fmt.Sprintf("%d fixed %v tracks in a grid of %d", len(fixed), axis, g.count(axis)))
		}
		for _, v := range fixed {
			if v < 0 || isNaN(v) {
				return configErr(fmt.Sprintf("fixed %v track of size %g", axis, v))
			}
		}
	}
	occupied := make([]int, g.Rows*g.Columns)
	for i := range occupied {
		occupied[i] = -1
	}
	for i, a := range areas {
		if reason := g.check(a); reason != "" {
			return &ConfigError{Reason: reason, Index: i, Other: -1}
		}
		for r := a.Row; r < a.Row+a.span(Vertical); r++ {
			for c := a.Column; c < a.Column+a.span(Horizontal); c++ {
				idx := r*g.Columns + c
				if o := occupied[idx]; o != -1 {
					return &ConfigError{Reason: fmt.Sprintf("%v overlaps at (%d,%d)", a, r, c), Index: i, Other: o}
				}
				occupied[idx] = i
			}
		}
	}
	return nil
}

func (g Grid) check(a Area) string {
	switch {
	case a.RowSpan < 0 || a.ColumnSpan < 0:
		return fmt.Sprintf("negative span in %v", a)
	case a.Row < 0 || a.Column < 0,
		a.Row+a.span(Vertical) > g.Rows,
		a.Column+a.span(Horizontal) > g.Columns:
		return fmt.Sprintf("%v outside %dx%d grid", a, g.Rows, g.Columns)
	}
	return ""
}

// Measure returns the intrinsic size of the grid. The areas must be
// valid and match the hints one to one.
func (g Grid) Measure(areas []Area, hints []Hint) Hint {
	g.mustMatch(areas, hints)
	hints, _ = normalizeAll(hints)
	var h Hint
	for _, axis := range [...]Axis{Horizontal, Vertical} {
		exts := g.tracks(axis, areas, hints)
		spans := spanning(axis, areas, hints)
		n := g.count(axis)
		spacing := gaps(n, g.Spacing)
		mins := intrinsic(exts, spans, g.Spacing, g.bound(), func(e Extent) float32 { return e.Min })
		prefs := intrinsic(exts, spans, g.Spacing, g.bound(), func(e Extent) float32 { return e.Preferred })
		var maxes float32
		for _, e := range exts {
			maxes += e.Max
		}
		e := Extent{Min: sum(mins) + spacing, Preferred: sum(prefs) + spacing, Max: maxes + spacing}
		e, _ = e.Normalize()
		h = h.With(axis, e)
	}
	return g.Inset.Expand(h)
}

// Layout sizes the tracks to the available space and computes the
// rectangle of every area. The areas must be valid and match the hints
// one to one.
func (g Grid) Layout(areas []Area, hints []Hint, space Space) GridLayout {
	space.Check()
	g.mustMatch(areas, hints)
	hints, warns := normalizeAll(hints)
	l := GridLayout{Warnings: warns}
	inner := g.Inset.Shrink(space)
	var offsets [2][]float32
	for _, axis := range [...]Axis{Horizontal, Vertical} {
		sizes, w := g.solve(axis, areas, hints, inner.Along(axis))
		l.Warnings = append(l.Warnings, w...)
		offs := make([]float32, len(sizes)+1)
		for i, sz := range sizes {
			offs[i+1] = offs[i] + sz + g.Spacing
		}
		offsets[axis] = offs
		if axis == Horizontal {
			l.Columns = sizes
		} else {
			l.Rows = sizes
		}
	}
	l.Size = f32.Point{
		X: sum(l.Columns) + gaps(len(l.Columns), g.Spacing) + g.Inset.along(Horizontal),
		Y: sum(l.Rows) + gaps(len(l.Rows), g.Spacing) + g.Inset.along(Vertical),
	}
	origin := g.Inset.origin()
	l.Rects = make([]f32.Rectangle, len(areas))
	for i, a := range areas {
		var r f32.Rectangle
		for _, axis := range [...]Axis{Horizontal, Vertical} {
			offs := offsets[axis]
			s, n := a.start(axis), a.span(axis)
			lo := offs[s]
			// The end offset includes the spacing after the last track.
			hi := offs[s+n] - g.Spacing
			if axis == Horizontal {
				r.Min.X, r.Max.X = origin.X+lo, origin.X+hi
			} else {
				r.Min.Y, r.Max.Y = origin.Y+lo, origin.Y+hi
			}
		}
		l.Rects[i] = r
	}
	return l
}

// solve sizes the tracks along axis to fill space.
func (g Grid) solve(axis Axis, areas []Area, hints []Hint, space float32) ([]float32, []Warning) {
	var warns []Warning
	exts := g.tracks(axis, areas, hints)
	spans := spanning(axis, areas, hints)
	avail := nonNeg(space - gaps(len(exts), g.Spacing))
	sizes, ok := distribute(exts, avail)
	if !ok {
		warns = append(warns, Warning{
			Kind:   LayoutInfeasible,
			Axis:   axis,
			Index:  -1,
			Detail: fmt.Sprintf("tracks need %g, available %g", Stack(0, exts...).Min, avail),
		})
	}
	bounded := !isInf(avail)
	need := func(e Extent) float32 {
		if bounded {
			return e.Min
		}
		return e.Preferred
	}
	free := g.free(axis)
	widened := make([]bool, len(spans))
	for pass := 0; pass < g.bound(); pass++ {
		changed := false
		for j, s := range spans {
			have := sum(sizes[s.start:s.end]) + gaps(s.end-s.start, g.Spacing)
			short := need(s.ext) - have
			if short <= tolerance(have) {
				continue
			}
			changed = true
			spanned := sizes[s.start:s.end]
			if rest := grow(spanned, exts[s.start:s.end], short); rest > 0 {
				if !stretchFree(spanned, free[s.start:s.end], rest) {
					stretch(spanned, rest)
					widened[j] = true
				}
			}
			if bounded {
				if over := sum(sizes) - avail; over > 0 {
					absorb(sizes, exts, s.start, s.end, over)
				}
			}
		}
		if !changed {
			break
		}
	}
	for j, s := range spans {
		if widened[j] {
			warns = append(warns, Warning{
				Kind:   LayoutInfeasible,
				Axis:   axis,
				Index:  s.index,
				Detail: fmt.Sprintf("spanning child widens fixed tracks %d to %d", s.start, s.end-1),
			})
		}
	}
	// Spanning children may push the tracks past the space when the
	// other tracks can't give way. Scale them back like distribute
	// does for minimums.
	if total := sum(sizes); bounded && total-avail > tolerance(avail) {
		if ok {
			warns = append(warns, Warning{
				Kind:   LayoutInfeasible,
				Axis:   axis,
				Index:  -1,
				Detail: fmt.Sprintf("spanning children need %g, available %g", total, avail),
			})
		}
		scale := avail / total
		for i := range sizes {
			sizes[i] *= scale
		}
	}
	for _, s := range spans {
		have := sum(sizes[s.start:s.end]) + gaps(s.end-s.start, g.Spacing)
		if need(s.ext)-have > tolerance(have) {
			warns = append(warns, Warning{
				Kind:   LayoutInfeasible,
				Axis:   axis,
				Index:  s.index,
				Detail: fmt.Sprintf("spanning child needs %g, has %g", need(s.ext), have),
			})
		}
	}
	return sizes, warns
}

// free reports for every track along axis whether its size is derived
// from its children rather than fixed.
func (g Grid) free(axis Axis) []bool {
	free := make([]bool, g.count(axis))
	fixed := g.fixed(axis)
	for i := range free {
		free[i] = i >= len(fixed) || fixed[i] <= 0
	}
	return free
}

// bound is the number of adjustment passes for spanning children.
func (g Grid) bound() int {
	return g.Rows + g.Columns
}

// tracks returns the extents of the tracks along axis, derived from the
// children occupying a single track.
func (g Grid) tracks(axis Axis, areas []Area, hints []Hint) []Extent {
	exts := make([]Extent, g.count(axis))
	for i, a := range areas {
		if a.span(axis) != 1 {
			continue
		}
		t := a.start(axis)
		exts[t] = Cross(exts[t], hints[i].Along(axis))
	}
	for i, v := range g.fixed(axis) {
		if v > 0 {
			exts[i] = Rigid(v)
		}
	}
	return exts
}

// span is a child that occupies the tracks [start, end).
type span struct {
	start, end int
	ext        Extent
	index      int
}

func spanning(axis Axis, areas []Area, hints []Hint) []span {
	var spans []span
	for i, a := range areas {
		if n := a.span(axis); n > 1 {
			s := a.start(axis)
			spans = append(spans, span{start: s, end: s + n, ext: hints[i].Along(axis), index: i})
		}
	}
	return spans
}

// intrinsic returns the track sizes picked from exts, widened until
// every spanning child fits.
func intrinsic(exts []Extent, spans []span, spacing float32, bound int, pick func(Extent) float32) []float32 {
	sizes := make([]float32, len(exts))
	for i, e := range exts {
		sizes[i] = pick(e)
	}
	for pass := 0; pass < bound; pass++ {
		changed := false
		for _, s := range spans {
			have := sum(sizes[s.start:s.end]) + gaps(s.end-s.start, spacing)
			if short := pick(s.ext) - have; short > tolerance(have) {
				stretch(sizes[s.start:s.end], short)
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return sizes
}

// absorb takes over from the tracks outside [start, end) in proportion
// to how far each is above its minimum.
func absorb(sizes []float32, exts []Extent, start, end int, over float32) {
	var room float32
	for i, sz := range sizes {
		if i < start || i >= end {
			room += nonNeg(sz - exts[i].Min)
		}
	}
	if room <= 0 {
		return
	}
	take := min(over, room)
	for i, sz := range sizes {
		if i < start || i >= end {
			sizes[i] -= take * nonNeg(sz-exts[i].Min) / room
		}
	}
}

func (g Grid) mustMatch(areas []Area, hints []Hint) {
	if len(areas) != len(hints) {
		panic(fmt.Sprintf("layout: %d grid areas for %d hints", len(areas), len(hints)))
	}
}

// tolerance is the rounding slack accepted when comparing a sum of
// track sizes to a requirement.
func tolerance(v float32) float32 {
	return 1e-4 * max(1, v)
}

func isInf(v float32) bool {
	return math.IsInf(float64(v), 1)
}
