// SPDX-License-Identifier: Unlicense OR MIT

// Package text measures text for layout.
//
// A Shaper breaks strings into lines in the faces of a font
// collection, and a Label is a layout capability sized by its text.
package text

import (
	"golang.org/x/image/math/fixed"

	"gioui.org/x/arrange/f32"
)

// A Line contains the measurements of a line of text.
type Line struct {
	Text string
	// Width is the advance width of the line.
	Width fixed.Int26_6
	// Ascent is the height above the baseline.
	Ascent fixed.Int26_6
	// Descent is the height below the baseline, including
	// the line gap.
	Descent fixed.Int26_6
}

// Size returns the size of lines stacked on top of each other.
func Size(lines []Line) f32.Point {
	var width fixed.Int26_6
	var h fixed.Int26_6
	for _, l := range lines {
		h += l.Ascent + l.Descent
		if l.Width > width {
			width = l.Width
		}
	}
	return f32.Point{X: float32(width.Ceil()), Y: float32(h.Ceil())}
}
