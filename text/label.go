// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"image/color"
	"math"

	"golang.org/x/image/math/fixed"

	"gioui.org/x/arrange/f32"
	"gioui.org/x/arrange/font"
	"gioui.org/x/arrange/layout"
	"gioui.org/x/arrange/op"
	"gioui.org/x/arrange/op/paint"
	"gioui.org/x/arrange/unit"
)

// Label is a widget capability displaying text. Its preferred width
// is the width of its longest line. A wrapping label accepts any width
// down to its widest word, and grows taller when narrower than
// preferred.
type Label struct {
	Shaper   *Shaper
	Font     font.Font
	TextSize unit.Sp
	Metric   unit.Metric
	Text     string
	Color    color.NRGBA
	Wrap     bool
	// MaxLines limits the number of lines. Zero means no limit.
	MaxLines int

	err error
}

// Measure implements widget.Capability.
func (l *Label) Measure(space layout.Space, children []layout.Hint) layout.Hint {
	p := l.params()
	full, err := l.Shaper.Layout(p, l.Text)
	if err != nil {
		l.err = err
		return layout.Hint{}
	}
	sz := Size(full)
	minW := sz.X
	h := sz.Y
	if l.Wrap {
		w, err := l.Shaper.MinWidth(p, l.Text)
		if err != nil {
			l.err = err
			return layout.Hint{}
		}
		minW = float32(w.Ceil())
		if space.Width < sz.X {
			h = Size(l.lines(space.Width)).Y
		}
	}
	l.err = nil
	return layout.Hint{
		Width:  layout.Shrink(minW, sz.X),
		Height: layout.Rigid(h),
	}
}

// Arrange implements widget.Capability. Labels have no children.
func (l *Label) Arrange(bounds f32.Rectangle, children []layout.Hint) []f32.Rectangle {
	return nil
}

// Paint implements widget.Painter. Lines are drawn from the top of
// bounds, broken to its width if the label wraps.
func (l *Label) Paint(ops *op.Ops, bounds f32.Rectangle) {
	p := l.params()
	face, err := l.Shaper.Face(p.Font, p.PxPerEm)
	if err != nil {
		l.err = err
		return
	}
	paint.ColorOp{Color: l.Color}.Add(ops)
	y := bounds.Min.Y
	for _, line := range l.lines(bounds.Dx()) {
		y += fixedToFloat(line.Ascent)
		paint.TextOp{Face: face, Text: line.Text, Dot: f32.Pt(bounds.Min.X, y)}.Add(ops)
		y += fixedToFloat(line.Descent)
	}
}

// Lines returns the lines of the label laid out in width.
func (l *Label) Lines(width float32) []Line {
	return l.lines(width)
}

func (l *Label) lines(width float32) []Line {
	p := l.params()
	if l.Wrap && !math.IsInf(float64(width), 1) {
		p.MaxWidth = fixed.Int26_6(width * 64)
	}
	lines, err := l.Shaper.Layout(p, l.Text)
	if err != nil {
		l.err = err
		return nil
	}
	return lines
}

// Err returns the error of the last measurement, if any.
func (l *Label) Err() error {
	return l.err
}

func (l *Label) params() Parameters {
	px := l.Metric.Sp(l.TextSize)
	return Parameters{
		Font:     l.Font,
		PxPerEm:  fixed.Int26_6(math.Round(float64(px) * 64)),
		MaxLines: l.MaxLines,
	}
}
