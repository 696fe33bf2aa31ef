// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image/color"

	"gioui.org/x/arrange/unit"
	"gioui.org/x/arrange/widget"
)

// Palette contains the base colors of a Theme.
type Palette struct {
	// Fg is the text and border color.
	Fg color.NRGBA
	// Bg and BgWeak are the backgrounds of values, BgWeak for
	// alternate rows and dividers.
	Bg, BgWeak color.NRGBA
	// Primary is the background of read only values and hovered
	// dividers.
	Primary color.NRGBA
	// Secondary is the background of labels.
	Secondary color.NRGBA
	// Danger marks changed values.
	Danger color.NRGBA
}

type Theme struct {
	Palette
	TextSize    unit.Sp
	BorderWidth unit.Dp
}

// Styling selects the appearance of a cell.
type Styling struct {
	Kind StylingKind
	// Changed marks a value that is not saved.
	Changed bool
	// Row is the row number of a RowAlternating cell.
	Row int
}

type StylingKind uint8

const (
	// Label is a heading cell.
	Label StylingKind = iota
	// ReadOnly is a value that can't be edited.
	ReadOnly
	// Value is an editable value.
	Value
	// RowAlternating is a value with a background alternating by row.
	RowAlternating
	// Divider is the strip between labels.
	Divider
)

func NewTheme() *Theme {
	t := &Theme{
		TextSize:    16,
		BorderWidth: 1,
	}
	t.Palette = Palette{
		Fg:        rgb(0x000000),
		Bg:        rgb(0xffffff),
		BgWeak:    rgb(0xeeeeee),
		Primary:   rgb(0x3f51b5),
		Secondary: rgb(0x5e677b),
		Danger:    rgb(0xc3423f),
	}
	return t
}

// Cell returns the cell palette for s.
func (t *Theme) Cell(s Styling) widget.Palette {
	p := widget.Palette{
		Idle:    t.Fg,
		Hovered: t.Fg,
		Pressed: t.Fg,
		Changed: t.Danger,
	}
	switch s.Kind {
	case Label:
		p.Background = t.Secondary
	case ReadOnly:
		p.Background = t.Primary
	case Value, RowAlternating:
		p.Background = t.Bg
		if s.Kind == RowAlternating && s.Row%2 == 1 {
			p.Background = t.BgWeak
		}
		if s.Changed {
			p.Idle, p.Hovered, p.Pressed = t.Danger, t.Danger, t.Danger
		}
	case Divider:
		p = widget.Palette{
			Background:        t.BgWeak,
			HoveredBackground: t.Primary,
		}
	default:
		panic("invalid StylingKind")
	}
	return p
}

// Apply sets the palette and border width of c for s and returns c.
func (t *Theme) Apply(c *widget.Cell, s Styling) *widget.Cell {
	c.Palette = t.Cell(s)
	c.BorderWidth = t.BorderWidth
	return c
}

func (k StylingKind) String() string {
	switch k {
	case Label:
		return "Label"
	case ReadOnly:
		return "ReadOnly"
	case Value:
		return "Value"
	case RowAlternating:
		return "RowAlternating"
	case Divider:
		return "Divider"
	default:
		panic("unreachable")
	}
}

func rgb(c uint32) color.NRGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
