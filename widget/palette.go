// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"golang.org/x/image/colornames"

	"gioui.org/x/arrange/gesture"
)

// Palette is the set of colors a Cell is drawn with.
type Palette struct {
	// Background fills the cell. HoveredBackground replaces it while
	// the pointer is over the cell, unless it is transparent.
	Background, HoveredBackground color.NRGBA
	// Border colors per interaction state.
	Idle, Hovered, Pressed color.NRGBA
	// Changed is the border color of a pending content change.
	Changed color.NRGBA
}

// DefaultPalette draws cells with a black border that turns blue under
// the pointer and red when the content changes.
var DefaultPalette = Palette{
	Background: nrgba(colornames.White),
	Idle:       nrgba(colornames.Black),
	Hovered:    nrgba(colornames.Steelblue),
	Pressed:    nrgba(colornames.Navy),
	Changed:    nrgba(colornames.Crimson),
}

// Border returns the border color for state. A pending content change
// takes precedence over the interaction state.
func (p Palette) Border(state gesture.ClickState, changed bool) color.NRGBA {
	if changed {
		return p.Changed
	}
	switch state {
	case gesture.StateHovered:
		return p.Hovered
	case gesture.StatePressed:
		return p.Pressed
	default:
		return p.Idle
	}
}

// Fill returns the background color for state.
func (p Palette) Fill(state gesture.ClickState) color.NRGBA {
	if state != gesture.StateIdle && p.HoveredBackground.A != 0 {
		return p.HoveredBackground
	}
	return p.Background
}

func nrgba(c color.RGBA) color.NRGBA {
	// The named colors are opaque, so premultiplication is a no-op.
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
