// SPDX-License-Identifier: Unlicense OR MIT

// Package font describes the faces a text shaper chooses between.
package font

import (
	"strconv"
	"strings"

	"golang.org/x/image/font"
)

// Font selects a face of a collection.
type Font struct {
	// Typeface is the family name. Empty selects the family of the
	// collection's first face.
	Typeface string
	// Mono selects a fixed width face.
	Mono   bool
	Italic bool
	// Weight is the CSS weight. Zero reads as Normal.
	Weight Weight
}

// Weight is a CSS font weight from 100 to 900.
type Weight uint16

// FontFace is a Font and the face that draws it.
type FontFace struct {
	Font Font
	Face Face
}

// Face is a parsed typeface. Sized returns the typeface at a size in
// pixels per em, for measuring and drawing.
type Face interface {
	Sized(px float32) (font.Face, error)
}

const (
	Normal Weight = 400
	Medium Weight = 500
	Bold   Weight = 700
)

// subfamily weights, longest names first since "extrabold" contains
// "bold".
var weights = []struct {
	name   string
	weight Weight
}{
	{"extralight", 200},
	{"ultralight", 200},
	{"semibold", 600},
	{"demibold", 600},
	{"extrabold", 800},
	{"ultrabold", 800},
	{"thin", 100},
	{"light", 300},
	{"medium", Medium},
	{"bold", Bold},
	{"black", 900},
	{"heavy", 900},
}

// ParseWeight returns the weight named in a subfamily name such as
// "SemiBold Italic", or Normal.
func ParseWeight(subfamily string) Weight {
	sub := strings.ToLower(strings.ReplaceAll(subfamily, " ", ""))
	for _, w := range weights {
		if strings.Contains(sub, w.name) {
			return w.weight
		}
	}
	return Normal
}

// Value returns w, or Normal if w is zero.
func (w Weight) Value() Weight {
	if w == 0 {
		return Normal
	}
	return w
}

// String describes f like a subfamily, for example "Go Mono Bold Italic".
func (f Font) String() string {
	parts := []string{f.Typeface}
	if f.Typeface == "" {
		parts[0] = "default"
	}
	if f.Mono && !strings.Contains(strings.ToLower(f.Typeface), "mono") {
		parts = append(parts, "Mono")
	}
	switch w := f.Weight.Value(); {
	case w == Bold:
		parts = append(parts, "Bold")
	case w != Normal:
		parts = append(parts, weightName(w))
	}
	if f.Italic {
		parts = append(parts, "Italic")
	}
	return strings.Join(parts, " ")
}

func weightName(w Weight) string {
	for _, n := range weights {
		if n.weight == w {
			return strings.ToUpper(n.name[:1]) + n.name[1:]
		}
	}
	return strconv.Itoa(int(w))
}
