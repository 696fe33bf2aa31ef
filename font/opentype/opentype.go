// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype loads OpenType and TrueType fonts for measuring and
// drawing text.
package opentype

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	giofont "gioui.org/x/arrange/font"
)

// Face is a parsed font. It is safe for concurrent use; the faces
// returned by Sized are not.
type Face struct {
	font   *opentype.Font
	family string
	sub    string
	mono   bool
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (Face, error) {
	f, err := opentype.Parse(src)
	if err != nil {
		return Face{}, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	return newFace(f)
}

// ParseCollection parse an Opentype font file, with support for collections.
// Single font files are supported, returning a slice with length 1.
// The returned fonts are automatically wrapped in a font.FontFace with
// inferred font metadata.
func ParseCollection(src []byte) ([]giofont.FontFace, error) {
	c, err := opentype.ParseCollection(src)
	if err != nil {
		return nil, err
	}
	out := make([]giofont.FontFace, c.NumFonts())
	for i := range out {
		f, err := c.Font(i)
		if err != nil {
			return nil, fmt.Errorf("reading font %d of collection: %w", i, err)
		}
		face, err := newFace(f)
		if err != nil {
			return nil, fmt.Errorf("reading font %d of collection: %w", i, err)
		}
		out[i] = giofont.FontFace{Font: face.Font(), Face: face}
	}
	return out, nil
}

func newFace(f *opentype.Font) (Face, error) {
	var buf sfnt.Buffer
	family, err := f.Name(&buf, sfnt.NameIDFamily)
	if err != nil && err != sfnt.ErrNotFound {
		return Face{}, err
	}
	sub, err := f.Name(&buf, sfnt.NameIDSubfamily)
	if err != nil && err != sfnt.ErrNotFound {
		return Face{}, err
	}
	return Face{
		font:   f,
		family: family,
		sub:    strings.ToLower(sub),
		mono:   strings.Contains(strings.ToLower(family), "mono"),
	}, nil
}

// Sized returns a face of f at px pixels per em.
func (f Face) Sized(px float32) (font.Face, error) {
	return opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// Font returns the metadata of f read from its name table.
func (f Face) Font() giofont.Font {
	return giofont.Font{
		Typeface: f.family,
		Mono:     f.mono,
		Italic:   strings.Contains(f.sub, "italic") || strings.Contains(f.sub, "oblique"),
		Weight:   giofont.ParseWeight(f.sub),
	}
}
