// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont exports the Go fonts as a collection of font faces.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"gioui.org/x/arrange/font"
	"gioui.org/x/arrange/font/opentype"
)

var (
	regOnce    sync.Once
	reg        font.FontFace
	once       sync.Once
	collection []font.FontFace
)

// Regular returns the Go regular font face.
func Regular() font.FontFace {
	regOnce.Do(func() {
		reg = parse(goregular.TTF)
	})
	return reg
}

// Collection returns the regular, italic, bold and mono Go faces,
// regular first.
func Collection() []font.FontFace {
	once.Do(func() {
		collection = []font.FontFace{Regular()}
		for _, ttf := range [][]byte{goitalic.TTF, gobold.TTF, gobolditalic.TTF, gomono.TTF, gomonobold.TTF} {
			collection = append(collection, parse(ttf))
		}
		// Ensure that any outside appends will not reuse the backing store.
		n := len(collection)
		collection = collection[:n:n]
	})
	return collection
}

func parse(ttf []byte) font.FontFace {
	face, err := opentype.Parse(ttf)
	if err != nil {
		panic(fmt.Errorf("failed to parse font: %v", err))
	}
	return font.FontFace{Font: face.Font(), Face: face}
}
