// SPDX-License-Identifier: Unlicense OR MIT

package opentype

import (
	"testing"

	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	giofont "gioui.org/x/arrange/font"
)

func TestFontMetadata(t *testing.T) {
	tests := []struct {
		name string
		ttf  []byte
		want giofont.Font
	}{
		{"regular", goregular.TTF, giofont.Font{Typeface: "Go", Weight: giofont.Normal}},
		{"bold italic", gobolditalic.TTF, giofont.Font{Typeface: "Go", Italic: true, Weight: giofont.Bold}},
		{"mono", gomono.TTF, giofont.Font{Typeface: "Go Mono", Mono: true, Weight: giofont.Normal}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			face, err := Parse(tc.ttf)
			if err != nil {
				t.Fatal(err)
			}
			if got := face.Font(); got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSized(t *testing.T) {
	face, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	small, err := face.Sized(10)
	if err != nil {
		t.Fatal(err)
	}
	large, err := face.Sized(20)
	if err != nil {
		t.Fatal(err)
	}
	if hs, hl := small.Metrics().Height, large.Metrics().Height; hs <= 0 || hl <= hs {
		t.Errorf("line heights %v and %v do not grow with size", hs, hl)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("not a font")); err == nil {
		t.Error("parsed garbage")
	}
	if _, err := ParseCollection(nil); err == nil {
		t.Error("parsed an empty collection")
	}
}
