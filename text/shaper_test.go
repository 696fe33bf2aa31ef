// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"testing"

	"golang.org/x/image/math/fixed"

	"gioui.org/x/arrange/font"
	"gioui.org/x/arrange/font/gofont"
)

func TestLayoutWrap(t *testing.T) {
	s := NewShaper(gofont.Collection())
	p := Parameters{PxPerEm: fixed.I(16)}
	lines, err := s.Layout(p, "hello world")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].Text != "hello world" {
		t.Fatalf("got %+v, want a single line", lines)
	}
	hello, err := s.Layout(p, "hello")
	if err != nil {
		t.Fatal(err)
	}
	p.MaxWidth = lines[0].Width - 1
	wrapped, err := s.Layout(p, "hello world")
	if err != nil {
		t.Fatal(err)
	}
	if len(wrapped) != 2 || wrapped[0].Text != "hello" || wrapped[1].Text != "world" {
		t.Fatalf("got %+v, want hello and world", wrapped)
	}
	if wrapped[0].Width != hello[0].Width {
		t.Errorf("wrapped width %v, want %v", wrapped[0].Width, hello[0].Width)
	}
}

func TestLayoutNewlinesAndMaxLines(t *testing.T) {
	s := NewShaper(gofont.Collection())
	p := Parameters{PxPerEm: fixed.I(12)}
	lines, err := s.Layout(p, "a\nb\n\nc")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 4 {
		t.Errorf("got %d lines, want 4", len(lines))
	}
	p.MaxLines = 2
	lines, err = s.Layout(p, "a\nb\n\nc")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Errorf("got %d lines, want 2", len(lines))
	}
}

func TestMinWidth(t *testing.T) {
	s := NewShaper(gofont.Collection())
	p := Parameters{PxPerEm: fixed.I(16)}
	mw, err := s.MinWidth(p, "a wonderful day")
	if err != nil {
		t.Fatal(err)
	}
	word, _ := s.Layout(p, "wonderful")
	if mw != word[0].Width {
		t.Errorf("min width %v, want the width of the widest word %v", mw, word[0].Width)
	}
}

func TestFaceLookup(t *testing.T) {
	coll := gofont.Collection()
	s := NewShaper(coll)
	tests := []struct {
		lookup font.Font
		want   font.Font
	}{
		{font.Font{}, font.Font{Typeface: "Go", Weight: font.Normal}},
		{font.Font{Typeface: "Go", Weight: font.Bold}, font.Font{Typeface: "Go", Weight: font.Bold}},
		{font.Font{Typeface: "Go", Italic: true, Weight: font.Medium}, font.Font{Typeface: "Go", Italic: true, Weight: font.Normal}},
		{font.Font{Typeface: "Unknown", Weight: 900}, font.Font{Typeface: "Go", Weight: font.Bold}},
		{font.Font{Mono: true, Weight: font.Bold}, font.Font{Typeface: "Go Mono", Mono: true, Weight: font.Bold}},
		{font.Font{Typeface: "Go Mono", Mono: true, Italic: true}, font.Font{Typeface: "Go Mono", Mono: true, Weight: font.Normal}},
	}
	for _, tc := range tests {
		if got := s.faceFor(tc.lookup).Font; got != tc.want {
			t.Errorf("faceFor(%+v) = %+v, want %+v", tc.lookup, got, tc.want)
		}
	}
}

func TestEmptyCollection(t *testing.T) {
	s := NewShaper(nil)
	if _, err := s.Layout(Parameters{PxPerEm: fixed.I(10)}, "x"); err == nil {
		t.Error("layout without faces succeeded")
	}
}

func TestLayoutBreakOpportunities(t *testing.T) {
	s := NewShaper(gofont.Collection())
	p := Parameters{PxPerEm: fixed.I(16)}
	whole, err := s.Layout(p, "well-known")
	if err != nil {
		t.Fatal(err)
	}
	p.MaxWidth = whole[0].Width - 1
	lines, err := s.Layout(p, "well-known")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[0].Text != "well-" || lines[1].Text != "known" {
		t.Errorf("got %+v, want a break after the hyphen", lines)
	}
	p.MaxWidth = 0
	mw, err := s.MinWidth(p, "well-known")
	if err != nil {
		t.Fatal(err)
	}
	if mw >= whole[0].Width {
		t.Errorf("min width %v, want less than the unbroken %v", mw, whole[0].Width)
	}
}

func TestLayoutKeepsNoBreakSpace(t *testing.T) {
	s := NewShaper(gofont.Collection())
	p := Parameters{PxPerEm: fixed.I(16)}
	const str = "10\u00a0km away"
	whole, err := s.Layout(p, str)
	if err != nil {
		t.Fatal(err)
	}
	p.MaxWidth = whole[0].Width - 1
	lines, err := s.Layout(p, str)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[0].Text != "10\u00a0km" {
		t.Errorf("got %+v, want the no-break space kept on one line", lines)
	}
}
