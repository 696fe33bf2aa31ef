// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gioui.org/x/arrange/f32"
	"gioui.org/x/arrange/layout"
	"gioui.org/x/arrange/widget"
)

const twoBoxes = `
width = 80
height = 20

[root]
kind = "grid"
rows = 1
columns = 2

[[root.children]]
name = "left"
kind = "cell"
padding = 0
children = [{ kind = "box", width = 40, height = 20 }]

[[root.children]]
name = "right"
kind = "cell"
column = 1
padding = 0
children = [{ kind = "box", width = 40, height = 20 }]
`

func TestBuild(t *testing.T) {
	f, err := Parse(twoBoxes)
	if err != nil {
		t.Fatal(err)
	}
	s, err := f.Build(1)
	if err != nil {
		t.Fatal(err)
	}
	type rect struct {
		Name string
		Rect f32.Rectangle
	}
	var got []rect
	for _, p := range s.Arrange() {
		got = append(got, rect{s.Names[p.Handle], p.Rect})
	}
	want := []rect{
		{"root", f32.Rect(0, 0, 80, 20)},
		{"left", f32.Rect(0, 0, 40, 20)},
		{"root/0/0", f32.Rect(0, 0, 40, 20)},
		{"right", f32.Rect(40, 0, 40, 20)},
		{"root/1/0", f32.Rect(40, 0, 40, 20)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements (-want +got):\n%s", diff)
	}
}

func TestBuildScale(t *testing.T) {
	f, err := Parse(twoBoxes)
	if err != nil {
		t.Fatal(err)
	}
	s, err := f.Build(2)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s.Bounds(), f32.Rect(0, 0, 160, 40); got != want {
		t.Errorf("bounds %v, want %v", got, want)
	}
	places := s.Arrange()
	if got, want := places[3].Rect, f32.Rect(80, 0, 80, 40); got != want {
		t.Errorf("right cell %v, want %v", got, want)
	}
}

func TestReport(t *testing.T) {
	f, err := Parse(twoBoxes)
	if err != nil {
		t.Fatal(err)
	}
	s, err := f.Build(1)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	report(&buf, s, s.Arrange())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "root Grid ") {
		t.Errorf("first line %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "    root/0/0 Generic ") {
		t.Errorf("third line %q, want indented twice", lines[2])
	}
}

func TestLabelsAndStyles(t *testing.T) {
	f, err := Parse(`
width = 200
height = 50

[root]
kind = "row"
spacing = 4

[[root.children]]
kind = "cell"
style = "label"
align = "center"
children = [{ kind = "label", text = "Name" }]

[[root.children]]
kind = "cell"
style = "RowAlternating"
resizable = "both"
children = [{ kind = "label", text = "a longer value", wrap = true }]
`)
	if err != nil {
		t.Fatal(err)
	}
	s, err := f.Build(1)
	if err != nil {
		t.Fatal(err)
	}
	places := s.Arrange()
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
	if len(places) != 5 {
		t.Fatalf("got %d placements, want 5", len(places))
	}
	if places[1].Rect.Dy() != places[3].Rect.Dy() {
		t.Errorf("cell heights %v and %v differ", places[1].Rect, places[3].Rect)
	}
	c := s.Tree.Cell(places[3].Handle)
	if c.Resizable != widget.ResizeHorizontal|widget.ResizeVertical {
		t.Errorf("resizable %v", c.Resizable)
	}
	if s.Tree.Cell(places[1].Handle).Alignment != layout.Center {
		t.Error("label cell not centered")
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name, file, want string
	}{
		{"unknown key", "width = 1\nheight = 1\nbogus = 2\n[root]\nkind = \"box\"", "unknown keys"},
		{"no kind", "width = 1\nheight = 1\n[root]\n", "missing kind"},
		{"bad kind", "width = 1\nheight = 1\n[root]\nkind = \"table\"", "unknown kind"},
		{"no size", "[root]\nkind = \"box\"", "positive"},
		{"bad align", "width = 1\nheight = 1\n[root]\nkind = \"row\"\nalign = \"up\"", "invalid align"},
		{"bad style", "width = 1\nheight = 1\n[root]\nkind = \"cell\"\nstyle = \"loud\"", "invalid style"},
		{"full cell", "width = 1\nheight = 1\n[root]\nkind = \"cell\"\nchildren = [{kind = \"box\"}, {kind = \"box\"}]", "child 1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Parse(tc.file)
			if err == nil {
				_, err = f.Build(1)
			}
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("got %v, want an error containing %q", err, tc.want)
			}
		})
	}
}

func TestBuildOverlap(t *testing.T) {
	f, err := Parse(`
width = 10
height = 10

[root]
kind = "grid"
rows = 1
columns = 1
children = [{ kind = "box" }, { kind = "box" }]
`)
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.Build(1)
	var cerr *layout.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want a *layout.ConfigError", err)
	}
}

func TestLabelFonts(t *testing.T) {
	f, err := Parse(`
width = 400
height = 40

[root]
kind = "row"
children = [
	{ kind = "label", text = "Gopher" },
	{ kind = "label", text = "Gopher", bold = true },
	{ kind = "label", text = "Gopher", mono = true, italic = true },
]
`)
	if err != nil {
		t.Fatal(err)
	}
	s, err := f.Build(1)
	if err != nil {
		t.Fatal(err)
	}
	places := s.Arrange()
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
	regular := s.Tree.Hint(places[1].Handle).Width.Preferred
	bold := s.Tree.Hint(places[2].Handle).Width.Preferred
	mono := s.Tree.Hint(places[3].Handle).Width.Preferred
	if bold <= regular {
		t.Errorf("bold width %g, want wider than regular %g", bold, regular)
	}
	if mono == regular {
		t.Errorf("mono width %g equals the regular width", mono)
	}
}
