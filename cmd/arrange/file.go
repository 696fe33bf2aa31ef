// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"gioui.org/x/arrange/f32"
	"gioui.org/x/arrange/font"
	"gioui.org/x/arrange/font/gofont"
	"gioui.org/x/arrange/layout"
	"gioui.org/x/arrange/text"
	"gioui.org/x/arrange/unit"
	"gioui.org/x/arrange/widget"
	"gioui.org/x/arrange/widget/material"
)

// File is a layout file. Lengths are in dp, text sizes in sp.
type File struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Root   Node    `toml:"root"`
}

// Node describes a widget and its children. Only the fields of its
// Kind apply.
type Node struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"`

	// Rows, columns and grids.
	Spacing float64 `toml:"spacing"`
	Inset   float64 `toml:"inset"`
	// Rows and columns.
	Fixed   float64 `toml:"fixed"`
	Min     float64 `toml:"min"`
	Max     float64 `toml:"max"`
	Reverse bool    `toml:"reverse"`
	// Align is a direction such as "NW" or "Center", for rows, columns
	// and cells.
	Align string `toml:"align"`

	// Grids.
	Rows         int       `toml:"rows"`
	Columns      int       `toml:"columns"`
	ColumnWidths []float64 `toml:"column_widths"`
	RowHeights   []float64 `toml:"row_heights"`

	// Area of a grid child.
	Row        int `toml:"row"`
	Column     int `toml:"column"`
	RowSpan    int `toml:"row_span"`
	ColumnSpan int `toml:"column_span"`

	// Cells.
	Style     string   `toml:"style"`
	Changed   bool     `toml:"changed"`
	Clickable bool     `toml:"clickable"`
	Resizable string   `toml:"resizable"`
	Padding   *float64 `toml:"padding"`

	// Labels.
	Text     string  `toml:"text"`
	Size     float64 `toml:"size"`
	Wrap     bool    `toml:"wrap"`
	MaxLines int     `toml:"max_lines"`
	Typeface string  `toml:"typeface"`
	Bold     bool    `toml:"bold"`
	Italic   bool    `toml:"italic"`
	Mono     bool    `toml:"mono"`

	// Boxes.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Fill   bool    `toml:"fill"`

	Children []Node `toml:"children"`
}

// Scene is a widget tree built from a File.
type Scene struct {
	Tree widget.Tree
	// Names maps handles to the widget names of the file. Unnamed
	// widgets are named by their path from the root.
	Names map[widget.Handle]string

	size   f32.Point
	theme  *material.Theme
	shaper *text.Shaper
	labels []*text.Label
}

// box is a childless widget of a fixed hint.
type box struct {
	hint layout.Hint
}

// LoadFile reads a layout file.
func LoadFile(path string) (*File, error) {
	f := new(File)
	md, err := toml.DecodeFile(path, f)
	if err != nil {
		return nil, err
	}
	return f, undecoded(md)
}

// Parse reads a layout file from data.
func Parse(data string) (*File, error) {
	f := new(File)
	md, err := toml.Decode(data, f)
	if err != nil {
		return nil, err
	}
	return f, undecoded(md)
}

func undecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(names, ", "))
}

// Build creates the widget tree of f at px pixels per dp and sp.
func (f *File) Build(px float32) (*Scene, error) {
	if f.Width <= 0 || f.Height <= 0 {
		return nil, errors.New("the frame width and height must be positive")
	}
	m := unit.Metric{PxPerDp: px, PxPerSp: px}
	s := &Scene{
		Names:  make(map[widget.Handle]string),
		size:   f32.Pt(m.Dp(unit.Dp(f.Width)), m.Dp(unit.Dp(f.Height))),
		theme:  material.NewTheme(),
		shaper: text.NewShaper(gofont.Collection()),
	}
	s.Tree.Metric = m
	root, err := s.build(f.Root, "root")
	if err != nil {
		return nil, err
	}
	s.Tree.SetRoot(root)
	return s, nil
}

// Bounds returns the frame rectangle in pixels.
func (s *Scene) Bounds() f32.Rectangle {
	return f32.Rectangle{Max: s.size}
}

// Arrange measures and arranges the tree in the frame.
func (s *Scene) Arrange() []widget.Placement {
	s.Tree.Measure(layout.SpaceOf(s.size))
	return s.Tree.Arrange(s.Bounds())
}

// Err returns the first text measurement error, if any.
func (s *Scene) Err() error {
	for _, l := range s.labels {
		if err := l.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) build(n Node, path string) (widget.Handle, error) {
	name := n.Name
	if name == "" {
		name = path
	}
	w, err := s.widget(n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	h := s.Tree.Add(w)
	s.Names[h] = name
	for i, c := range n.Children {
		ch, err := s.build(c, path+"/"+strconv.Itoa(i))
		if err != nil {
			return 0, err
		}
		if w.Kind() == widget.KindGrid {
			area := layout.Area{Row: c.Row, Column: c.Column, RowSpan: c.RowSpan, ColumnSpan: c.ColumnSpan}
			err = s.Tree.Put(h, ch, area)
		} else {
			err = s.Tree.Append(h, ch)
		}
		if err != nil {
			return 0, fmt.Errorf("%s: child %d: %w", name, i, err)
		}
	}
	return h, nil
}

func (s *Scene) widget(n Node) (widget.Widget, error) {
	m := s.Tree.Metric
	dp := func(v float64) float32 {
		return m.Dp(unit.Dp(v))
	}
	switch n.Kind {
	case "row", "column":
		dir, err := direction(n.Align)
		if err != nil {
			return widget.Widget{}, err
		}
		e := layout.Equal{
			Spacing:   dp(n.Spacing),
			Inset:     layout.UniformInset(dp(n.Inset)),
			Fixed:     dp(n.Fixed),
			Min:       dp(n.Min),
			Max:       dp(n.Max),
			Direction: dir,
			Reverse:   n.Reverse,
		}
		if n.Kind == "row" {
			return widget.EqualHeightRow(e), nil
		}
		return widget.EqualWidthColumn(e), nil
	case "grid":
		g := layout.Grid{
			Rows:    n.Rows,
			Columns: n.Columns,
			Spacing: dp(n.Spacing),
			Inset:   layout.UniformInset(dp(n.Inset)),
		}
		for _, v := range n.ColumnWidths {
			g.ColumnWidths = append(g.ColumnWidths, dp(v))
		}
		for _, v := range n.RowHeights {
			g.RowHeights = append(g.RowHeights, dp(v))
		}
		return widget.NewGrid(g)
	case "cell":
		return s.cell(n)
	case "label":
		if len(n.Children) > 0 {
			return widget.Widget{}, errors.New("labels have no children")
		}
		size := unit.Sp(n.Size)
		if size == 0 {
			size = s.theme.TextSize
		}
		f := font.Font{Typeface: n.Typeface, Mono: n.Mono, Italic: n.Italic}
		if n.Bold {
			f.Weight = font.Bold
		}
		l := &text.Label{
			Shaper:   s.shaper,
			Font:     f,
			TextSize: size,
			Metric:   m,
			Text:     n.Text,
			Color:    s.theme.Fg,
			Wrap:     n.Wrap,
			MaxLines: n.MaxLines,
		}
		s.labels = append(s.labels, l)
		return widget.Generic(l), nil
	case "box":
		if len(n.Children) > 0 {
			return widget.Widget{}, errors.New("boxes have no children")
		}
		w, h := dp(n.Width), dp(n.Height)
		b := box{hint: layout.Hint{Width: layout.Rigid(w), Height: layout.Rigid(h)}}
		if n.Fill {
			b.hint = layout.Hint{Width: layout.Fill(w, w), Height: layout.Fill(h, h)}
		}
		return widget.Generic(b), nil
	case "":
		return widget.Widget{}, errors.New("missing kind")
	default:
		return widget.Widget{}, fmt.Errorf("unknown kind %q", n.Kind)
	}
}

func (s *Scene) cell(n Node) (widget.Widget, error) {
	style, err := styling(n.Style)
	if err != nil {
		return widget.Widget{}, err
	}
	dir, err := direction(n.Align)
	if err != nil {
		return widget.Widget{}, err
	}
	c := s.theme.Apply(widget.NewCell(), material.Styling{Kind: style, Changed: n.Changed, Row: n.Row})
	c.Clickable = n.Clickable
	c.Alignment = dir
	if n.Padding != nil {
		c.Padding = unit.Dp(*n.Padding)
	}
	switch n.Resizable {
	case "":
	case "horizontal":
		c.Resizable = widget.ResizeHorizontal
	case "vertical":
		c.Resizable = widget.ResizeVertical
	case "both":
		c.Resizable = widget.ResizeHorizontal | widget.ResizeVertical
	default:
		return widget.Widget{}, fmt.Errorf("invalid resizable %q", n.Resizable)
	}
	return widget.CellWidget(c), nil
}

func direction(s string) (layout.Direction, error) {
	if s == "" {
		return layout.NW, nil
	}
	for d := layout.NW; d <= layout.Center; d++ {
		if strings.EqualFold(d.String(), s) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid align %q", s)
}

func styling(s string) (material.StylingKind, error) {
	if s == "" {
		return material.Value, nil
	}
	for k := material.Label; k <= material.Divider; k++ {
		if strings.EqualFold(k.String(), s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("invalid style %q", s)
}

func (b box) Measure(space layout.Space, children []layout.Hint) layout.Hint {
	return b.hint
}

func (b box) Arrange(bounds f32.Rectangle, children []layout.Hint) []f32.Rectangle {
	return nil
}
