// SPDX-License-Identifier: Unlicense OR MIT

// Command arrange lays out the widget tree described by a TOML file
// and prints the rectangle of every widget. With -png it also renders
// the arrangement.
//
// A layout file describes the frame size and a tree of widgets:
//
//	width = 300
//	height = 100
//
//	[root]
//	kind = "grid"
//	rows = 1
//	columns = 2
//
//	[[root.children]]
//	kind = "cell"
//	style = "label"
//	children = [{ kind = "label", text = "Name" }]
//
//	[[root.children]]
//	kind = "cell"
//	column = 1
//	children = [{ kind = "label", text = "Gopher", wrap = true }]
//
// Widget kinds are row, column, grid, cell, label and box.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"gioui.org/x/arrange/op"
	"gioui.org/x/arrange/raster"
	"gioui.org/x/arrange/widget"
)

var (
	pngPath = flag.String("png", "", "render the arrangement to a PNG file.")
	scale   = flag.Float64("scale", 1, "pixels per dp and sp.")
	upscale = flag.Float64("upscale", 1, "scale factor applied to the rendered image.")
	width   = flag.Float64("width", 0, "override the frame width, in dp.")
	height  = flag.Float64("height", 0, "override the frame height, in dp.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: arrange [flags] layout.toml\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "arrange: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	path := flag.Arg(0)
	if path == "" {
		return errors.New("specify a layout file")
	}
	if *scale <= 0 || *upscale <= 0 {
		return errors.New("-scale and -upscale must be positive")
	}
	f, err := LoadFile(path)
	if err != nil {
		return err
	}
	if *width > 0 {
		f.Width = *width
	}
	if *height > 0 {
		f.Height = *height
	}
	s, err := f.Build(float32(*scale))
	if err != nil {
		return err
	}
	places := s.Arrange()
	if err := s.Err(); err != nil {
		return err
	}
	report(os.Stdout, s, places)
	for _, d := range s.Tree.Warnings() {
		fmt.Fprintf(os.Stderr, "arrange: warning: %s: %v\n", s.Names[d.Handle], d.Warning)
	}
	if *pngPath == "" {
		return nil
	}
	return render(*pngPath, s, places)
}

// report prints one line per placement, indented by depth.
func report(w io.Writer, s *Scene, places []widget.Placement) {
	for _, p := range places {
		depth := 0
		for h := s.Tree.Parent(p.Handle); h != 0; h = s.Tree.Parent(h) {
			depth++
		}
		fmt.Fprintf(w, "%*s%s %v %v\n", 2*depth, "", s.Names[p.Handle], p.Kind, p.Rect)
	}
}

func render(path string, s *Scene, places []widget.Placement) error {
	bounds := s.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, int(bounds.Max.X+.5), int(bounds.Max.Y+.5)))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	ops := new(op.Ops)
	s.Tree.Paint(ops, places)
	var r raster.Rasterizer
	r.Frame(ops, img)
	if *upscale != 1 {
		img = raster.Scale(img, float32(*upscale))
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
