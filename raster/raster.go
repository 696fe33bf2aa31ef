// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster executes an op.Ops list into an image on the CPU.

Rectangles are drawn with anti-aliased edges by a vector rasterizer,
and text by the faces recorded in the operations.
*/
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"gioui.org/x/arrange/f32"
	"gioui.org/x/arrange/op"
)

// Rasterizer draws frames. The zero value is ready to use.
type Rasterizer struct {
	scratch struct {
		clips []image.Rectangle
	}
	vr *vector.Rasterizer
}

// Frame draws the operations of frame over dst.
func (r *Rasterizer) Frame(frame *op.Ops, dst *image.RGBA) {
	if frame == nil {
		return
	}
	clips := r.scratch.clips[:0]
	defer func() {
		r.scratch.clips = clips
	}()
	clip := dst.Bounds()
	var material image.Image = image.NewUniform(color.NRGBA{})
	for _, o := range frame.List() {
		switch o.Type {
		case op.TypeColor:
			material = image.NewUniform(o.Color)
		case op.TypeClip:
			clips = append(clips, clip)
			clip = clip.Intersect(outer(o.Rect))
		case op.TypePopClip:
			clip = clips[len(clips)-1]
			clips = clips[:len(clips)-1]
		case op.TypePaint:
			r.fill(dst, clip, material, o.Rect, f32.Rectangle{})
		case op.TypeBorder:
			w := o.Width
			inner := f32.Rectangle{
				Min: o.Rect.Min.Add(f32.Pt(w, w)),
				Max: o.Rect.Max.Sub(f32.Pt(w, w)),
			}
			r.fill(dst, clip, material, o.Rect, inner)
		case op.TypeText:
			if o.Face == nil || clip.Empty() {
				break
			}
			d := font.Drawer{
				Dst:  dst.SubImage(clip).(*image.RGBA),
				Src:  material,
				Face: o.Face,
				Dot:  fixed.Point26_6{X: toFixed(o.Dot.X), Y: toFixed(o.Dot.Y)},
			}
			d.DrawString(o.Text)
		default:
			panic("unknown op " + o.Type.String())
		}
	}
}

// fill draws rect less hole with material. An empty hole draws the
// whole rect.
func (r *Rasterizer) fill(dst *image.RGBA, clip image.Rectangle, material image.Image, rect, hole f32.Rectangle) {
	bounds := clip.Intersect(outer(rect))
	if bounds.Empty() {
		return
	}
	if rect == snap(rect) && hole.Empty() {
		draw.Draw(dst, bounds, material, image.Point{}, draw.Over)
		return
	}
	w, h := bounds.Dx(), bounds.Dy()
	if r.vr == nil {
		r.vr = vector.NewRasterizer(w, h)
	} else {
		r.vr.Reset(w, h)
	}
	r.vr.DrawOp = draw.Over
	off := f32.Pt(float32(-bounds.Min.X), float32(-bounds.Min.Y))
	path(r.vr, rect.Add(off), false)
	if !hole.Empty() {
		path(r.vr, hole.Add(off), true)
	}
	r.vr.Draw(dst, bounds, material, image.Point{})
}

// path adds a closed rectangle to vr, counter-clockwise if reverse is
// set.
func path(vr *vector.Rasterizer, r f32.Rectangle, reverse bool) {
	vr.MoveTo(r.Min.X, r.Min.Y)
	if reverse {
		vr.LineTo(r.Min.X, r.Max.Y)
		vr.LineTo(r.Max.X, r.Max.Y)
		vr.LineTo(r.Max.X, r.Min.Y)
	} else {
		vr.LineTo(r.Max.X, r.Min.Y)
		vr.LineTo(r.Max.X, r.Max.Y)
		vr.LineTo(r.Min.X, r.Max.Y)
	}
	vr.ClosePath()
}

// Scale returns img scaled by factor with a Catmull-Rom filter.
func Scale(img *image.RGBA, factor float32) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0,
		int(math.Round(float64(float32(b.Dx())*factor))),
		int(math.Round(float64(float32(b.Dy())*factor))),
	))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// outer returns the smallest integer rectangle covering r.
func outer(r f32.Rectangle) image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(r.Min.X))), int(math.Floor(float64(r.Min.Y))),
		int(math.Ceil(float64(r.Max.X))), int(math.Ceil(float64(r.Max.Y))),
	)
}

func snap(r f32.Rectangle) f32.Rectangle {
	o := outer(r)
	return f32.Rectangle{
		Min: f32.Pt(float32(o.Min.X), float32(o.Min.Y)),
		Max: f32.Pt(float32(o.Max.X), float32(o.Max.Y)),
	}
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64))
}
