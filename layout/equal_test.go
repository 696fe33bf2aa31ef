// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math/rand"
	"testing"

	"gioui.org/x/arrange/f32"
)

func hint(w, h Extent) Hint {
	return Hint{Width: w, Height: h}
}

func TestEqualRow(t *testing.T) {
	children := []Hint{
		hint(Shrink(0, 10), Extent{5, 20, 100}),
		hint(Shrink(0, 20), Extent{10, 30, 50}),
		hint(Shrink(0, 30), Fill(0, 15)),
	}
	e := Equal{Axis: Horizontal, Spacing: 5}
	l := e.Layout(children, Space{Width: 200, Height: 200})
	if l.Shared != 30 {
		t.Errorf("shared height %g, want 30", l.Shared)
	}
	want := []f32.Rectangle{
		f32.Rect(0, 0, 10, 30),
		f32.Rect(15, 0, 20, 30),
		f32.Rect(40, 0, 30, 30),
	}
	for i, r := range l.Rects {
		if r != want[i] {
			t.Errorf("child %d: got %v, want %v", i, r, want[i])
		}
	}
	if got := l.Size; got != f32.Pt(70, 30) {
		t.Errorf("size %v, want (70,30)", got)
	}
	if len(l.Warnings) != 0 {
		t.Errorf("unexpected warnings %v", l.Warnings)
	}
}

func TestEqualColumn(t *testing.T) {
	children := []Hint{
		hint(Fill(0, 40), Rigid(10)),
		hint(Shrink(20, 60), Rigid(20)),
	}
	e := Equal{Axis: Vertical}
	l := e.Layout(children, Space{Width: 100, Height: Unbounded})
	want := []f32.Rectangle{
		f32.Rect(0, 0, 60, 10),
		f32.Rect(0, 10, 60, 20),
	}
	for i, r := range l.Rects {
		if r != want[i] {
			t.Errorf("child %d: got %v, want %v", i, r, want[i])
		}
	}
}

func TestEqualSharedIdentical(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	randExtent := func() Extent {
		lo := float32(rng.Intn(20))
		pref := lo + float32(rng.Intn(30))
		hi := pref + float32(rng.Intn(40))
		if rng.Intn(4) == 0 {
			hi = Unbounded
		}
		return Extent{lo, pref, hi}
	}
	for _, axis := range []Axis{Horizontal, Vertical} {
		for trial := 0; trial < 100; trial++ {
			children := make([]Hint, 1+rng.Intn(6))
			for i := range children {
				children[i] = hint(randExtent(), randExtent())
			}
			space := Space{Width: float32(rng.Intn(200)), Height: float32(rng.Intn(200))}
			l := Equal{Axis: axis, Spacing: 3}.Layout(children, space)
			first := axisCross(axis, l.Rects[0].Size())
			for i, r := range l.Rects {
				if got := axisCross(axis, r.Size()); got != first {
					t.Fatalf("%v trial %d: child %d cross extent %g differs from %g", axis, trial, i, got, first)
				}
			}
		}
	}
}

func TestEqualEmptyIntersection(t *testing.T) {
	children := []Hint{
		hint(Rigid(10), Rigid(40)),
		hint(Rigid(10), Shrink(0, 10)),
	}
	l := Equal{Axis: Horizontal}.Layout(children, UnboundedSpace())
	if l.Shared != 40 {
		t.Errorf("shared %g, want the largest minimum 40", l.Shared)
	}
}

func TestEqualShrinkToSpace(t *testing.T) {
	children := []Hint{
		hint(Rigid(10), Extent{10, 30, 50}),
		hint(Rigid(10), Extent{20, 40, 60}),
	}
	e := Equal{Axis: Horizontal}
	if l := e.Layout(children, UnboundedSpace()); l.Shared != 40 {
		t.Errorf("unbounded shared %g, want 40", l.Shared)
	}
	l := e.Layout(children, Space{Width: 100, Height: 25})
	if l.Shared != 25 || len(l.Warnings) != 0 {
		t.Errorf("shared %g (warnings %v), want 25", l.Shared, l.Warnings)
	}
	l = e.Layout(children, Space{Width: 100, Height: 15})
	if l.Shared != 20 {
		t.Errorf("shared %g, want the largest minimum 20", l.Shared)
	}
	if len(l.Warnings) != 1 || l.Warnings[0].Kind != LayoutInfeasible || l.Warnings[0].Axis != Vertical {
		t.Errorf("warnings %v, want one vertical LayoutInfeasible", l.Warnings)
	}
}

func TestEqualEdgeCases(t *testing.T) {
	e := Equal{Axis: Horizontal, Inset: UniformInset(4)}
	if h := e.Measure(nil); h != (Hint{}) {
		t.Errorf("Measure of no children = %v", h)
	}
	if l := e.Layout(nil, Space{Width: 10, Height: 10}); len(l.Rects) != 0 || l.Size != (f32.Point{}) {
		t.Errorf("Layout of no children = %+v", l)
	}

	single := []Hint{hint(Shrink(10, 40), Fill(5, 25))}
	l := Equal{Axis: Horizontal}.Layout(single, Space{Width: 100, Height: 100})
	if want := f32.Rect(0, 0, 40, 25); l.Rects[0] != want {
		t.Errorf("single child %v, want %v", l.Rects[0], want)
	}
}

func TestEqualOptions(t *testing.T) {
	children := []Hint{
		hint(Rigid(10), Rigid(5)),
		hint(Rigid(20), Rigid(5)),
	}
	l := Equal{Axis: Horizontal, Reverse: true}.Layout(children, UnboundedSpace())
	if want := f32.Rect(20, 0, 10, 5); l.Rects[0] != want {
		t.Errorf("reversed child 0 %v, want %v", l.Rects[0], want)
	}
	if want := f32.Rect(0, 0, 20, 5); l.Rects[1] != want {
		t.Errorf("reversed child 1 %v, want %v", l.Rects[1], want)
	}

	fixed := []Hint{hint(Rigid(10), Shrink(0, 10))}
	if l := (Equal{Axis: Horizontal, Fixed: 50}).Layout(fixed, UnboundedSpace()); l.Shared != 50 {
		t.Errorf("fixed shared %g, want 50", l.Shared)
	}
	if l := (Equal{Axis: Horizontal, Max: 4}).Layout([]Hint{hint(Rigid(1), Extent{6, 8, 10})}, UnboundedSpace()); l.Shared != 6 {
		t.Errorf("max below child minimum gave %g, want 6", l.Shared)
	}
	if l := (Equal{Axis: Horizontal, Min: 30}).Layout(fixed, UnboundedSpace()); l.Shared != 30 {
		t.Errorf("min shared %g, want 30", l.Shared)
	}

	one := []Hint{RigidHint(f32.Pt(10, 10))}
	l = Equal{Axis: Horizontal, Inset: UniformInset(2)}.Layout(one, Space{Width: 100, Height: 100})
	if want := f32.Rect(2, 2, 10, 10); l.Rects[0] != want || l.Size != f32.Pt(14, 14) {
		t.Errorf("inset child %v size %v, want %v size (14,14)", l.Rects[0], l.Size, want)
	}
	l = Equal{Axis: Horizontal, Direction: Center}.Layout(one, Space{Width: 100, Height: 100})
	if want := f32.Rect(45, 45, 10, 10); l.Rects[0] != want {
		t.Errorf("centered child %v, want %v", l.Rects[0], want)
	}
}

func TestEqualMainShrink(t *testing.T) {
	children := []Hint{
		hint(Shrink(10, 50), Rigid(5)),
		hint(Shrink(10, 50), Rigid(5)),
	}
	l := Equal{Axis: Horizontal}.Layout(children, Space{Width: 60, Height: 100})
	if l.Sizes[0] != 30 || l.Sizes[1] != 30 {
		t.Errorf("sizes %v, want [30 30]", l.Sizes)
	}
}

func TestEqualMeasure(t *testing.T) {
	children := []Hint{
		hint(Shrink(0, 10), Shrink(0, 8)),
		hint(Shrink(5, 20), Fill(2, 4)),
	}
	got := Equal{Axis: Horizontal, Spacing: 5}.Measure(children)
	want := Hint{Width: Extent{10, 35, 35}, Height: Extent{2, 8, 8}}
	if got != want {
		t.Errorf("Measure = %v, want %v", got, want)
	}
}
