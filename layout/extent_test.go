// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"
)

func TestExtentNormalize(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   Extent
		want Extent
		ok   bool
	}{
		{"valid", Extent{1, 2, 3}, Extent{1, 2, 3}, true},
		{"negative min", Extent{-1, 2, 10}, Extent{0, 2, 10}, true},
		{"preferred below min", Extent{1, 0.5, 3}, Extent{1, 1, 3}, true},
		{"preferred above max", Extent{1, 5, 3}, Extent{1, 3, 3}, true},
		{"min above max", Extent{5, 3, 2}, Extent{5, 5, 5}, false},
		{"unbounded", Fill(2, 4), Extent{2, 4, Unbounded}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.in.Normalize()
			if got != tc.want || ok != tc.ok {
				t.Errorf("Normalize(%v) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestHintNormalizeWarns(t *testing.T) {
	h := Hint{Width: Extent{10, 5, 2}, Height: Rigid(3)}
	n, warns := h.Normalize()
	if n.Width != Rigid(10) {
		t.Errorf("width not clamped: %v", n.Width)
	}
	if len(warns) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warns))
	}
	if w := warns[0]; w.Kind != MeasurementInconsistency || w.Axis != Horizontal {
		t.Errorf("unexpected warning %v", w)
	}
}

func TestStackCross(t *testing.T) {
	s := Stack(2, Rigid(10), Shrink(5, 20), Fill(0, 5))
	if s.Min != 19 || s.Preferred != 39 || !isInf(s.Max) {
		t.Errorf("Stack = %v", s)
	}
	c := Cross(Rigid(10), Shrink(5, 20), Extent{12, 12, 15})
	if want := (Extent{12, 20, 20}); c != want {
		t.Errorf("Cross = %v, want %v", c, want)
	}
	if got := Stack(3); got != (Extent{}) {
		t.Errorf("empty Stack = %v", got)
	}
}

func TestExtentFit(t *testing.T) {
	e := Extent{Min: 10, Preferred: 30, Max: 50}
	for _, tc := range []struct {
		bound, want float32
	}{
		{Unbounded, 30},
		{40, 30},
		{20, 20},
		{5, 10},
	} {
		if got := e.Fit(tc.bound); got != tc.want {
			t.Errorf("Fit(%g) = %g, want %g", tc.bound, got, tc.want)
		}
	}
}

func TestSpaceCheck(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("negative space did not panic")
		}
	}()
	Space{Width: -1, Height: 10}.Check()
}

func TestDistribute(t *testing.T) {
	for _, tc := range []struct {
		name     string
		exts     []Extent
		space    float32
		want     []float32
		feasible bool
	}{
		{"unbounded", []Extent{Fill(0, 10), Shrink(0, 20)}, Unbounded, []float32{10, 20}, true},
		{"grow by preference", []Extent{Fill(0, 10), Fill(0, 30)}, 80, []float32{20, 60}, true},
		{"grow capped", []Extent{Extent{0, 10, 15}, Fill(0, 10)}, 40, []float32{15, 25}, true},
		{"grow evenly", []Extent{Fill(0, 0), Fill(0, 0)}, 10, []float32{5, 5}, true},
		{"all at max", []Extent{Shrink(0, 10), Shrink(0, 20)}, 100, []float32{10, 20}, true},
		{"shrink by room", []Extent{Shrink(10, 50), Shrink(20, 40)}, 60, []float32{30, 30}, true},
		{"below minimums", []Extent{Rigid(20), Rigid(60)}, 40, []float32{10, 30}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := distribute(tc.exts, tc.space)
			if ok != tc.feasible {
				t.Errorf("feasible = %v, want %v", ok, tc.feasible)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if !near(got[i], tc.want[i]) {
					t.Errorf("got %v, want %v", got, tc.want)
					break
				}
			}
		})
	}
}

func near(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance(max(abs(a), abs(b)))
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
