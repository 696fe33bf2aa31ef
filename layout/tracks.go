// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"golang.org/x/exp/constraints"
)

// distribute sizes a sequence of extents sharing space along one axis.
// Extents start at their preferred size and grow toward their maximum
// or shrink toward their minimum until they fill space. It reports
// false if space is smaller than the sum of minimums, in which case the
// sizes are scaled down below their minimums to fit.
func distribute(exts []Extent, space float32) ([]float32, bool) {
	sizes := make([]float32, len(exts))
	var pref float32
	for i, e := range exts {
		sizes[i] = e.Preferred
		pref += e.Preferred
	}
	switch {
	case math.IsInf(float64(space), 1):
		return sizes, true
	case space >= pref:
		grow(sizes, exts, space-pref)
		return sizes, true
	default:
		return sizes, shrink(sizes, exts, pref-space)
	}
}

// grow hands out extra to the sizes below their maximum, in proportion
// to their preferred size, or evenly when none of them has one. A size
// that reaches its maximum drops out and the remainder is handed out
// again. It returns the part of extra nobody could take.
func grow(sizes []float32, exts []Extent, extra float32) float32 {
	// Every round either hands out everything or caps at least one size.
	for round := 0; round <= len(sizes) && extra > 0; round++ {
		var weight float32
		open := 0
		for i, sz := range sizes {
			if sz < exts[i].Max {
				weight += exts[i].Preferred
				open++
			}
		}
		if open == 0 {
			break
		}
		var given float32
		capped := false
		last := -1
		for i, sz := range sizes {
			if sz >= exts[i].Max {
				continue
			}
			var share float32
			if weight > 0 {
				share = extra * exts[i].Preferred / weight
			} else {
				share = extra / float32(open)
			}
			if room := exts[i].Max - sz; share >= room {
				share = room
				capped = true
			} else if share > 0 {
				last = i
			}
			sizes[i] += share
			given += share
		}
		if !capped && last >= 0 {
			// Hand rounding residue to the last receiver so the sizes
			// add up to the space exactly.
			sizes[last] += extra - given
			given = extra
		}
		if given <= 0 {
			break
		}
		extra -= given
	}
	return extra
}

// shrink takes deficit from the sizes in proportion to how far each is
// above its minimum. When that is not enough, the minimums are scaled
// down to absorb the rest and shrink reports false.
func shrink(sizes []float32, exts []Extent, deficit float32) bool {
	var room float32
	for _, e := range exts {
		room += e.Preferred - e.Min
	}
	if room >= deficit {
		if room > 0 {
			for i, e := range exts {
				sizes[i] -= deficit * (e.Preferred - e.Min) / room
			}
		}
		return true
	}
	var mins float32
	for i, e := range exts {
		sizes[i] = e.Min
		mins += e.Min
	}
	if target := mins - (deficit - room); mins > 0 {
		scale := nonNeg(target) / mins
		for i := range sizes {
			sizes[i] *= scale
		}
	}
	return false
}

// stretch grows sizes by extra in proportion to their current size, or
// evenly if they are all zero. Unlike grow it ignores maximums.
func stretch(sizes []float32, extra float32) {
	var total float32
	for _, sz := range sizes {
		total += sz
	}
	for i, sz := range sizes {
		if total > 0 {
			sizes[i] += extra * sz / total
		} else {
			sizes[i] += extra / float32(len(sizes))
		}
	}
}

// stretchFree stretches the sizes marked free by extra, leaving the
// others alone. It reports false if no size is free.
func stretchFree(sizes []float32, free []bool, extra float32) bool {
	var idx []int
	for i, f := range free {
		if f {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return false
	}
	sub := make([]float32, len(idx))
	for j, i := range idx {
		sub[j] = sizes[i]
	}
	stretch(sub, extra)
	for j, i := range idx {
		sizes[i] = sub[j]
	}
	return true
}

func sum[T constraints.Integer | constraints.Float](sizes []T) T {
	var s T
	for _, sz := range sizes {
		s += sz
	}
	return s
}

// gaps returns the total spacing between n neighbours.
func gaps(n int, spacing float32) float32 {
	if n < 2 {
		return 0
	}
	return float32(n-1) * spacing
}
