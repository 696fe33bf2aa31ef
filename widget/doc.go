// SPDX-License-Identifier: Unlicense OR MIT

// Package widget arranges trees of equal height rows, equal width
// columns, grids and cells, and implements the interaction state of
// cells.
//
// A Tree holds the widgets. Each frame the host measures and arranges
// the tree, and then delivers the frame's events to the cells:
//
//	tr.Measure(layout.SpaceOf(size))
//	places := tr.Arrange(f32.Rectangle{Max: size})
//	tr.Paint(ops, places)
//	sigs := tr.HandleEvent(cell, ev)
//
// Cell state, such as the pointer state and a pending content change
// flash, survives between frames. Layout results do not.
package widget
