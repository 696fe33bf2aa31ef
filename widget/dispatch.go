// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"errors"
	"fmt"

	"gioui.org/x/arrange/f32"
	"gioui.org/x/arrange/io/event"
	"gioui.org/x/arrange/layout"
)

// Kind is the kind of a widget.
type Kind uint8

const (
	// KindGeneric widgets delegate to a Capability.
	KindGeneric Kind = iota
	KindEqualHeightRow
	KindEqualWidthColumn
	KindGrid
	KindCell
)

// ErrStructure is matched by the errors of invalid tree edits.
var ErrStructure = errors.New("invalid tree structure")

var (
	errGridAppend = fmt.Errorf("grid children need an area: %w", ErrStructure)
	errCellFull   = fmt.Errorf("cell already has content: %w", ErrStructure)
	errNotGrid    = fmt.Errorf("not a grid: %w", ErrStructure)
	errAttached   = fmt.Errorf("already attached: %w", ErrStructure)
	errCycle      = fmt.Errorf("cycle: %w", ErrStructure)
)

// ops are the layout operations of a widget kind.
type ops struct {
	measure func(t *Tree, n *node, space layout.Space, kids []layout.Hint) layout.Hint
	// arrange returns the absolute rectangles of the children of n.
	arrange func(t *Tree, h Handle, n *node, bounds f32.Rectangle) []f32.Rectangle
	// event is nil for kinds that ignore events.
	event func(t *Tree, n *node, e event.Event) []Signal
}

var dispatch = [...]ops{
	KindGeneric:          {measureGeneric, arrangeGeneric, nil},
	KindEqualHeightRow:   {measureEqual, arrangeEqual, nil},
	KindEqualWidthColumn: {measureEqual, arrangeEqual, nil},
	KindGrid:             {measureGrid, arrangeGrid, nil},
	KindCell:             {measureCell, arrangeCell, eventCell},
}

func measureGeneric(t *Tree, n *node, space layout.Space, kids []layout.Hint) layout.Hint {
	return n.capability.Measure(space, kids)
}

func arrangeGeneric(t *Tree, h Handle, n *node, bounds f32.Rectangle) []f32.Rectangle {
	return n.capability.Arrange(bounds, n.kids)
}

func measureEqual(t *Tree, n *node, space layout.Space, kids []layout.Hint) layout.Hint {
	return n.equal.Measure(kids)
}

func arrangeEqual(t *Tree, h Handle, n *node, bounds f32.Rectangle) []f32.Rectangle {
	l := n.equal.Layout(n.kids, layout.SpaceOf(bounds.Size()))
	t.warn(h, l.Warnings)
	return offset(l.Rects, bounds.Min)
}

func measureGrid(t *Tree, n *node, space layout.Space, kids []layout.Hint) layout.Hint {
	return n.grid.Measure(n.areas, kids)
}

func arrangeGrid(t *Tree, h Handle, n *node, bounds f32.Rectangle) []f32.Rectangle {
	l := n.grid.Layout(n.areas, n.kids, layout.SpaceOf(bounds.Size()))
	t.warn(h, l.Warnings)
	return offset(l.Rects, bounds.Min)
}

func measureCell(t *Tree, n *node, space layout.Space, kids []layout.Hint) layout.Hint {
	if len(kids) == 0 {
		return n.cell.measure(t.Metric, nil)
	}
	return n.cell.measure(t.Metric, &kids[0])
}

func arrangeCell(t *Tree, h Handle, n *node, bounds f32.Rectangle) []f32.Rectangle {
	return []f32.Rectangle{n.cell.arrange(t.Metric, bounds, n.kids[0])}
}

func eventCell(t *Tree, n *node, e event.Event) []Signal {
	return n.cell.Update(t.Metric, n.bounds, e)
}

func offset(rects []f32.Rectangle, off f32.Point) []f32.Rectangle {
	for i := range rects {
		rects[i] = rects[i].Add(off)
	}
	return rects
}

func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "Generic"
	case KindEqualHeightRow:
		return "EqualHeightRow"
	case KindEqualWidthColumn:
		return "EqualWidthColumn"
	case KindGrid:
		return "Grid"
	case KindCell:
		return "Cell"
	default:
		panic("unreachable")
	}
}
