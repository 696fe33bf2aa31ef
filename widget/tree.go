// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"

	"golang.org/x/exp/slices"

	"gioui.org/x/arrange/f32"
	"gioui.org/x/arrange/io/content"
	"gioui.org/x/arrange/io/event"
	"gioui.org/x/arrange/layout"
	"gioui.org/x/arrange/unit"
)

// Tree is an arena of widgets. Widgets are added to the tree and then
// attached to each other by their handles. Every frame the host calls
// Measure, then Arrange, then delivers events with HandleEvent.
//
// The zero Tree is empty and uses a Metric of one pixel per Dp.
type Tree struct {
	Metric unit.Metric

	nodes []node
	root  Handle
	// arranging is set during Arrange.
	arranging bool
	// deferred holds invalidations requested while arranging.
	deferred []Handle
	// warns holds the warnings of the last Arrange.
	warns []Diagnostic
}

// Handle identifies a widget in a Tree. The zero Handle refers to no
// widget.
type Handle uint32

// Widget is the configuration of a tree node. Create it with one of
// EqualHeightRow, EqualWidthColumn, NewGrid, CellWidget or Generic.
type Widget struct {
	kind       Kind
	equal      layout.Equal
	grid       layout.Grid
	cell       *Cell
	capability Capability
}

// Capability measures and arranges a widget of KindGeneric.
type Capability interface {
	// Measure returns the hint of the widget given its children's
	// hints.
	Measure(space layout.Space, children []layout.Hint) layout.Hint
	// Arrange returns the rectangles of the children inside bounds, one
	// per child.
	Arrange(bounds f32.Rectangle, children []layout.Hint) []f32.Rectangle
}

// Placement is the position of a widget after arrangement.
type Placement struct {
	Handle Handle
	Kind   Kind
	Rect   f32.Rectangle
}

// Diagnostic is a layout warning and the widget it occurred in.
type Diagnostic struct {
	Handle Handle
	layout.Warning
}

type node struct {
	Widget
	parent   Handle
	children []Handle
	// areas are the grid areas of children, for grids.
	areas []layout.Area

	// Measurement cache, valid while measured is set and the space is
	// unchanged.
	measured bool
	space    layout.Space
	hint     layout.Hint
	kids     []layout.Hint
	warns    []layout.Warning

	bounds f32.Rectangle
}

// EqualHeightRow returns a row whose children share one height.
func EqualHeightRow(e layout.Equal) Widget {
	e.Axis = layout.Horizontal
	return Widget{kind: KindEqualHeightRow, equal: e}
}

// EqualWidthColumn returns a column whose children share one width.
func EqualWidthColumn(e layout.Equal) Widget {
	e.Axis = layout.Vertical
	return Widget{kind: KindEqualWidthColumn, equal: e}
}

// NewGrid returns a grid widget. It fails with a *layout.ConfigError
// if the grid dimensions are invalid.
func NewGrid(g layout.Grid) (Widget, error) {
	if err := g.Validate(nil); err != nil {
		return Widget{}, err
	}
	return Widget{kind: KindGrid, grid: g}, nil
}

// CellWidget returns a widget for c. The cell state is shared with the
// caller.
func CellWidget(c *Cell) Widget {
	if c == nil {
		panic("widget: nil Cell")
	}
	return Widget{kind: KindCell, cell: c}
}

// Generic returns a widget measured and arranged by c.
func Generic(c Capability) Widget {
	if c == nil {
		panic("widget: nil Capability")
	}
	return Widget{kind: KindGeneric, capability: c}
}

// Kind returns the kind of w.
func (w Widget) Kind() Kind {
	return w.kind
}

// Add adds a detached widget to the tree.
func (t *Tree) Add(w Widget) Handle {
	t.nodes = append(t.nodes, node{Widget: w})
	return Handle(len(t.nodes))
}

// Append attaches child as the last child of parent. Grids take their
// children through Put, and cells hold at most one child.
func (t *Tree) Append(parent, child Handle) error {
	p := t.node(parent)
	switch p.kind {
	case KindGrid:
		return fmt.Errorf("widget: append to grid %d: %w", parent, errGridAppend)
	case KindCell:
		if len(p.children) > 0 {
			return fmt.Errorf("widget: append to cell %d: %w", parent, errCellFull)
		}
	}
	if err := t.attachable(parent, child); err != nil {
		return err
	}
	t.attach(parent, child)
	return nil
}

// Put attaches child to the grid in area a. The area is validated
// against the grid and the areas of the other children.
func (t *Tree) Put(grid, child Handle, a layout.Area) error {
	g := t.node(grid)
	if g.kind != KindGrid {
		return fmt.Errorf("widget: put into %v %d: %w", g.kind, grid, errNotGrid)
	}
	if err := t.attachable(grid, child); err != nil {
		return err
	}
	areas := append(slices.Clone(g.areas), a)
	if err := g.grid.Validate(areas); err != nil {
		return fmt.Errorf("widget: put into grid %d: %w", grid, err)
	}
	g.areas = areas
	t.attach(grid, child)
	return nil
}

// Detach removes h from its parent. Detaching a root or detached
// widget does nothing.
func (t *Tree) Detach(h Handle) {
	n := t.node(h)
	if n.parent == 0 {
		return
	}
	p := t.node(n.parent)
	i := slices.Index(p.children, h)
	p.children = slices.Delete(p.children, i, i+1)
	if p.kind == KindGrid {
		p.areas = slices.Delete(p.areas, i, i+1)
	}
	t.Invalidate(n.parent)
	n.parent = 0
}

func (t *Tree) attachable(parent, child Handle) error {
	c := t.node(child)
	switch {
	case c.parent != 0:
		return fmt.Errorf("widget: attach %d: %w", child, errAttached)
	case child == t.root:
		return fmt.Errorf("widget: attach root %d: %w", child, errAttached)
	}
	for h := parent; h != 0; h = t.node(h).parent {
		if h == child {
			return fmt.Errorf("widget: attach %d below itself: %w", child, errCycle)
		}
	}
	return nil
}

func (t *Tree) attach(parent, child Handle) {
	p := t.node(parent)
	p.children = append(p.children, child)
	t.node(child).parent = parent
	t.Invalidate(parent)
}

// SetRoot sets the widget laid out by Measure and Arrange.
func (t *Tree) SetRoot(h Handle) {
	if t.node(h).parent != 0 {
		panic(fmt.Sprintf("widget: root %d has a parent", h))
	}
	t.root = h
}

// Root returns the root widget.
func (t *Tree) Root() Handle {
	return t.root
}

// Children returns the children of h in order.
func (t *Tree) Children(h Handle) []Handle {
	return slices.Clone(t.node(h).children)
}

// Parent returns the parent of h, or zero.
func (t *Tree) Parent(h Handle) Handle {
	return t.node(h).parent
}

// Kind returns the kind of h.
func (t *Tree) Kind(h Handle) Kind {
	return t.node(h).kind
}

// Cell returns the cell state of h, or nil if h is not a cell.
func (t *Tree) Cell(h Handle) *Cell {
	return t.node(h).cell
}

// Hint returns the last measured hint of h.
func (t *Tree) Hint(h Handle) layout.Hint {
	return t.node(h).hint
}

// Bounds returns the rectangle of h from the last Arrange.
func (t *Tree) Bounds(h Handle) f32.Rectangle {
	return t.node(h).bounds
}

// Invalidate discards the measurement of h and its ancestors. While an
// arrangement is in progress the invalidation is deferred until the
// next Measure.
func (t *Tree) Invalidate(h Handle) {
	t.node(h)
	if t.arranging {
		t.deferred = append(t.deferred, h)
		return
	}
	for ; h != 0; h = t.node(h).parent {
		t.node(h).measured = false
	}
}

// Measure computes the hint of the root in space. Unchanged subtrees
// reuse their previous measurement.
func (t *Tree) Measure(space layout.Space) layout.Hint {
	space.Check()
	if t.arranging {
		panic("widget: Measure during Arrange")
	}
	for _, h := range t.deferred {
		t.Invalidate(h)
	}
	t.deferred = t.deferred[:0]
	if t.root == 0 {
		return layout.Hint{}
	}
	return t.measure(t.root, space)
}

func (t *Tree) measure(h Handle, space layout.Space) layout.Hint {
	n := t.node(h)
	if n.measured && n.space == space {
		return n.hint
	}
	cs := t.childSpace(n, space)
	kids := make([]layout.Hint, len(n.children))
	for i, c := range n.children {
		kids[i] = t.measure(c, cs)
	}
	hint, warns := dispatch[n.kind].measure(t, n, space, kids).Normalize()
	n.hint = hint
	n.kids = kids
	n.warns = warns
	n.space = space
	n.measured = true
	return hint
}

// childSpace returns the space offered to the children of n.
func (t *Tree) childSpace(n *node, space layout.Space) layout.Space {
	switch n.kind {
	case KindEqualHeightRow, KindEqualWidthColumn:
		return n.equal.Inset.Shrink(space)
	case KindGrid:
		return n.grid.Inset.Shrink(space)
	case KindCell:
		return n.cell.inset(t.Metric).Shrink(space)
	}
	return space
}

// Arrange places the root in bounds and every widget below it, and
// returns the placements in depth first order. The root is measured
// first if needed.
func (t *Tree) Arrange(bounds f32.Rectangle) []Placement {
	if t.arranging {
		panic("widget: recursive Arrange")
	}
	t.warns = t.warns[:0]
	if t.root == 0 {
		return nil
	}
	if !t.node(t.root).measured {
		t.Measure(layout.SpaceOf(bounds.Size()))
	}
	t.arranging = true
	defer func() { t.arranging = false }()
	var out []Placement
	t.arrange(t.root, bounds, &out)
	return out
}

func (t *Tree) arrange(h Handle, bounds f32.Rectangle, out *[]Placement) {
	n := t.node(h)
	n.bounds = bounds
	*out = append(*out, Placement{Handle: h, Kind: n.kind, Rect: bounds})
	t.warn(h, n.warns)
	if len(n.children) == 0 {
		return
	}
	var rects []f32.Rectangle
	// Children attached since the last measurement wait for the next
	// frame.
	if len(n.kids) == len(n.children) {
		rects = dispatch[n.kind].arrange(t, h, n, bounds)
	}
	for i, c := range n.children {
		r := f32.Rectangle{Min: bounds.Min, Max: bounds.Min}
		if i < len(rects) {
			r = rects[i]
		}
		t.arrange(c, r, out)
	}
}

// warn records layout warnings of h.
func (t *Tree) warn(h Handle, warns []layout.Warning) {
	for _, w := range warns {
		t.warns = append(t.warns, Diagnostic{Handle: h, Warning: w})
	}
}

// Warnings returns the measurement and arrangement warnings of the last
// Arrange.
func (t *Tree) Warnings() []Diagnostic {
	return slices.Clone(t.warns)
}

// HandleEvent delivers an event to h and returns the resulting
// signals. Only cells react to events. A content change invalidates the
// measurement of h and its ancestors.
func (t *Tree) HandleEvent(h Handle, e event.Event) []Signal {
	n := t.node(h)
	handle := dispatch[n.kind].event
	if handle == nil {
		return nil
	}
	sigs := handle(t, n, e)
	if _, ok := e.(content.ChangeEvent); ok {
		t.Invalidate(h)
	}
	return sigs
}

// HandleEvents delivers a batch of events to h in order and returns
// all resulting signals.
func (t *Tree) HandleEvents(h Handle, events []event.Event) []Signal {
	var sigs []Signal
	for _, e := range events {
		sigs = append(sigs, t.HandleEvent(h, e)...)
	}
	return sigs
}

func (t *Tree) node(h Handle) *node {
	if h == 0 || int(h) > len(t.nodes) {
		panic(fmt.Sprintf("widget: invalid handle %d", h))
	}
	return &t.nodes[h-1]
}
