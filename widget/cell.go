// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"gioui.org/x/arrange/f32"
	"gioui.org/x/arrange/gesture"
	"gioui.org/x/arrange/io/content"
	"gioui.org/x/arrange/io/event"
	"gioui.org/x/arrange/io/pointer"
	"gioui.org/x/arrange/layout"
	"gioui.org/x/arrange/unit"
)

// Cell is a bordered container of at most one child. It tracks the
// pointer over it, reports clicks and drags of its resize handles, and
// flashes its border when its content changes.
//
// The zero value is an unclickable, fixed size cell without padding or
// border drawn with the zero Palette. Use NewCell for the usual defaults.
type Cell struct {
	// Clickable enables click signals.
	Clickable bool
	// Resizable selects the edges that can be dragged.
	Resizable Resize
	// HandleSize is half the width of the strip around a resizable
	// edge where drags start. Zero means DefaultHandleSize.
	HandleSize unit.Dp
	// Padding separates the border from the content.
	Padding unit.Dp
	// BorderWidth is the width of the painted border, drawn inside the
	// padding.
	BorderWidth unit.Dp
	// Alignment positions content smaller than the cell.
	Alignment layout.Direction
	Palette   Palette

	click   gesture.Click
	drags   [2]gesture.Drag
	handles [2]bool
	flash   bool
}

// Resize is a set of resizable cell edges.
type Resize uint8

// Signal is an outcome of an event delivered to a Cell.
type Signal struct {
	Kind SignalKind
	// Axis is the axis of a resize.
	Axis layout.Axis
	// Delta is the resize distance from where the drag started.
	Delta float32
	// Position is the pointer position of a click.
	Position f32.Point
}

type SignalKind uint8

const (
	// ResizeHorizontal enables dragging the right edge.
	ResizeHorizontal Resize = 1 << iota
	// ResizeVertical enables dragging the bottom edge.
	ResizeVertical
)

const (
	// SignalClick is a press and release over a clickable cell.
	SignalClick SignalKind = iota
	// SignalResize reports a resize drag in progress.
	SignalResize
	// SignalResizeEnd reports the final distance of a resize drag.
	SignalResizeEnd
)

const (
	DefaultHandleSize  = unit.Dp(5)
	DefaultPadding     = unit.Dp(2)
	DefaultBorderWidth = unit.Dp(1)
)

// NewCell returns a cell with the default handle size, padding, border
// and palette.
func NewCell() *Cell {
	return &Cell{
		HandleSize:  DefaultHandleSize,
		Padding:     DefaultPadding,
		BorderWidth: DefaultBorderWidth,
		Palette:     DefaultPalette,
	}
}

// Update processes an event for a cell occupying bounds, and returns
// the resulting signals in order. Pointer events drive the click and
// resize state; a content.ChangeEvent arms the border flash.
func (c *Cell) Update(m unit.Metric, bounds f32.Rectangle, e event.Event) []Signal {
	switch e := e.(type) {
	case content.ChangeEvent:
		c.flash = true
		return nil
	case pointer.Event:
		return c.pointer(m, bounds, e)
	}
	return nil
}

func (c *Cell) pointer(m unit.Metric, bounds f32.Rectangle, e pointer.Event) []Signal {
	var sigs []Signal
	dragStarted := false
	handles := c.handleRects(m, bounds)
	for _, axis := range [...]layout.Axis{layout.Horizontal, layout.Vertical} {
		if !c.Resizable.Contain(axis) {
			c.handles[axis] = false
			continue
		}
		d := &c.drags[axis]
		d.Axis = gesture.Axis(axis)
		in := e.Position.In(handles[axis])
		switch e.Kind {
		case pointer.Leave, pointer.Cancel:
			c.handles[axis] = false
		case pointer.Move, pointer.Drag, pointer.Enter, pointer.Press:
			c.handles[axis] = in
		}
		de, ok := d.Update(e, in)
		if !ok {
			continue
		}
		switch de.Kind {
		case gesture.KindStart:
			dragStarted = true
		case gesture.KindMove:
			sigs = append(sigs, Signal{Kind: SignalResize, Axis: axis, Delta: de.Delta})
		case gesture.KindEnd:
			sigs = append(sigs, Signal{Kind: SignalResizeEnd, Axis: axis, Delta: de.Delta})
		}
	}
	// A press that starts a resize doesn't press the cell.
	hit := e.Position.In(bounds) && !dragStarted
	if ce, ok := c.click.Update(e, hit); ok && ce.Kind == gesture.KindClick && c.Clickable {
		sigs = append(sigs, Signal{Kind: SignalClick, Position: ce.Position})
	}
	return sigs
}

// handleRects returns the strips around the right and bottom edges of
// bounds.
func (c *Cell) handleRects(m unit.Metric, bounds f32.Rectangle) [2]f32.Rectangle {
	hs := c.HandleSize
	if hs == 0 {
		hs = DefaultHandleSize
	}
	w := m.Dp(hs)
	return [2]f32.Rectangle{
		layout.Horizontal: {
			Min: f32.Pt(bounds.Max.X-w, bounds.Min.Y),
			Max: f32.Pt(bounds.Max.X+w, bounds.Max.Y),
		},
		layout.Vertical: {
			Min: f32.Pt(bounds.Min.X, bounds.Max.Y-w),
			Max: f32.Pt(bounds.Max.X, bounds.Max.Y+w),
		},
	}
}

// State returns the interaction state of the cell.
func (c *Cell) State() gesture.ClickState {
	return c.click.State()
}

// Flashing reports whether a content change is waiting to be shown.
func (c *Cell) Flashing() bool {
	return c.flash
}

// Resizing reports whether the edge along axis is being dragged.
func (c *Cell) Resizing(axis layout.Axis) bool {
	return c.drags[axis].Dragging()
}

// BorderColor returns the border color for the current state. A
// pending content change is shown once: the call that returns the
// changed color clears it.
func (c *Cell) BorderColor() color.NRGBA {
	col := c.Palette.Border(c.click.State(), c.flash)
	c.flash = false
	return col
}

// Background returns the fill color for the current state.
func (c *Cell) Background() color.NRGBA {
	return c.Palette.Fill(c.click.State())
}

// Cursor returns the pointer cursor to show over the cell.
func (c *Cell) Cursor() pointer.Cursor {
	switch {
	case c.drags[layout.Horizontal].Dragging(), c.handles[layout.Horizontal]:
		return pointer.CursorColResize
	case c.drags[layout.Vertical].Dragging(), c.handles[layout.Vertical]:
		return pointer.CursorRowResize
	case c.Clickable && c.click.Hovered():
		return pointer.CursorPointer
	}
	return pointer.CursorDefault
}

// inset returns the padding in pixels.
func (c *Cell) inset(m unit.Metric) layout.Inset {
	return layout.UniformInset(m.Dp(c.Padding))
}

// measure returns the hint of the cell around its child, or around
// nothing if child is nil. A cell fills the space it is given.
func (c *Cell) measure(m unit.Metric, child *layout.Hint) layout.Hint {
	var h layout.Hint
	if child != nil {
		h = *child
	}
	h = c.inset(m).Expand(h)
	h.Width.Max = layout.Unbounded
	h.Height.Max = layout.Unbounded
	return h
}

// arrange positions the child inside the padded bounds. The child
// grows to the bounds up to its maximum size.
func (c *Cell) arrange(m unit.Metric, bounds f32.Rectangle, child layout.Hint) f32.Rectangle {
	inner := c.inset(m).Apply(bounds)
	sz := inner.Size()
	sz.X = child.Width.Constrain(sz.X)
	sz.Y = child.Height.Constrain(sz.Y)
	pos := c.Alignment.Position(sz, inner)
	return f32.Rectangle{Min: pos, Max: pos.Add(sz)}
}

// Contain reports whether the edge along axis is resizable.
func (r Resize) Contain(axis layout.Axis) bool {
	if axis == layout.Horizontal {
		return r&ResizeHorizontal != 0
	}
	return r&ResizeVertical != 0
}

func (r Resize) String() string {
	switch r {
	case 0:
		return "None"
	case ResizeHorizontal:
		return "Horizontal"
	case ResizeVertical:
		return "Vertical"
	case ResizeHorizontal | ResizeVertical:
		return "Horizontal|Vertical"
	default:
		panic("invalid Resize")
	}
}

func (k SignalKind) String() string {
	switch k {
	case SignalClick:
		return "Click"
	case SignalResize:
		return "Resize"
	case SignalResizeEnd:
		return "ResizeEnd"
	default:
		panic("invalid SignalKind")
	}
}
