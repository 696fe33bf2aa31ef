// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

Gestures accept low level pointer Events, one at a time, and detect
higher level actions such as clicks and drags. A gesture never decides
which events it receives; the host delivers the events for the area it
covers, together with whether the pointer is over it.
*/
package gesture

import (
	"gioui.org/x/arrange/f32"
	"gioui.org/x/arrange/io/pointer"
)

// Click detects click gestures in the form
// of ClickEvents.
type Click struct {
	// state tracks the gesture state.
	state ClickState
	// pid is the pointer that pressed.
	pid pointer.ID
}

// ClickState is the interaction state of a Click.
type ClickState uint8

// ClickEvent represent a click action, either a
// KindPress for the beginning of a click, a KindClick
// for a completed click or a KindCancel for a press
// that ended without one.
type ClickEvent struct {
	Kind     ClickKind
	Position f32.Point
	Source   pointer.Source
}

type ClickKind uint8

// Drag detects drags of a pointer that started inside a
// handle area, along one axis.
type Drag struct {
	Axis Axis

	dragging bool
	pid      pointer.ID
	origin   f32.Point
	last     float32
}

// DragEvent reports the progress of a drag. Delta is the distance
// along the drag axis from where the drag started.
type DragEvent struct {
	Kind     DragKind
	Delta    float32
	Position f32.Point
}

type DragKind uint8

type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

const (
	// StateIdle is the default click state.
	StateIdle ClickState = iota
	// StateHovered is reported when a pointer
	// is hovering over the handler.
	StateHovered
	// StatePressed is then a pointer is pressed.
	StatePressed
)

const (
	// KindPress is reported for the first pointer
	// press.
	KindPress ClickKind = iota
	// KindClick is reported when a click action
	// is complete.
	KindClick
	// KindCancel is reported when a press ends
	// without a click.
	KindCancel
)

const (
	// KindStart is reported when a drag starts.
	KindStart DragKind = iota
	// KindMove is reported for every pointer movement
	// during a drag.
	KindMove
	// KindEnd is reported when the drag ends.
	KindEnd
)

// State reports the click state.
func (c *Click) State() ClickState {
	return c.state
}

// Hovered reports whether a pointer is over the handler.
func (c *Click) Hovered() bool {
	return c.state != StateIdle
}

// Pressed reports whether a pointer is pressing.
func (c *Click) Pressed() bool {
	return c.state == StatePressed
}

// Update processes a pointer event. hit reports whether the
// event position is over the handler.
func (c *Click) Update(e pointer.Event, hit bool) (ClickEvent, bool) {
	switch e.Kind {
	case pointer.Enter:
		if c.state == StateIdle {
			c.state = StateHovered
		}
	case pointer.Leave:
		// Leaving releases the pointer grab.
		wasPressed := c.state == StatePressed
		c.state = StateIdle
		if wasPressed {
			return c.event(KindCancel, e), true
		}
	case pointer.Move, pointer.Drag:
		switch {
		case c.state == StatePressed && !hit:
			c.state = StateIdle
			return c.event(KindCancel, e), true
		case c.state == StateIdle && hit:
			c.state = StateHovered
		case c.state == StateHovered && !hit:
			c.state = StateIdle
		}
	case pointer.Press:
		if c.state == StatePressed || !hit {
			break
		}
		if e.Source == pointer.Mouse && !e.Buttons.Contain(pointer.ButtonPrimary) {
			break
		}
		c.state = StatePressed
		c.pid = e.PointerID
		return c.event(KindPress, e), true
	case pointer.Release:
		if c.state != StatePressed || c.pid != e.PointerID {
			break
		}
		if hit {
			c.state = StateHovered
			return c.event(KindClick, e), true
		}
		c.state = StateIdle
		return c.event(KindCancel, e), true
	case pointer.Cancel:
		wasPressed := c.state == StatePressed
		c.state = StateIdle
		if wasPressed {
			return c.event(KindCancel, e), true
		}
	}
	return ClickEvent{}, false
}

func (c *Click) event(k ClickKind, e pointer.Event) ClickEvent {
	return ClickEvent{Kind: k, Position: e.Position, Source: e.Source}
}

// Dragging reports whether a drag is in progress.
func (d *Drag) Dragging() bool {
	return d.dragging
}

// Update processes a pointer event. inHandle reports whether the
// event position is over the area where drags may start.
func (d *Drag) Update(e pointer.Event, inHandle bool) (DragEvent, bool) {
	switch e.Kind {
	case pointer.Press:
		if d.dragging || !inHandle {
			break
		}
		if e.Source == pointer.Mouse && !e.Buttons.Contain(pointer.ButtonPrimary) {
			break
		}
		d.dragging = true
		d.pid = e.PointerID
		d.origin = e.Position
		d.last = 0
		return DragEvent{Kind: KindStart, Position: e.Position}, true
	case pointer.Move, pointer.Drag:
		if !d.dragging || d.pid != e.PointerID {
			break
		}
		d.last = d.delta(e.Position)
		return DragEvent{Kind: KindMove, Delta: d.last, Position: e.Position}, true
	case pointer.Release:
		if !d.dragging || d.pid != e.PointerID {
			break
		}
		d.dragging = false
		d.last = d.delta(e.Position)
		return DragEvent{Kind: KindEnd, Delta: d.last, Position: e.Position}, true
	case pointer.Cancel:
		if !d.dragging {
			break
		}
		// Cancel carries no position; end where the last move left off.
		d.dragging = false
		return DragEvent{Kind: KindEnd, Delta: d.last, Position: d.origin}, true
	}
	return DragEvent{}, false
}

func (d *Drag) delta(p f32.Point) float32 {
	v := p.Sub(d.origin)
	if d.Axis == Horizontal {
		return v.X
	}
	return v.Y
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("invalid Axis")
	}
}

func (ck ClickKind) String() string {
	switch ck {
	case KindPress:
		return "KindPress"
	case KindClick:
		return "KindClick"
	case KindCancel:
		return "KindCancel"
	default:
		panic("invalid ClickKind")
	}
}

func (cs ClickState) String() string {
	switch cs {
	case StateIdle:
		return "StateIdle"
	case StateHovered:
		return "StateHovered"
	case StatePressed:
		return "StatePressed"
	default:
		panic("invalid ClickState")
	}
}

func (dk DragKind) String() string {
	switch dk {
	case KindStart:
		return "KindStart"
	case KindMove:
		return "KindMove"
	case KindEnd:
		return "KindEnd"
	default:
		panic("invalid DragKind")
	}
}
