// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
//
// Events are delivered by the host toolkit, one at a time, to the widget
// it selects. Widgets answer with values instead of invoking callbacks.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}
