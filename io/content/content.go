// SPDX-License-Identifier: Unlicense OR MIT

// Package content contains the event a host delivers when the output of
// a wrapped widget differs from the previous frame.
package content

// ChangeEvent reports that the rendered content of a widget changed since
// the previous frame.
type ChangeEvent struct{}

func (ChangeEvent) ImplementsEvent() {}
