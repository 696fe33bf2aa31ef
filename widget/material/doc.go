// SPDX-License-Identifier: Unlicense OR MIT

// Package material implements a Theme of cell palettes for tables of
// labels and values.
//
// To style a cell, select a Styling and apply the theme:
//
//	th := material.NewTheme()
//	cell := th.Apply(widget.NewCell(), material.Styling{Kind: material.Value, Changed: dirty})
package material
