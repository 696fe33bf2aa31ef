// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"

	"gioui.org/x/arrange/layout"
)

func ExampleGrid() {
	g := layout.Grid{Rows: 2, Columns: 2, Spacing: 4}
	areas := []layout.Area{
		layout.Cell(0, 0),
		layout.Cell(0, 1),
		{Row: 1, Column: 0, ColumnSpan: 2},
	}
	if err := g.Validate(areas); err != nil {
		panic(err)
	}
	hints := []layout.Hint{
		{Width: layout.Shrink(0, 30), Height: layout.Rigid(10)},
		{Width: layout.Fill(0, 50), Height: layout.Rigid(10)},
		{Width: layout.Fill(0, 0), Height: layout.Rigid(20)},
	}
	l := g.Layout(areas, hints, layout.Space{Width: 100, Height: 100})
	for _, r := range l.Rects {
		fmt.Println(r)
	}

	// Output:
	// (0,0)-(30,10)
	// (34,0)-(100,10)
	// (0,14)-(100,34)
}

func ExampleEqual() {
	row := layout.Equal{Axis: layout.Horizontal, Spacing: 2}
	children := []layout.Hint{
		{Width: layout.Rigid(20), Height: layout.Fill(0, 10)},
		{Width: layout.Rigid(30), Height: layout.Fill(0, 16)},
	}
	l := row.Layout(children, layout.UnboundedSpace())
	for _, r := range l.Rects {
		fmt.Println(r)
	}

	// Output:
	// (0,0)-(20,16)
	// (22,0)-(52,16)
}
