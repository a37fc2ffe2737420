// SPDX-License-Identifier: MIT

// Package grid - structural mutation (rows and columns).
//
// Every operation validates its input before touching the buffer, so a
// panicking call leaves the grid unchanged.
//
// Column operations touch one position per row in the flat buffer. Insertion
// starts at the column index in row 0 and then advances by the NEW width for
// each following row, because every previous insertion has already shifted
// the tail by one. Using the old width would misplace every row after the first.

package grid

import "slices"

// AppendRowOfDefault adds one row of zero values at the bottom.
// On an empty grid the width first becomes 1, yielding a 1×1 grid.
// Complexity: amortized O(cols).
func (g *Grid[T]) AppendRowOfDefault() {
	if g.width == 0 {
		g.width = 1
	}
	g.data = append(g.data, make([]T, g.width)...)
}

// AppendColOfDefault adds one column of zero values on the right edge.
// The row count is unchanged; on a zero-row grid only the width grows.
// Complexity: O(rows*cols).
func (g *Grid[T]) AppendColOfDefault() {
	var zero T
	rows := g.RowCount()
	newWidth := g.width + 1
	idx := g.width // end of row 0
	for r := 0; r < rows; r++ {
		g.data = slices.Insert(g.data, idx, zero)
		idx += newWidth
	}
	g.width = newWidth
}

// PushRow appends row as the new last row. On an empty grid the width
// becomes len(row).
//
// Panics with PanicRowLength if the grid has columns and len(row) != ColCount().
// Complexity: amortized O(cols).
func (g *Grid[T]) PushRow(row []T) {
	if g.width == 0 {
		g.width = len(row)
	} else if len(row) != g.width {
		panic(PanicRowLength)
	}
	g.data = append(g.data, row...)
}

// InsertRow inserts row before the current row index, shifting rows at and
// below index down by one. index == RowCount() appends; on an empty grid
// InsertRow(0, row) behaves exactly like PushRow(row).
//
// Panics with PanicInsertIndex unless 0 <= index <= RowCount(), and with
// PanicRowLength on a length mismatch.
// Complexity: O(rows*cols) for the tail shift.
func (g *Grid[T]) InsertRow(index int, row []T) {
	if index < 0 || index > g.RowCount() {
		panic(PanicInsertIndex)
	}
	if g.width == 0 {
		g.PushRow(row)
		return
	}
	if len(row) != g.width {
		panic(PanicRowLength)
	}
	g.data = slices.Insert(g.data, index*g.width, row...)
}

// PushCol appends col as the new rightmost column.
// See InsertCol for the length contract.
// Complexity: O(rows*cols).
func (g *Grid[T]) PushCol(col []T) {
	g.InsertCol(g.width, col)
}

// InsertCol inserts col before the current column index, shifting columns at
// and right of index by one in every row. On an empty grid the index is
// ignored and col becomes a single column of len(col) rows.
//
// Panics with PanicInsertIndex unless 0 <= index <= ColCount(), and with
// PanicColLength if the grid has columns and len(col) != RowCount().
// Complexity: O(rows*cols).
func (g *Grid[T]) InsertCol(index int, col []T) {
	if g.width == 0 {
		g.width = 1
		g.data = append(g.data, col...)
		return
	}
	if index < 0 || index > g.width {
		panic(PanicInsertIndex)
	}
	if len(col) != g.RowCount() {
		panic(PanicColLength)
	}
	g.width++
	idx := index
	for _, v := range col {
		g.data = slices.Insert(g.data, idx, v)
		idx += g.width // advance by the new width
	}
}
