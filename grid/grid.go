// SPDX-License-Identifier: MIT

// Package grid - Grid storage (row-major) & accessors.
//
// Purpose:
//   - Keep every cell in one contiguous buffer with the index formula r*width + c.
//   - Derive the row count from len(data) / width so the shape can never drift
//     away from the buffer.
//   - Hand out rows as capped sub-slices: writes reach the grid, appends do not
//     spill into the next row.
//
// Complexity quicksheet:
//   - New: O(1); NewDefault/NewFilled/FromFlat/FromFunc: O(r*c).
//   - Count/RowCount/ColCount/Shape/Row/At/Set: O(1); Contains: O(r*c).

package grid

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Grid is a two-dimensional array stored row-major in a flat slice.
//   - width is the column count; 0 marks the empty grid.
//   - data holds width*rows elements; rows are never partially present.
type Grid[T any] struct {
	data  []T // row-major storage, len(data) % width == 0
	width int // column count
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid[int])(nil)

// New returns an empty grid: no rows, no columns, no elements.
func New[T any]() *Grid[T] {
	return &Grid[T]{}
}

// NewDefault creates a rows×cols grid with every cell set to the zero value of T.
// The width is recorded even when rows == 0, producing a zero-row grid of
// width cols.
//
// Panics with PanicNegativeShape if rows or cols is negative.
// Complexity: O(rows*cols).
func NewDefault[T any](rows, cols int) *Grid[T] {
	validateShape(rows, cols)

	// make() zero-fills deterministically.
	return &Grid[T]{data: make([]T, rows*cols), width: cols}
}

// NewFilled creates a rows×cols grid with every cell set to a copy of v.
//
// Panics with PanicNegativeShape if rows or cols is negative.
// Complexity: O(rows*cols).
func NewFilled[T any](rows, cols int, v T) *Grid[T] {
	g := NewDefault[T](rows, cols)
	for i := range g.data {
		g.data[i] = v
	}

	return g
}

// FromFlat builds a grid of the given width from src, filling left to right,
// top to bottom. src is copied; the grid never aliases the caller's slice.
//
// Panics with PanicFlatWidth if width <= 0 and with PanicFlatLength if
// len(src) is not a multiple of width.
// Complexity: O(len(src)).
func FromFlat[T any](width int, src []T) *Grid[T] {
	if width <= 0 {
		panic(PanicFlatWidth)
	}
	if len(src)%width != 0 {
		panic(PanicFlatLength)
	}

	return &Grid[T]{data: slices.Clone(src), width: width}
}

// FromFunc creates a rows×cols grid whose cell (r, c) holds fn(r, c).
// fn is called exactly once per cell, in row-major order.
//
// Panics with PanicNegativeShape if rows or cols is negative.
// Complexity: O(rows*cols) calls to fn.
func FromFunc[T any](rows, cols int, fn func(row, col int) T) *Grid[T] {
	validateShape(rows, cols)
	size := rows * cols
	data := make([]T, 0, size)
	var row, col int
	for idx := 0; idx < size; idx++ {
		row = idx / cols // linear index → coordinates
		col = idx % cols
		data = append(data, fn(row, col))
	}

	return &Grid[T]{data: data, width: cols}
}

// Count returns the number of elements, RowCount()*ColCount().
func (g *Grid[T]) Count() int { return g.width * g.RowCount() }

// ColCount returns the number of columns (the width).
func (g *Grid[T]) ColCount() int { return g.width }

// RowCount returns the number of rows, derived from the buffer length.
func (g *Grid[T]) RowCount() int {
	if g.width == 0 {
		return 0
	}

	return len(g.data) / g.width
}

// Shape returns (RowCount(), ColCount()).
func (g *Grid[T]) Shape() (rows, cols int) { return g.RowCount(), g.width }

// IsEmpty reports whether the grid has no columns (and therefore no rows).
func (g *Grid[T]) IsEmpty() bool { return g.width == 0 }

// Row returns row i as a sub-slice of the grid buffer. The slice has length
// and capacity ColCount(): element writes are visible in the grid, while an
// append on it reallocates instead of overwriting row i+1.
//
// Panics with PanicRowIndex unless 0 <= i < RowCount().
// Complexity: O(1).
func (g *Grid[T]) Row(i int) []T {
	g.checkRow(i)
	start := i * g.width
	end := start + g.width

	return g.data[start:end:end]
}

// Rows iterates over (index, row) pairs top to bottom. Each row is the live
// slice returned by Row. Mutating the grid shape during iteration is not
// supported.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		n := g.RowCount()
		for i := 0; i < n; i++ {
			if !yield(i, g.Row(i)) {
				return
			}
		}
	}
}

// At returns the element at (row, col).
// Panics with PanicRowIndex / PanicColIndex on out-of-range coordinates.
func (g *Grid[T]) At(row, col int) T {
	return g.data[g.offset(row, col)]
}

// Set assigns v at (row, col).
// Panics with PanicRowIndex / PanicColIndex on out-of-range coordinates.
func (g *Grid[T]) Set(row, col int, v T) {
	g.data[g.offset(row, col)] = v
}

// Ptr returns a pointer to the live element at (row, col). The pointer is
// invalidated by the next structural mutation.
func (g *Grid[T]) Ptr(row, col int) *T {
	return &g.data[g.offset(row, col)]
}

// Data returns a copy of the row-major buffer.
func (g *Grid[T]) Data() []T {
	return slices.Clone(g.data)
}

// Clone returns a deep copy of the grid (elements are copied by assignment).
// Complexity: O(rows*cols).
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{data: slices.Clone(g.data), width: g.width}
}

// ContainsFunc reports whether any element satisfies pred.
// Elements are visited in row-major order; the scan stops at the first hit.
// Complexity: O(rows*cols).
func (g *Grid[T]) ContainsFunc(pred func(T) bool) bool {
	return slices.ContainsFunc(g.data, pred)
}

// Contains reports whether v equals at least one element of g.
// Always false on an empty grid.
// Complexity: O(rows*cols).
func Contains[T comparable](g *Grid[T], v T) bool {
	return slices.Contains(g.data, v)
}

// Equal reports whether a and b have the same shape and the same elements in
// row-major order.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.width != b.width || len(a.data) != len(b.data) {
		return false
	}

	return slices.Equal(a.data, b.data)
}

// String renders one bracketed line per row, e.g. "[1, 2]\n[3, 4]\n".
// A zero-row grid renders as the empty string.
func (g *Grid[T]) String() string {
	var b strings.Builder
	rows := g.RowCount()
	var i, j int
	for i = 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen) // open row
		for j = 0; j < g.width; j++ {
			fmt.Fprint(&b, g.data[i*g.width+j])
			if j+1 < g.width {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// offset bounds-checks (row, col) and returns row*width + col.
func (g *Grid[T]) offset(row, col int) int {
	g.checkRow(row)
	if col < 0 || col >= g.width {
		panic(PanicColIndex)
	}

	return row*g.width + col
}

func (g *Grid[T]) checkRow(i int) {
	if i < 0 || i >= g.RowCount() {
		panic(PanicRowIndex)
	}
}

func validateShape(rows, cols int) {
	if rows < 0 || cols < 0 {
		panic(PanicNegativeShape)
	}
}
