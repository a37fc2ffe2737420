// SPDX-License-Identifier: MIT

// Package grid - WrappingView: modular (negative / overflowing) addressing.
//
// Purpose:
//   - Translate any signed (row, col) into the grid's valid range so that
//     (-1, -1) is the last cell and (RowCount(), 0) is the first one again.
//   - Hold the grid by pointer only: the view has no state of its own and
//     always reflects the grid's current shape.
//
// Contract:
//   - The view does not own the grid. Mutations through either side are
//     visible through the other; the single-writer rule of Grid applies to both.

package grid

// WrappingView is a non-owning adapter over a Grid that resolves signed,
// out-of-range indices modulo the grid shape.
type WrappingView[T any] struct {
	g *Grid[T] // viewed grid, never nil
}

// NewWrappingView wraps g. Panics with PanicNilGrid when g is nil.
func NewWrappingView[T any](g *Grid[T]) *WrappingView[T] {
	if g == nil {
		panic(PanicNilGrid)
	}

	return &WrappingView[T]{g: g}
}

// NewWrapping builds a grid with FromFlat(width, src) and wraps it.
func NewWrapping[T any](width int, src []T) *WrappingView[T] {
	return NewWrappingView(FromFlat(width, src))
}

// Grid returns the underlying grid for direct (non-wrapping) access.
func (w *WrappingView[T]) Grid() *Grid[T] { return w.g }

// RowCount returns the grid's current row count.
func (w *WrappingView[T]) RowCount() int { return w.g.RowCount() }

// ColCount returns the grid's current column count.
func (w *WrappingView[T]) ColCount() int { return w.g.ColCount() }

// ResolveRow maps a signed row index into [0, RowCount()).
// ResolveRow(r) == ResolveRow(r + k*RowCount()) for every integer k.
//
// Panics with PanicZeroDim if the grid has no rows.
// Complexity: O(1).
func (w *WrappingView[T]) ResolveRow(row int) int {
	return wrapIndex(row, w.g.RowCount())
}

// ResolveCol maps a signed column index into [0, ColCount()).
//
// Panics with PanicZeroDim if the grid has no columns.
// Complexity: O(1).
func (w *WrappingView[T]) ResolveCol(col int) int {
	return wrapIndex(col, w.g.ColCount())
}

// At returns the element at the wrapped coordinates.
func (w *WrappingView[T]) At(row, col int) T {
	return *w.Ptr(row, col)
}

// Set assigns v at the wrapped coordinates.
func (w *WrappingView[T]) Set(row, col int, v T) {
	*w.Ptr(row, col) = v
}

// Ptr returns a pointer to the live grid element at the wrapped coordinates.
// No copy is made: writes through the pointer are visible via the grid.
func (w *WrappingView[T]) Ptr(row, col int) *T {
	r := w.ResolveRow(row)
	c := w.ResolveCol(col)

	return &w.g.Row(r)[c]
}

// wrapIndex returns v modulo n in [0, n). Go's % keeps the dividend's sign,
// hence the second correction step for negative v.
func wrapIndex(v, n int) int {
	if n <= 0 {
		panic(PanicZeroDim)
	}
	v %= n
	if v < 0 {
		v += n
	}

	return v
}
