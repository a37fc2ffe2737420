package grid_test

import (
	"testing"

	"github.com/katalvlaran/vec2d/grid"
	"github.com/stretchr/testify/require"
)

// TestWrappingLastElement resolves (-1,-1) on a 5×2 grid to (4,1).
func TestWrappingLastElement(t *testing.T) {
	w := grid.NewWrapping(2, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	require.Equal(t, 5, w.RowCount())
	require.Equal(t, 2, w.ColCount())
	require.Equal(t, 4, w.ResolveRow(-1))
	require.Equal(t, 1, w.ResolveCol(-1))
	require.Equal(t, 10, w.At(-1, -1))
}

// TestWrappingPeriodicity checks resolve(r) == resolve(r + k*n) and the range.
func TestWrappingPeriodicity(t *testing.T) {
	w := grid.NewWrappingView(grid.NewDefault[int](5, 3))
	rows, cols := w.RowCount(), w.ColCount()
	for v := -40; v <= 40; v++ {
		r := w.ResolveRow(v)
		c := w.ResolveCol(v)
		require.GreaterOrEqual(t, r, 0)
		require.Less(t, r, rows)
		require.GreaterOrEqual(t, c, 0)
		require.Less(t, c, cols)
		for _, k := range []int{-7, -1, 1, 3, 1000} {
			require.Equal(t, r, w.ResolveRow(v+k*rows), "row %d k=%d", v, k)
			require.Equal(t, c, w.ResolveCol(v+k*cols), "col %d k=%d", v, k)
		}
	}
}

// TestWrappingExactMultiples covers multiples of the size and far inputs.
func TestWrappingExactMultiples(t *testing.T) {
	w := grid.NewWrapping(4, make([]int, 12)) // 3×4
	cases := []struct{ in, row, col int }{
		{0, 0, 0},
		{3, 0, 3},
		{4, 1, 0},
		{-3, 0, 1},
		{-4, 2, 0},
		{12, 0, 0},
		{-12, 0, 0},
		{1_000_000_001, 2, 1},
		{-1_000_000_001, 1, 3},
	}
	for _, tc := range cases {
		require.Equal(t, tc.row, w.ResolveRow(tc.in), "ResolveRow(%d)", tc.in)
		require.Equal(t, tc.col, w.ResolveCol(tc.in), "ResolveCol(%d)", tc.in)
	}
}

// TestWrappingSharesStorage verifies writes are visible on both sides.
func TestWrappingSharesStorage(t *testing.T) {
	g := grid.FromFlat(3, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	w := grid.NewWrappingView(g)

	g.Row(3)[2] = 99
	require.Equal(t, 99, w.At(3, 2))
	require.Equal(t, 99, w.At(-1, -1))

	*w.Ptr(3, 2) = 42
	require.Equal(t, 42, g.Row(3)[2])

	w.Set(-4, 4, 7) // (0, 1)
	require.Equal(t, 7, g.At(0, 1))
	require.Same(t, g, w.Grid())
}

// TestWrappingTracksMutations checks the view follows shape changes.
func TestWrappingTracksMutations(t *testing.T) {
	g := grid.FromFlat(2, []int{1, 2, 3, 4})
	w := grid.NewWrappingView(g)
	require.Equal(t, 4, w.At(-1, -1))

	g.PushRow([]int{5, 6})
	require.Equal(t, 3, w.RowCount())
	require.Equal(t, 6, w.At(-1, -1))

	g.PushCol([]int{7, 8, 9})
	require.Equal(t, 3, w.ColCount())
	require.Equal(t, 9, w.At(-1, -1))
	require.Equal(t, 7, w.At(3, 2))
}

// TestWrappingZeroDimPanics ensures resolving over an empty dimension panics.
func TestWrappingZeroDimPanics(t *testing.T) {
	empty := grid.NewWrappingView(grid.New[int]())
	require.PanicsWithValue(t, grid.PanicZeroDim, func() { empty.ResolveRow(0) })
	require.PanicsWithValue(t, grid.PanicZeroDim, func() { empty.ResolveCol(-1) })
	require.PanicsWithValue(t, grid.PanicZeroDim, func() { empty.At(0, 0) })

	noRows := grid.NewWrappingView(grid.NewDefault[int](0, 3))
	require.Equal(t, 2, noRows.ResolveCol(-1))
	require.PanicsWithValue(t, grid.PanicZeroDim, func() { noRows.At(0, 0) })
}

// TestWrappingNilGridPanics rejects a nil grid at construction.
func TestWrappingNilGridPanics(t *testing.T) {
	require.PanicsWithValue(t, grid.PanicNilGrid, func() { grid.NewWrappingView[int](nil) })
}
