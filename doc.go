// Package vec2d is a small toolbox for dense two-dimensional data stored in a
// single flat, row-major buffer.
//
// What is inside?
//
//	grid/        — Grid[T]: flat buffer + width, row slices, row/column push & insert,
//	               WrappingView[T] for negative / overflowing (row, col) addressing,
//	               YAML encoding of grids
//	cmd/grid2d/  — command-line tool to create, reshape and query YAML grid files
//
// Quick ASCII example:
//
//	FromFlat(3, [1 2 3 4 5 6])   ⇒   [1, 2, 3]
//	                                 [4, 5, 6]
//
//	WrappingView.At(-1, -1)      ⇒   6
//
// Not a matrix-math library: there is no arithmetic over elements, only shape
// and storage.
//
//	go get github.com/katalvlaran/vec2d/grid
package vec2d
