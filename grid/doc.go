// Package grid provides a dense, row-major two-dimensional container backed by
// one flat slice, plus a wrapping view for negative and out-of-range indices.
//
// What is inside?
//
//	Grid[T]         — flat buffer + width; rows are derived (len(data) / width)
//	WrappingView[T] — non-owning adapter resolving (r, c) modulo the grid shape
//	YAML codec      — Grid[T] implements yaml.Marshaler / yaml.Unmarshaler
//
// Layout:
//
//	width = 3
//	data  = [a b c d e f]   ⇒   [a, b, c]
//	                            [d, e, f]
//
// Cell (r, c) lives at data[r*width + c]. Row(i) returns the live sub-slice
// data[i*width : (i+1)*width], so writes through it land in the grid.
//
// Contracts:
//
//   - Mismatched row/column lengths, out-of-range indices and wrapping over a
//     zero-sized dimension are programmer errors and panic with the Panic*
//     messages from errors.go. Validate user input before calling.
//   - Any structural mutation (Push*, Insert*, Append*) may reallocate the
//     buffer; row slices and element pointers taken earlier become stale.
//   - A Grid is single-writer. Guard it externally when shared across goroutines.
//
// Complexity:
//
//	Shape queries O(1); PushRow amortized O(cols); InsertRow O(rows*cols);
//	PushCol / InsertCol / AppendColOfDefault O(rows*cols) since every row shifts.
package grid
