// SPDX-License-Identifier: MIT
// Package grid: panic messages and sentinel errors.
//
// Two failure classes live here:
//   - Contract violations on the in-memory API (wrong row length, index out of
//     range, modulo by a zero dimension). These PANIC with the stable messages
//     below; callers are expected to validate before calling.
//   - Malformed external input (YAML documents). These are returned as the
//     sentinel errors below and must be matched with errors.Is.

package grid

import "errors"

// Panic messages (no magic strings). Tests compare against these values.
const (
	PanicNegativeShape = "grid: rows and cols must be non-negative"
	PanicFlatWidth     = "grid: FromFlat: width must be > 0"
	PanicFlatLength    = "grid: FromFlat: source length is not a multiple of width"
	PanicRowIndex      = "grid: row index out of range"
	PanicColIndex      = "grid: column index out of range"
	PanicInsertIndex   = "grid: insertion index out of range"
	PanicRowLength     = "grid: row length does not match column count"
	PanicColLength     = "grid: column length does not match row count"
	PanicZeroDim       = "grid: cannot wrap an index over a zero-sized dimension"
	PanicNilGrid       = "grid: nil grid"
)

var (
	// ErrNonRectangular indicates decoded rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrBadWidth indicates a decoded width that is negative or disagrees with the rows.
	ErrBadWidth = errors.New("grid: width does not match rows")
)
