// SPDX-License-Identifier: MIT

// Package grid - YAML encoding.
//
// Document shape:
//
//	width: 3
//	rows: [[1, 2, 3], [4, 5, 6]]
//
// width may be omitted when rows is non-empty; it is required to describe a
// zero-row grid of non-zero width. Decoding never panics: malformed documents
// yield ErrNonRectangular or ErrBadWidth wrapped with the offending position.

package grid

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Compile-time assertions for yaml conformance.
var (
	_ yaml.Marshaler   = (*Grid[int])(nil)
	_ yaml.Unmarshaler = (*Grid[int])(nil)
)

// document is the on-disk form of a Grid.
type document[T any] struct {
	Width int   `yaml:"width"`
	Rows  [][]T `yaml:"rows,flow"`
}

// MarshalYAML encodes the grid as its width plus a list of rows.
func (g *Grid[T]) MarshalYAML() (interface{}, error) {
	rows := make([][]T, 0, g.RowCount())
	for _, row := range g.Rows() {
		rows = append(rows, row)
	}

	return document[T]{Width: g.width, Rows: rows}, nil
}

// UnmarshalYAML replaces g with the grid described by node.
// g is left untouched when an error is returned.
func (g *Grid[T]) UnmarshalYAML(node *yaml.Node) error {
	var doc document[T]
	if err := node.Decode(&doc); err != nil {
		return err
	}
	built, err := fromDocument(doc)
	if err != nil {
		return err
	}
	*g = *built

	return nil
}

// fromDocument validates doc and assembles a grid row by row.
func fromDocument[T any](doc document[T]) (*Grid[T], error) {
	if doc.Width < 0 {
		return nil, fmt.Errorf("width %d: %w", doc.Width, ErrBadWidth)
	}
	if len(doc.Rows) == 0 {
		return &Grid[T]{width: doc.Width}, nil
	}

	width := len(doc.Rows[0])
	if width == 0 {
		return nil, fmt.Errorf("row 0 is empty: %w", ErrBadWidth)
	}
	if doc.Width != 0 && doc.Width != width {
		return nil, fmt.Errorf("width %d, row 0 has %d cells: %w", doc.Width, width, ErrBadWidth)
	}
	for i, row := range doc.Rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), width, ErrNonRectangular)
		}
	}

	g := &Grid[T]{data: make([]T, 0, width*len(doc.Rows))}
	for _, row := range doc.Rows {
		g.PushRow(row) // lengths checked above; cannot panic
	}

	return g, nil
}
