package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/katalvlaran/vec2d/grid"
	"gopkg.in/yaml.v3"
)

// errBadArgs marks arguments that would violate a grid contract.
var errBadArgs = errors.New("grid2d: invalid arguments")

// loadGrid reads and decodes the grid file at path.
func loadGrid(path string) (*grid.Grid[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	g := grid.New[string]()
	if err := yaml.Unmarshal(data, g); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	rows, cols := g.Shape()
	slog.Debug("loaded grid", "path", path, "rows", rows, "cols", cols)

	return g, nil
}

// saveGrid encodes g and writes it to path.
func saveGrid(path string, g *grid.Grid[string]) error {
	data, err := yaml.Marshal(g)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	rows, cols := g.Shape()
	slog.Info("saved grid", "path", path, "rows", rows, "cols", cols)

	return nil
}

// mutate loads the grid, applies fn and saves the result.
func mutate(path string, fn func(g *grid.Grid[string]) error) error {
	g, err := loadGrid(path)
	if err != nil {
		return err
	}
	if err := fn(g); err != nil {
		return err
	}

	return saveGrid(path, g)
}

// parseIndex parses a signed integer argument.
func parseIndex(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not an integer: %w", name, s, errBadArgs)
	}

	return n, nil
}

// checkRow reports whether values can become a row of g.
func checkRow(g *grid.Grid[string], values []string) error {
	if g.ColCount() > 0 && len(values) != g.ColCount() {
		return fmt.Errorf("row has %d values, grid has %d columns: %w", len(values), g.ColCount(), errBadArgs)
	}

	return nil
}

// checkCol reports whether values can become a column of g.
func checkCol(g *grid.Grid[string], values []string) error {
	if g.ColCount() > 0 && len(values) != g.RowCount() {
		return fmt.Errorf("column has %d values, grid has %d rows: %w", len(values), g.RowCount(), errBadArgs)
	}

	return nil
}

// checkWrappable reports whether wrapping access is defined on g.
func checkWrappable(g *grid.Grid[string]) error {
	if g.RowCount() == 0 || g.ColCount() == 0 {
		return fmt.Errorf("grid has no cells to address: %w", errBadArgs)
	}

	return nil
}

// checkInsertIndex reports whether index lies in [0, limit].
func checkInsertIndex(index, limit int) error {
	if index < 0 || index > limit {
		return fmt.Errorf("index %d outside [0, %d]: %w", index, limit, errBadArgs)
	}

	return nil
}
