package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/vec2d/grid"
	"github.com/spf13/cobra"
)

// parseCoords parses a signed (row, col) pair.
func parseCoords(rowArg, colArg string) (row, col int, err error) {
	if row, err = parseIndex("row", rowArg); err != nil {
		return 0, 0, err
	}
	if col, err = parseIndex("column", colArg); err != nil {
		return 0, 0, err
	}

	return row, col, nil
}

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get ROW COL",
		Short: "Print one cell, wrapping negative or overflowing indices",
		Long: `Print the cell at (ROW, COL). Indices wrap modulo the grid shape.
Separate negative indices from flags with "--", e.g. grid2d get -- -1 -1.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, col, err := parseCoords(args[0], args[1])
			if err != nil {
				return err
			}
			g, err := loadGrid(opts.file)
			if err != nil {
				return err
			}
			if err := checkWrappable(g); err != nil {
				return err
			}
			w := grid.NewWrappingView(g)
			slog.Debug("resolved cell", "row", w.ResolveRow(row), "col", w.ResolveCol(col))
			fmt.Fprintln(cmd.OutOrStdout(), w.At(row, col))

			return nil
		},
	}
}

func newSetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set ROW COL VALUE",
		Short: "Overwrite one cell, wrapping negative or overflowing indices",
		Long: `Overwrite the cell at (ROW, COL). Indices wrap modulo the grid shape.
Separate negative indices from flags with "--", e.g. grid2d set -- -1 0 x.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, col, err := parseCoords(args[0], args[1])
			if err != nil {
				return err
			}

			return mutate(opts.file, func(g *grid.Grid[string]) error {
				if err := checkWrappable(g); err != nil {
					return err
				}
				grid.NewWrappingView(g).Set(row, col, args[2])

				return nil
			})
		},
	}
}
