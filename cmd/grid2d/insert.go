package main

import (
	"github.com/katalvlaran/vec2d/grid"
	"github.com/spf13/cobra"
)

func newInsertRowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "insert-row INDEX VALUE...",
		Short: "Insert a row before INDEX",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex("row index", args[0])
			if err != nil {
				return err
			}
			values := args[1:]

			return mutate(opts.file, func(g *grid.Grid[string]) error {
				if err := checkInsertIndex(index, g.RowCount()); err != nil {
					return err
				}
				if err := checkRow(g, values); err != nil {
					return err
				}
				g.InsertRow(index, values)

				return nil
			})
		},
	}
}

func newInsertColCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "insert-col INDEX VALUE...",
		Short: "Insert a column before INDEX",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex("column index", args[0])
			if err != nil {
				return err
			}
			values := args[1:]

			return mutate(opts.file, func(g *grid.Grid[string]) error {
				if !g.IsEmpty() { // an empty grid ignores the index
					if err := checkInsertIndex(index, g.ColCount()); err != nil {
						return err
					}
				}
				if err := checkCol(g, values); err != nil {
					return err
				}
				g.InsertCol(index, values)

				return nil
			})
		},
	}
}
