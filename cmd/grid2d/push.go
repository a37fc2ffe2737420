package main

import (
	"github.com/katalvlaran/vec2d/grid"
	"github.com/spf13/cobra"
)

func newPushRowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "push-row VALUE...",
		Short: "Append a row at the bottom",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(opts.file, func(g *grid.Grid[string]) error {
				if err := checkRow(g, args); err != nil {
					return err
				}
				g.PushRow(args)

				return nil
			})
		},
	}
}

func newPushColCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "push-col VALUE...",
		Short: "Append a column on the right",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(opts.file, func(g *grid.Grid[string]) error {
				if err := checkCol(g, args); err != nil {
					return err
				}
				g.PushCol(args)

				return nil
			})
		},
	}
}
