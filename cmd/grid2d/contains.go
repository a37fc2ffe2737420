package main

import (
	"fmt"

	"github.com/katalvlaran/vec2d/grid"
	"github.com/spf13/cobra"
)

func newContainsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "contains VALUE",
		Short: "Report whether any cell equals VALUE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrid(opts.file)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), grid.Contains(g, args[0]))

			return nil
		},
	}
}
