package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the grid and its shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrid(opts.file)
			if err != nil {
				return err
			}
			rows, cols := g.Shape()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%dx%d\n", rows, cols)
			fmt.Fprint(out, g)

			return nil
		},
	}
}
