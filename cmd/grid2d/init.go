package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/vec2d/grid"
	"github.com/spf13/cobra"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var (
		rows, cols int
		fill       string
		force      bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new grid file",
		Long:  `Create a rows x cols grid with every cell set to --fill (empty string by default).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows < 0 || cols < 0 {
				return fmt.Errorf("shape %dx%d: %w", rows, cols, errBadArgs)
			}
			if !force {
				if _, err := os.Stat(opts.file); err == nil {
					return fmt.Errorf("%s already exists (use --force): %w", opts.file, errBadArgs)
				}
			}
			slog.Debug("initializing grid", "rows", rows, "cols", cols, "fill", fill)

			return saveGrid(opts.file, grid.NewFilled(rows, cols, fill))
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 0, "Number of rows")
	cmd.Flags().IntVar(&cols, "cols", 0, "Number of columns")
	cmd.Flags().StringVar(&fill, "fill", "", "Initial cell value")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
