package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	file    string
	verbose bool
}

// newRootCmd builds the command tree. A fresh tree per call keeps flag state
// out of package globals.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "grid2d",
		Short: "Inspect and reshape YAML-encoded 2D grids",
		Long: `grid2d loads a grid stored as YAML (width + rows), applies one operation
and writes the result back. Reads use wrapping indices, so -1 is the last row
or column.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "grid.yaml", "Path to the grid file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(
		newInitCmd(opts),
		newShowCmd(opts),
		newPushRowCmd(opts),
		newPushColCmd(opts),
		newInsertRowCmd(opts),
		newInsertColCmd(opts),
		newGetCmd(opts),
		newSetCmd(opts),
		newContainsCmd(opts),
	)

	return cmd
}
