package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/changed/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove persisted plugin state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")

			opts := app.CleanOptions{Storage: true}
			if all {
				opts = app.CleanOptions{All: true}
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("all", "a", false, "Remove the whole .changed state directory")

	return cmd
}
