package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/changed/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the project's scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			return c.app.Run(cmd.Context(), cmd.Flags(), app.RunOptions{
				JSON: asJSON,
			})
		},
	}
	cmd.Flags().Bool("json", false, "Print the report as JSON")

	for _, p := range c.app.Plugins() {
		fs := pflag.NewFlagSet(p.Name(), pflag.ContinueOnError)
		p.RegisterFlags(fs)
		cmd.Flags().AddFlagSet(fs)
	}

	cmd.SetUsageFunc(groupedUsage)
	return cmd
}
