package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <specfile>",
		Short: "Show the flags and build steps for a specfile without running them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, _ := cmd.Flags().GetString("prefix")
			return c.app.Plan(cmd.Context(), args[0], prefix, cmd.OutOrStdout())
		},
	}
}
