package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the routing table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Routes(cmd.OutOrStdout(), baseOptions(cmd))
		},
	}
}
