package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register activity types with the task queue and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := baseOptions(cmd)
			addQueueOptions(cmd, &opts)
			return c.app.Register(cmd.Context(), opts)
		},
	}
	queueFlags(cmd)
	return cmd
}
