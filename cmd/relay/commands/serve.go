package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/relay/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Poll the task queue and dispatch activity tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := baseOptions(cmd)
			addQueueOptions(cmd, &opts)

			opts.Workers, _ = cmd.Flags().GetInt("workers")
			opts.Register, _ = cmd.Flags().GetBool("register")
			if cmd.Flags().Changed("reply-timeout") {
				timeout, _ := cmd.Flags().GetDuration("reply-timeout")
				opts.ReplyTimeout = &timeout
			}

			return c.app.Serve(cmd.Context(), opts)
		},
	}
	queueFlags(cmd)
	cmd.Flags().IntP("workers", "w", 0, "Number of concurrent poll workers")
	cmd.Flags().Duration("reply-timeout", 0, "Maximum wait for a query reply (0 waits until shutdown)")
	cmd.Flags().Bool("register", false, "Register activity types before polling")
	return cmd
}

func queueFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("endpoint", "e", "", "Task queue service endpoint")
	cmd.Flags().StringP("domain", "d", "", "Task queue domain")
	cmd.Flags().StringP("tasklist", "l", "", "Task list to poll")
}

func addQueueOptions(cmd *cobra.Command, opts *app.Options) {
	opts.Endpoint, _ = cmd.Flags().GetString("endpoint")
	opts.Domain, _ = cmd.Flags().GetString("domain")
	opts.TaskList, _ = cmd.Flags().GetString("tasklist")
}
