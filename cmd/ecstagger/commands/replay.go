package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [files...]",
		Short: "Handle events from JSON or NDJSON files, or stdin when none are given",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			components, err := c.load(cmd.Context())
			if err != nil {
				return err
			}
			if n, _ := cmd.Flags().GetInt("concurrency"); n > 0 {
				components.Config.Replay.Concurrency = n
			}
			return components.Replay(cmd.Context(), args, cmd.InOrStdin())
		},
	}
	cmd.Flags().IntP("concurrency", "j", 0, "Maximum number of events handled at once (defaults to replay.concurrency)")
	return cmd
}
