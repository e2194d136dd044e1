package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Receive events from the Lambda runtime API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			components, err := c.load(cmd.Context())
			if err != nil {
				return err
			}
			return components.Serve(cmd.Context())
		},
	}
}
