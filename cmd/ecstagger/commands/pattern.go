package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.trai.ch/ecstagger/internal/core/domain"
)

func (c *CLI) newPatternCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pattern",
		Short: "Print the EventBridge event pattern that routes events to the tagger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(domain.UpstreamFilter{}.Pattern())
		},
	}
}
