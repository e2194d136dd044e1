package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.trai.ch/ecstagger/internal/adapters/eventbridge"
	"go.trai.ch/ecstagger/internal/core/domain"
)

type matchOutput struct {
	Origin  string `json:"origin"`
	EventID string `json:"event_id,omitempty"`
	Matches bool   `json:"matches"`
	Error   string `json:"error,omitempty"`
}

func (c *CLI) newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match [files...]",
		Short: "Report which events the EventBridge rule would forward",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			envelopes, err := eventbridge.LoadEvents(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			filter := domain.UpstreamFilter{}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, env := range envelopes {
				out := matchOutput{Origin: env.Origin, EventID: env.Event.ID}
				if env.Err != nil {
					out.Error = env.Err.Error()
				} else {
					out.Matches = filter.MatchesEvent(env.Event)
				}
				if err := enc.Encode(out); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
