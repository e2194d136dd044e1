package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.trai.ch/ecstagger/internal/core/domain"
)

type classifyOutput struct {
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

func (c *CLI) newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Print the error classification of a stop code and stopped reason",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stopCode, _ := cmd.Flags().GetString("stop-code")
			reason, _ := cmd.Flags().GetString("reason")

			cl := domain.Classify(stopCode, reason)
			return json.NewEncoder(cmd.OutOrStdout()).Encode(classifyOutput{
				ErrorCode:    cl.Code,
				ErrorMessage: cl.Message,
			})
		},
	}
	cmd.Flags().String("stop-code", "", "Task stop code, e.g. EssentialContainerExited")
	cmd.Flags().String("reason", "", "Task stopped reason")
	return cmd
}
