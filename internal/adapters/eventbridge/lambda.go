package eventbridge

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.trai.ch/ecstagger/internal/core/ports"
)

// LambdaSource receives events from the Lambda runtime API.
type LambdaSource struct {
	logger ports.Logger
	start  func(handler any, opts ...lambda.Option)
}

// NewLambdaSource creates a LambdaSource that logs through logger.
func NewLambdaSource(logger ports.Logger) *LambdaSource {
	return &LambdaSource{
		logger: logger,
		start:  lambda.StartWithOptions,
	}
}

// Start hands control to the Lambda runtime loop, which only returns when the process exits.
func (s *LambdaSource) Start(ctx context.Context, h ports.EventHandler) error {
	s.start(s.Handler(h), lambda.WithContext(ctx))
	return nil
}

// Handler returns the runtime handler function delivering each invocation to h.
func (s *LambdaSource) Handler(h ports.EventHandler) func(context.Context, events.CloudWatchEvent) error {
	return func(ctx context.Context, e events.CloudWatchEvent) error {
		log := s.logger.With("event_id", e.ID)
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			log = log.With("aws_request_id", lc.AwsRequestID)
		}

		ev, err := FromCloudWatchEvent(e)
		if err != nil {
			log.Error(err)
			return err
		}

		log.Debug("invocation received", "detail_type", ev.DetailType, "task_arn", ev.Detail.TaskArn)

		if err := h.Handle(ctx, ev); err != nil {
			log.Error(err)
			return err
		}
		return nil
	}
}
