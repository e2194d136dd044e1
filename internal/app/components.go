package app

import (
	"context"
	"io"

	"go.trai.ch/ecstagger/internal/core/domain"
	"go.trai.ch/ecstagger/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	Config  *domain.Config
	Logger  ports.Logger
	Handler *Handler
	Lambda  ports.EventSource
	Replays ports.ReplaySourceFactory
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(
	cfg *domain.Config,
	logger ports.Logger,
	handler *Handler,
	lambda ports.EventSource,
	replays ports.ReplaySourceFactory,
) *Components {
	return &Components{
		Config:  cfg,
		Logger:  logger,
		Handler: handler,
		Lambda:  lambda,
		Replays: replays,
	}
}

// Serve hands the handler to the Lambda runtime.
func (c *Components) Serve(ctx context.Context) error {
	return c.Lambda.Start(ctx, c.Handler)
}

// Replay runs the handler once per event read from paths, or from stdin when paths is empty.
func (c *Components) Replay(ctx context.Context, paths []string, stdin io.Reader) error {
	src := c.Replays.NewReplaySource(paths, stdin, c.Config.Replay.Concurrency)
	return src.Start(ctx, c.Handler)
}
