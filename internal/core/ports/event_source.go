package ports

import (
	"context"
	"io"

	"go.trai.ch/ecstagger/internal/core/domain"
)

//go:generate mockgen -source=event_source.go -destination=mocks/mock_event_source.go -package=mocks

// EventHandler processes one task stop event per call.
type EventHandler interface {
	Handle(ctx context.Context, event domain.TaskStopEvent) error
}

// EventSource delivers task stop events to a handler.
//
// Deliveries are expected to satisfy domain.UpstreamFilter and to happen at
// most once per upstream event, but handlers must stay correct for any event.
// A handler error marks that delivery as failed.
type EventSource interface {
	// Start delivers events to h until the source is exhausted or ctx is done.
	Start(ctx context.Context, h EventHandler) error
}

// ReplaySourceFactory builds event sources that replay recorded events locally.
type ReplaySourceFactory interface {
	// NewReplaySource reads events from paths, or from stdin when paths is empty,
	// handling at most concurrency of them at once.
	NewReplaySource(paths []string, stdin io.Reader, concurrency int) EventSource
}
