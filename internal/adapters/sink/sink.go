// Package sink writes normalized task stop records as structured log lines.
package sink

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"go.trai.ch/ecstagger/internal/core/domain"
	"go.trai.ch/zerr"
)

// LogSink implements ports.RecordEmitter by writing one JSON line per record.
type LogSink struct {
	mu      sync.Mutex
	handler slog.Handler
	now     func() time.Time
}

// Option configures a LogSink.
type Option func(*LogSink)

// WithClock overrides the timestamp source. A clock returning the zero time omits the time field.
func WithClock(now func() time.Time) Option {
	return func(s *LogSink) {
		s.now = now
	}
}

// New creates a LogSink writing to w, or to stdout when w is nil.
func New(w io.Writer, opts ...Option) *LogSink {
	if w == nil {
		w = os.Stdout
	}
	s := &LogSink{
		handler: slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Emit writes rec as a single INFO entry.
func (s *LogSink) Emit(ctx context.Context, rec domain.Record) error {
	tags := rec.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	r := slog.NewRecord(s.now(), slog.LevelInfo, domain.RecordMessage, 0)
	r.AddAttrs(
		slog.String("ecs_cluster", rec.Cluster),
		slog.String("ecs_service", rec.Service),
		slog.String("ecs_task_id", rec.TaskID),
		slog.String("error_code", rec.ErrorCode),
		slog.String("error_message", rec.ErrorMessage),
		slog.Any("tags", tags),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.handler.Handle(ctx, r); err != nil {
		return errors.Join(domain.ErrRecordEmitFailed, zerr.With(zerr.Wrap(err, "write record"), "ecs_task_id", rec.TaskID))
	}
	return nil
}
