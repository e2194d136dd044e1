package eventbridge

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"go.trai.ch/ecstagger/internal/core/domain"
	"go.trai.ch/ecstagger/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// FileSource replays events read from files or stdin, each as an isolated invocation.
type FileSource struct {
	paths       []string
	stdin       io.Reader
	concurrency int
	logger      ports.Logger
}

// NewFileSource creates a FileSource running at most concurrency invocations at once.
func NewFileSource(logger ports.Logger, paths []string, stdin io.Reader, concurrency int) *FileSource {
	if concurrency < 1 {
		concurrency = 1
	}
	return &FileSource{
		paths:       paths,
		stdin:       stdin,
		concurrency: concurrency,
		logger:      logger,
	}
}

// FileSourceFactory implements ports.ReplaySourceFactory with FileSource.
type FileSourceFactory struct {
	logger ports.Logger
}

// NewFileSourceFactory creates a FileSourceFactory whose sources log through logger.
func NewFileSourceFactory(logger ports.Logger) *FileSourceFactory {
	return &FileSourceFactory{logger: logger}
}

// NewReplaySource returns a FileSource over paths.
func (f *FileSourceFactory) NewReplaySource(paths []string, stdin io.Reader, concurrency int) ports.EventSource {
	return NewFileSource(f.logger, paths, stdin, concurrency)
}

// Start delivers every input event to h. Failures of single events do not stop the others.
func (s *FileSource) Start(ctx context.Context, h ports.EventHandler) error {
	envelopes, err := LoadEvents(s.paths, s.stdin)
	if err != nil {
		return err
	}

	var failed atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for _, env := range envelopes {
		log := s.logger.With("origin", env.Origin)
		if env.Err != nil {
			failed.Add(1)
			log.Error(env.Err)
			continue
		}

		if ctx.Err() != nil {
			failed.Add(1)
			continue
		}

		g.Go(func() error {
			if err := h.Handle(ctx, env.Event); err != nil {
				failed.Add(1)
				log.Error(err)
			}
			return nil
		})
	}
	_ = g.Wait()

	total := len(envelopes)
	n := int(failed.Load())
	s.logger.Info("replay complete", "events", total, "failed", n)

	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, "replay interrupted")
	}
	if n > 0 {
		return errors.Join(
			domain.ErrReplayFailed,
			zerr.With(zerr.With(zerr.New("replayed events failed"), "failed", n), "events", total),
		)
	}
	return nil
}
