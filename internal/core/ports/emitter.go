package ports

import (
	"context"

	"go.trai.ch/ecstagger/internal/core/domain"
)

// RecordEmitter writes normalized records to the logging sink.
//
//go:generate mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type RecordEmitter interface {
	// Emit writes exactly one entry for rec.
	Emit(ctx context.Context, rec domain.Record) error
}
