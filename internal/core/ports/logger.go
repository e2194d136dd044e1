package ports

// Logger defines the interface for diagnostic logging.
// Args are alternating key/value pairs, as accepted by log/slog.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(err error)
	// With returns a Logger that adds args to every entry.
	With(args ...any) Logger
}
