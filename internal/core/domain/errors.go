package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedEvent is returned when an event cannot be decoded or misses a required field.
	ErrMalformedEvent = zerr.New("malformed task state change event")

	// ErrTaskDefinitionLookupFailed is returned when the control plane cannot describe a task definition.
	ErrTaskDefinitionLookupFailed = zerr.New("failed to describe task definition")

	// ErrRecordEmitFailed is returned when the normalized record cannot be written to the sink.
	ErrRecordEmitFailed = zerr.New("failed to emit task stop record")

	// ErrReplayFailed is returned when at least one replayed event failed to process.
	ErrReplayFailed = zerr.New("one or more replayed events failed")

	// ErrReplayInputFailed is returned when a replay input cannot be opened or read.
	ErrReplayInputFailed = zerr.New("failed to read replay input")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the merged configuration fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrAWSConfigFailed is returned when the AWS SDK configuration cannot be resolved.
	ErrAWSConfigFailed = zerr.New("failed to load AWS configuration")

	// ErrInvalidLogLevel is returned when a log level name is not recognized.
	ErrInvalidLogLevel = zerr.New("invalid log level, expected one of debug, info, warn, error")
)
