package domain

import "time"

// Config holds the runtime configuration of the tagger.
type Config struct {
	AWS       AWSConfig       `koanf:"aws"`
	Lookup    LookupConfig    `koanf:"lookup"`
	Log       LogConfig       `koanf:"log"`
	Replay    ReplayConfig    `koanf:"replay"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// AWSConfig configures the AWS SDK. An empty region defers to the SDK default chain.
type AWSConfig struct {
	Region string `koanf:"region"`
}

// LookupConfig bounds the control-plane lookup.
type LookupConfig struct {
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

// LogConfig configures the diagnostic logger.
type LogConfig struct {
	Level  string `koanf:"level"  validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json text"`
}

// ReplayConfig configures local event replay.
type ReplayConfig struct {
	Concurrency int `koanf:"concurrency" validate:"min=1,max=64"`
}

// TelemetryConfig toggles span recording.
type TelemetryConfig struct {
	Enabled bool `koanf:"enabled"`
}

// DefaultConfig returns the configuration used when no source overrides a value.
// The lookup timeout stays below the five second function timeout.
func DefaultConfig() Config {
	return Config{
		Lookup:    LookupConfig{Timeout: 4 * time.Second},
		Log:       LogConfig{Level: "info", Format: "json"},
		Replay:    ReplayConfig{Concurrency: 4},
		Telemetry: TelemetryConfig{Enabled: true},
	}
}
