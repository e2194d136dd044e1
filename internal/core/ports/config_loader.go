package ports

import "go.trai.ch/ecstagger/internal/core/domain"

// ConfigLoader defines the interface for loading the tagger configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load merges defaults, the optional config file and the environment.
	Load() (*domain.Config, error)
}
