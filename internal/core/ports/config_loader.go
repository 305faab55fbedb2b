package ports

import "go.trai.ch/relay/internal/core/domain"

// ConfigLoader defines the interface for loading the relay configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path and returns it merged over defaults.
	// A missing file at the default location yields the defaults.
	Load(path string) (*domain.Config, error)
}
