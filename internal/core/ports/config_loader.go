package ports

import "go.trai.ch/ktxload/internal/core/domain"

// ConfigLoader defines the interface for loading the loader configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. An empty path searches the working
	// directory for the default file name and falls back to built-in defaults.
	Load(path string) (*domain.Config, error)
}
