package ports

import "go.trai.ch/voltdev/internal/core/domain"

// ConfigLoader defines the interface for loading the voltdev configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves settings for the project rooted at root.
	// path names the config file; a relative path is resolved against root.
	Load(root, path string) (*domain.Settings, error)
}
