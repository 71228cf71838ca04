package ports

import "go.trai.ch/lode/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks

// ConfigLoader loads the host configuration.
type ConfigLoader interface {
	// Load reads the configuration from the given working directory. It fails
	// with domain.ErrConfigNotFound when no lodefile exists there.
	Load(cwd string) (*domain.Config, error)
}
