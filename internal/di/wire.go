//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"StationPulse/pkg/config"
	"StationPulse/pkg/server"
)

// InitializeApp builds the application from configuration. The returned
// cleanup releases the cache backend.
func InitializeApp(cfg *config.Config) (*server.App, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
