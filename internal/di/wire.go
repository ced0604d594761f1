//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"MarketScanner/internal/services/signals"
	"MarketScanner/pkg/config"
	"MarketScanner/pkg/server"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Infrastructure
		ProvideLogger,
		ProvideRegistry,
		ProvideMetrics,
		ProvidePriceProvider,

		// Domain services and use cases
		signals.NewEngine,
		ProvideMarketScanner,

		// Transport
		ProvideScannerHandler,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
