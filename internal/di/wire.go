//go:build wireinject
// +build wireinject

package di

import (
	"github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/config"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,

		// Upstream data and forecasting engine
		ProvideMarketDataSource,
		ProvideSelector,

		// Use cases
		ProvidePredictor,
		ProvideWarmer,

		// HTTP surface
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
