//go:build wireinject
// +build wireinject

package di

import (
	"EquityLens/pkg/config"
	"EquityLens/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Provider clients
		ProvideMarketData,
		ProvideNewsSearcher,
		ProvideClassifier,

		// Use case
		ProvideAnalyzer,

		// HTTP surface
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
