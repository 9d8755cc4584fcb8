//go:build wireinject
// +build wireinject

package di

import (
	"batlog/internal"
	"batlog/internal/controllers"
	"batlog/internal/providers"
	"batlog/internal/repositories"
	"batlog/internal/services"
	"batlog/internal/structures"

	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewIdentityProvider,
		providers.NewZstdCompressor,

		repositories.NewDatabaseProvider,
		repositories.NewAtBatRepository,
		repositories.NewProfileRepository,

		services.NewAtBatService,
		services.NewProfileService,
		services.NewSessionService,

		controllers.NewAtBatController,
		controllers.NewDashboardController,
		controllers.NewProfileController,
		controllers.NewSessionController,
		controllers.NewHealthController,

		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
