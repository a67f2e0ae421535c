package seed_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"travelguide/internal/config"
	"travelguide/internal/repositories"
	"travelguide/internal/seed"
	"travelguide/internal/services"
	"travelguide/pkg/clock"
)

var Module = fx.Provide(
	provideSeedRepo, seed.Load, provideSeedService)

func provideSeedRepo(db *gorm.DB) repositories.SeedRepository {
	return repositories.NewSeedRepository(db)
}

func provideSeedService(seedRepo repositories.SeedRepository, catalog *seed.Catalog, c clock.Clock, cfg *config.Config) services.SeedServiceInterface {
	return services.NewSeedService(seedRepo, catalog, c, cfg.IsProduction())
}
