package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"travelguide/internal/repositories"
	"travelguide/internal/services"
	"travelguide/pkg/clock"
)

var Module = fx.Provide(
	provideDestinationRepo,
	provideExperienceRepo,
	provideDestinationService,
	provideExperienceService)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideExperienceRepo(db *gorm.DB) repositories.ExperienceRepository {
	return repositories.NewExperienceRepository(db)
}

func provideDestinationService(destinationRepo repositories.DestinationRepository) services.DestinationServiceInterface {
	return services.NewDestinationService(destinationRepo)
}

func provideExperienceService(experienceRepo repositories.ExperienceRepository, destinationRepo repositories.DestinationRepository, c clock.Clock) services.ExperienceServiceInterface {
	return services.NewExperienceService(experienceRepo, destinationRepo, c)
}
