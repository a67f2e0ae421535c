package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"travelguide/internal/repositories"
	"travelguide/internal/services"
	"travelguide/pkg/clock"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	destinationRepo repositories.DestinationRepository,
	experienceRepo repositories.ExperienceRepository,
	c clock.Clock) services.TripServiceInterface {
	return services.NewTripService(tripRepo, destinationRepo, experienceRepo, c)
}
