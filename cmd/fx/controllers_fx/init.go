package controllers_fx

import (
	"go.uber.org/fx"

	"travelguide/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewDestinationController),
	fx.Provide(controllers.NewExperienceController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewSystemController))
