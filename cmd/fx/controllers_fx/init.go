package controllers_fx

import (
	"go.uber.org/fx"

	"lotrinh/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewDestinationsController),
	fx.Provide(controllers.NewItineraryController))
