package controllers_fx

import (
	"go.uber.org/fx"

	"alpinepulse/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewCatalogController))
