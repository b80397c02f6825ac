package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"alpinepulse/internal/planner/interests"
	"alpinepulse/internal/repositories"
	"alpinepulse/internal/services"
)

var Module = fx.Provide(
	provideCityRepo, provideAttractionRepo, provideCatalogService)

func provideCityRepo(db *gorm.DB) repositories.CityRepository {
	return repositories.NewCityRepository(db)
}

func provideAttractionRepo(db *gorm.DB) repositories.AttractionRepository {
	return repositories.NewAttractionRepository(db)
}

func provideCatalogService(
	cityRepo repositories.CityRepository,
	attractionRepo repositories.AttractionRepository,
	cfg interests.Config,
) services.CatalogServiceInterface {
	return services.NewCatalogService(cityRepo, attractionRepo, cfg)
}
