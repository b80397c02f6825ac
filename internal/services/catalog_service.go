package services

import (
	"context"

	"alpinepulse/internal/models/response_models"
	"alpinepulse/internal/planner/interests"
	"alpinepulse/internal/repositories"
	"alpinepulse/pkg/utils"
)

// CatalogServiceInterface serves the fixed reference data the planner form
// is built from: cities, attractions, and the theme copy.
type CatalogServiceInterface interface {
	ListCities(ctx context.Context) ([]response_models.CityResponse, error)
	ListAttractions(ctx context.Context) ([]response_models.AttractionResponse, error)
	Themes() []interests.ThemeInfo
}

type CatalogService struct {
	cityRepo       repositories.CityRepository
	attractionRepo repositories.AttractionRepository
	cfg            interests.Config
}

func NewCatalogService(
	cityRepo repositories.CityRepository,
	attractionRepo repositories.AttractionRepository,
	cfg interests.Config,
) CatalogServiceInterface {
	return &CatalogService{
		cityRepo:       cityRepo,
		attractionRepo: attractionRepo,
		cfg:            cfg,
	}
}

func (s *CatalogService) ListCities(ctx context.Context) ([]response_models.CityResponse, error) {
	cities, err := s.cityRepo.ListCities(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CityResponse, 0, len(cities))
	for _, city := range cities {
		out = append(out, response_models.CityResponse{
			Key:         city.Key,
			DisplayName: city.DisplayName,
		})
	}
	return out, nil
}

func (s *CatalogService) ListAttractions(ctx context.Context) ([]response_models.AttractionResponse, error) {
	attractions, err := s.attractionRepo.ListAttractions(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AttractionResponse, 0, len(attractions))
	for _, a := range attractions {
		out = append(out, response_models.AttractionResponse{
			Identifier: a.Identifier,
			Name:       a.Name,
			City:       a.City.DisplayName,
			Photo:      a.Photo,
		})
	}
	return out, nil
}

func (s *CatalogService) Themes() []interests.ThemeInfo {
	return s.cfg.Themes
}
