package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"alpinepulse/internal/models/db_models"
)

type CityRepository interface {
	ListCities(ctx context.Context) ([]db_models.City, error)
	GetCityByKey(ctx context.Context, key string) (*db_models.City, error)
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) ListCities(ctx context.Context) ([]db_models.City, error) {
	var cities []db_models.City
	err := r.db.WithContext(ctx).
		Order("display_name asc").
		Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *cityRepository) GetCityByKey(ctx context.Context, key string) (*db_models.City, error) {
	var city db_models.City
	err := r.db.WithContext(ctx).
		First(&city, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}
