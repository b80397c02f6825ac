package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"alpinepulse/internal/models/db_models"
)

type AttractionRepository interface {
	ListAttractions(ctx context.Context) ([]db_models.Attraction, error)
	GetByIdentifier(ctx context.Context, identifier string) (*db_models.Attraction, error)
}

type attractionRepository struct {
	db *gorm.DB
}

func NewAttractionRepository(db *gorm.DB) AttractionRepository {
	return &attractionRepository{db: db}
}

func (r *attractionRepository) ListAttractions(ctx context.Context) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	err := r.db.WithContext(ctx).
		Preload("City").
		Order("name asc").
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) GetByIdentifier(ctx context.Context, identifier string) (*db_models.Attraction, error) {
	var attraction db_models.Attraction
	err := r.db.WithContext(ctx).
		Preload("City").
		First(&attraction, "identifier = ?", identifier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attraction, nil
}
