package db_models

import "github.com/google/uuid"

type Attraction struct {
	BaseModel
	// Identifier is the stable dataset key referenced by plan requests.
	Identifier string `gorm:"uniqueIndex"`
	Name       string
	CityID     uuid.UUID
	Photo      string

	City City
}
