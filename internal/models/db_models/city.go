package db_models

type City struct {
	BaseModel
	// Key is the stable catalog identifier used on the wire, e.g. "lugano".
	Key         string `gorm:"uniqueIndex"`
	DisplayName string

	Attractions []*Attraction `gorm:"foreignKey:CityID"`
}
