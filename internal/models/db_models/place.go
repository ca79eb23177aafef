package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PlaceKind string

const (
	KindPlace      PlaceKind = "place"
	KindRestaurant PlaceKind = "restaurant"
	KindHotel      PlaceKind = "hotel"
)

func (k PlaceKind) Valid() bool {
	switch k {
	case KindPlace, KindRestaurant, KindHotel:
		return true
	}
	return false
}

type Place struct {
	BaseModel
	Name          string    `gorm:"not null"`
	Description   string    `gorm:"type:text"`
	Kind          PlaceKind `gorm:"type:varchar(20);index;not null;default:place"`
	MapLink       string
	Latitude      float64
	Longitude     float64
	Images        pq.StringArray `gorm:"type:text[]"`
	AverageRating float64        `gorm:"not null;default:0"`
	ReviewCount   int64          `gorm:"not null;default:0"`
	AuthorID      uuid.UUID      `gorm:"type:uuid;index;not null"`

	Author  Account  `gorm:"foreignKey:AuthorID"`
	Reviews []Review `gorm:"foreignKey:PlaceID"`
}
