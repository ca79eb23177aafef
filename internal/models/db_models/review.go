package db_models

import "github.com/google/uuid"

type Review struct {
	BaseModel
	PlaceID  uuid.UUID `gorm:"type:uuid;index;not null"`
	AuthorID uuid.UUID `gorm:"type:uuid;index;not null"`
	Rating   int       `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Comment  string    `gorm:"type:text"`

	Author Account `gorm:"foreignKey:AuthorID"`
}
