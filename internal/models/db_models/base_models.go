package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pahunapath/pkg/utils"
)

// BaseModel gives every table a uuid key, epoch-second timestamps and soft
// delete. Accounts are hard-deleted through Unscoped.
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CreatedAt int64          `gorm:"autoCreateTime;index"`
	UpdatedAt int64          `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt == 0 {
		b.CreatedAt = utils.NowUnixSeconds()
	}
	b.UpdatedAt = b.CreatedAt
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = utils.NowUnixSeconds()
	return nil
}

// CreatedTime is CreatedAt in Nepal time, zero when unset.
func (b BaseModel) CreatedTime() time.Time {
	return utils.FromUnixSeconds(b.CreatedAt)
}
