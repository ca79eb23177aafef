package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pahunapath/internal/models/db_models"
)

type PlaceRepository interface {
	CreatePlace(ctx context.Context, place *db_models.Place) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Place, error)
	List(ctx context.Context, kind string) ([]db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) CreatePlace(ctx context.Context, place *db_models.Place) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(place).Error; err != nil {
		return uuid.Nil, err
	}
	return place.ID, nil
}

// Delete removes the place and its reviews.
func (r *placeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("place_id = ?", id).Delete(&db_models.Review{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&db_models.Place{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Read helpers return (nil, nil) when no rows are found.

func (r *placeRepository) GetByID(ctx context.Context, id string) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).
		Preload("Author").
		First(&place, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) List(ctx context.Context, kind string) ([]db_models.Place, error) {
	var places []db_models.Place

	q := r.db.WithContext(ctx).Preload("Author")
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	err := q.Order("created_at DESC").Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}
