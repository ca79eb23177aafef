package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pahunapath/internal/models/db_models"
)

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *db_models.Review) error
	GetByID(ctx context.Context, id string) (*db_models.Review, error)
	ListByPlace(ctx context.Context, placeID string) ([]db_models.Review, error)
	Delete(ctx context.Context, review *db_models.Review) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// CreateReview inserts the review and refreshes the place's rating in the
// same transaction. On success review.Author is loaded.
func (r *reviewRepository) CreateReview(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		if err := refreshPlaceRating(tx, review.PlaceID); err != nil {
			return err
		}
		return tx.Preload("Author").First(review, "id = ?", review.ID).Error
	})
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByPlace(ctx context.Context, placeID string) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("place_id = ?", placeID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) Delete(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(review).Error; err != nil {
			return err
		}
		return refreshPlaceRating(tx, review.PlaceID)
	})
}

// refreshPlaceRating recomputes average_rating and review_count from the
// live reviews of a place.
func refreshPlaceRating(tx *gorm.DB, placeID uuid.UUID) error {
	var agg struct {
		Avg float64
		Cnt int64
	}
	err := tx.Model(&db_models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS cnt").
		Where("place_id = ?", placeID).
		Scan(&agg).Error
	if err != nil {
		return err
	}

	return tx.Model(&db_models.Place{}).
		Where("id = ?", placeID).
		Updates(map[string]interface{}{
			"average_rating": agg.Avg,
			"review_count":   agg.Cnt,
		}).Error
}
