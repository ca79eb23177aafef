package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "pahunapath/internal/models/db_models"
)

type DashboardRepository interface {
	// KPIs / counts
	CountAccountsByRole(ctx context.Context, role string) (int64, error)
	CountNewAccounts(ctx context.Context, role string, since time.Time) (int64, error)
	CountPlaces(ctx context.Context) (int64, error)
	CountReviews(ctx context.Context) (int64, error)

	// Top rated places with at least minReviews reviews
	TopRatedPlaces(ctx context.Context, minReviews int64, limit int) ([]TopPlaceRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type TopPlaceRow struct {
	ID            string  `gorm:"column:id"`
	Name          string  `gorm:"column:name"`
	AverageRating float64 `gorm:"column:average_rating"`
	ReviewCount   int64   `gorm:"column:review_count"`
}

// ---------- Counts ----------
func (r *dashboardRepository) CountAccountsByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Where("role = ?", role).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountNewAccounts(ctx context.Context, role string, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Where("role = ?", role).
		Where("created_at >= ?", since.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountPlaces(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Place{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountReviews(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Review{}).Count(&n).Error
	return n, err
}

// ---------- Top places ----------
func (r *dashboardRepository) TopRatedPlaces(ctx context.Context, minReviews int64, limit int) ([]TopPlaceRow, error) {
	var rows []TopPlaceRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Place{}).
		Select("id, name, average_rating, review_count").
		Where("review_count >= ?", minReviews).
		Order("average_rating DESC, review_count DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
