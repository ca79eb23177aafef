package services

import (
	"context"
	"log/slog"
	"time"

	dbm "pahunapath/internal/models/db_models"
	resp "pahunapath/internal/models/response_models"
	"pahunapath/internal/repositories"
	"pahunapath/pkg/utils"
)

type DashboardService interface {
	BuildDashboard(ctx context.Context, windowDays int) (*resp.DashboardReport, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo, now: time.Now}
}

func (s *dashboardService) BuildDashboard(ctx context.Context, windowDays int) (*resp.DashboardReport, error) {
	if windowDays <= 0 {
		windowDays = 30
	}
	since := s.now().AddDate(0, 0, -windowDays)

	report, err := s.build(ctx, windowDays, since)
	if err != nil {
		slog.Error("build dashboard failed", "error", err)
		return nil, utils.ErrDatabaseError
	}
	return report, nil
}

func (s *dashboardService) build(ctx context.Context, windowDays int, since time.Time) (*resp.DashboardReport, error) {
	// ---------- Core counts ----------
	users, err := s.repo.CountAccountsByRole(ctx, dbm.RoleUser)
	if err != nil {
		return nil, err
	}
	staff, err := s.repo.CountAccountsByRole(ctx, dbm.RoleStaff)
	if err != nil {
		return nil, err
	}
	newUsers, err := s.repo.CountNewAccounts(ctx, dbm.RoleUser, since)
	if err != nil {
		return nil, err
	}
	places, err := s.repo.CountPlaces(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := s.repo.CountReviews(ctx)
	if err != nil {
		return nil, err
	}

	// ---------- Top places ----------
	rows, err := s.repo.TopRatedPlaces(ctx, 1, 5)
	if err != nil {
		return nil, err
	}
	top := make([]resp.TopPlace, 0, len(rows))
	for _, r := range rows {
		top = append(top, resp.TopPlace{
			ID:            r.ID,
			Name:          r.Name,
			AverageRating: r.AverageRating,
			ReviewCount:   r.ReviewCount,
		})
	}

	return &resp.DashboardReport{
		TotalUsers:   users,
		TotalStaff:   staff,
		TotalPlaces:  places,
		TotalReviews: reviews,
		NewUsers:     newUsers,
		WindowDays:   windowDays,
		TopPlaces:    top,
	}, nil
}
