package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"pahunapath/internal/models/db_models"
	"pahunapath/internal/models/request_models"
	"pahunapath/internal/models/response_models"
	"pahunapath/internal/repositories"
	"pahunapath/pkg/utils"
)

type ReviewServiceInterface interface {
	ListReviews(ctx context.Context, placeID string) ([]response_models.Review, error)
	CreateReview(ctx context.Context, placeID string, authorID uuid.UUID, request request_models.CreateReviewRequest) (response_models.Review, error)
	DeleteReview(ctx context.Context, id string, actorID, actorRole string) error
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	placeRepo  repositories.PlaceRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, placeRepo repositories.PlaceRepository) ReviewServiceInterface {
	return &ReviewService{reviewRepo: reviewRepo, placeRepo: placeRepo}
}

func (s *ReviewService) ListReviews(ctx context.Context, placeID string) ([]response_models.Review, error) {
	if err := s.ensurePlace(ctx, placeID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByPlace(ctx, placeID)
	if err != nil {
		slog.Error("list reviews failed", "place_id", placeID, "error", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Review, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}
	return out, nil
}

func (s *ReviewService) CreateReview(ctx context.Context, placeID string, authorID uuid.UUID, request request_models.CreateReviewRequest) (response_models.Review, error) {
	if request.Rating < 1 || request.Rating > 5 {
		return response_models.Review{}, utils.ErrInvalidRating
	}
	if err := s.ensurePlace(ctx, placeID); err != nil {
		return response_models.Review{}, err
	}

	review := &db_models.Review{
		PlaceID:  uuid.MustParse(placeID),
		AuthorID: authorID,
		Rating:   request.Rating,
		Comment:  strings.TrimSpace(request.Comment),
	}
	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		slog.Error("create review failed", "place_id", placeID, "error", err)
		return response_models.Review{}, utils.ErrDatabaseError
	}

	return toReviewResponse(*review), nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id string, actorID, actorRole string) error {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		slog.Error("get review failed", "review_id", id, "error", err)
		return utils.ErrDatabaseError
	}
	if review == nil {
		return utils.ErrReviewNotFound
	}
	if !canModerate(actorRole) && review.AuthorID.String() != actorID {
		return utils.ErrForbidden
	}

	if err := s.reviewRepo.Delete(ctx, review); err != nil {
		slog.Error("delete review failed", "review_id", id, "error", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ReviewService) ensurePlace(ctx context.Context, placeID string) error {
	if _, err := uuid.Parse(placeID); err != nil {
		return utils.ErrPlaceNotFound
	}
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		slog.Error("get place failed", "place_id", placeID, "error", err)
		return utils.ErrDatabaseError
	}
	if place == nil {
		return utils.ErrPlaceNotFound
	}
	return nil
}

func toReviewResponse(r db_models.Review) response_models.Review {
	return response_models.Review{
		ID:        r.ID.String(),
		PlaceID:   r.PlaceID.String(),
		AuthorID:  r.AuthorID.String(),
		Author:    r.Author.Name,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: utils.FormatRFC3339(r.CreatedTime()),
	}
}
