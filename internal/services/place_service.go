package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"pahunapath/internal/mediastore"
	"pahunapath/internal/models/db_models"
	"pahunapath/internal/models/request_models"
	"pahunapath/internal/models/response_models"
	"pahunapath/internal/repositories"
	"pahunapath/pkg/utils"
)

// MediaURLPrefix is where stored place images are served from.
const MediaURLPrefix = "/media/"

type PlaceServiceInterface interface {
	ListPlaces(ctx context.Context, kind string) ([]response_models.Place, error)
	GetPlace(ctx context.Context, id string) (response_models.Place, error)
	CreatePlace(ctx context.Context, input request_models.CreatePlaceInput) (response_models.Place, error)
	DeletePlace(ctx context.Context, id uuid.UUID, actorID, actorRole string) error
	BulkDeletePlaces(ctx context.Context, ids []string, actorID, actorRole string) response_models.BulkDeleteResult
	DescribePlaces(ctx context.Context, ids []string) (string, error)
}

type PlaceService struct {
	placeRepository repositories.PlaceRepository
	media           mediastore.Store
}

func NewPlaceService(placeRepository repositories.PlaceRepository, media mediastore.Store) PlaceServiceInterface {
	return &PlaceService{
		placeRepository: placeRepository,
		media:           media,
	}
}

func (p *PlaceService) ListPlaces(ctx context.Context, kind string) ([]response_models.Place, error) {
	if kind != "" && !db_models.PlaceKind(kind).Valid() {
		return nil, utils.ErrInvalidPlaceKind
	}

	places, err := p.placeRepository.List(ctx, kind)
	if err != nil {
		slog.Error("list places failed", "error", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Place, 0, len(places))
	for _, place := range places {
		out = append(out, toPlaceResponse(place))
	}
	return out, nil
}

func (p *PlaceService) GetPlace(ctx context.Context, id string) (response_models.Place, error) {
	place, err := p.placeRepository.GetByID(ctx, id)
	if err != nil {
		slog.Error("get place failed", "place_id", id, "error", err)
		return response_models.Place{}, utils.ErrDatabaseError
	}
	if place == nil {
		return response_models.Place{}, utils.ErrPlaceNotFound
	}
	return toPlaceResponse(*place), nil
}

func (p *PlaceService) CreatePlace(ctx context.Context, input request_models.CreatePlaceInput) (response_models.Place, error) {
	kind := db_models.PlaceKind(strings.ToLower(strings.TrimSpace(input.Kind)))
	if kind == "" {
		kind = db_models.KindPlace
	}
	if !kind.Valid() {
		return response_models.Place{}, utils.ErrInvalidPlaceKind
	}

	keys := make([]string, 0, len(input.Images))
	for _, img := range input.Images {
		key, err := p.media.Save(ctx, img.MimeType, img.Body)
		if err != nil {
			p.discardMedia(ctx, keys)
			if errors.Is(err, mediastore.ErrUnsupportedMedia) {
				return response_models.Place{}, utils.ErrUnsupportedMedia
			}
			slog.Error("store place image failed", "error", err)
			return response_models.Place{}, utils.ErrMediaStorage
		}
		keys = append(keys, key)
	}

	images := make(pq.StringArray, 0, len(keys))
	for _, k := range keys {
		images = append(images, MediaURLPrefix+k)
	}

	newPlace := &db_models.Place{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Kind:        kind,
		MapLink:     input.MapLink,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Images:      images,
		AuthorID:    input.AuthorID,
	}

	if _, err := p.placeRepository.CreatePlace(ctx, newPlace); err != nil {
		slog.Error("create place failed", "error", err)
		p.discardMedia(ctx, keys)
		return response_models.Place{}, utils.ErrDatabaseError
	}

	return p.GetPlace(ctx, newPlace.ID.String())
}

// DeletePlace lets authors remove their own places; staff and admins may
// remove any place.
func (p *PlaceService) DeletePlace(ctx context.Context, id uuid.UUID, actorID, actorRole string) error {
	existing, err := p.placeRepository.GetByID(ctx, id.String())
	if err != nil {
		slog.Error("get place failed", "place_id", id, "error", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrPlaceNotFound
	}
	if !canModerate(actorRole) && existing.AuthorID.String() != actorID {
		return utils.ErrForbidden
	}

	if err := p.placeRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrPlaceNotFound
		}
		slog.Error("delete place failed", "place_id", id, "error", err)
		return utils.ErrDatabaseError
	}

	keys := make([]string, 0, len(existing.Images))
	for _, u := range existing.Images {
		if k, ok := strings.CutPrefix(u, MediaURLPrefix); ok {
			keys = append(keys, k)
		}
	}
	p.discardMedia(ctx, keys)
	return nil
}

func (p *PlaceService) BulkDeletePlaces(ctx context.Context, ids []string, actorID, actorRole string) response_models.BulkDeleteResult {
	return bulkDelete(ctx, ids, func(ctx context.Context, id uuid.UUID) error {
		return p.DeletePlace(ctx, id, actorID, actorRole)
	})
}

func (p *PlaceService) DescribePlaces(ctx context.Context, ids []string) (string, error) {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			labels = append(labels, id+" (invalid id)")
			continue
		}
		place, err := p.placeRepository.GetByID(ctx, id)
		if err != nil {
			return "", utils.ErrDatabaseError
		}
		if place == nil {
			labels = append(labels, id+" (missing)")
			continue
		}
		labels = append(labels, place.Name)
	}
	return describe("Delete", len(ids), "place", labels), nil
}

func (p *PlaceService) discardMedia(ctx context.Context, keys []string) {
	for _, k := range keys {
		if err := p.media.Delete(ctx, k); err != nil && !errors.Is(err, mediastore.ErrNotFound) {
			slog.Warn("discard place image failed", "key", k, "error", err)
		}
	}
}

func canModerate(role string) bool {
	return role == db_models.RoleStaff || role == db_models.RoleAdmin
}

func toPlaceResponse(place db_models.Place) response_models.Place {
	images := []string(place.Images)
	if images == nil {
		images = []string{}
	}
	return response_models.Place{
		ID:            place.ID.String(),
		Name:          place.Name,
		Description:   place.Description,
		Kind:          string(place.Kind),
		AverageRating: place.AverageRating,
		ReviewCount:   place.ReviewCount,
		MapLink:       place.MapLink,
		Author:        place.Author.Name,
		AuthorID:      place.AuthorID.String(),
		Images:        images,
		Latitude:      place.Latitude,
		Longitude:     place.Longitude,
		CreatedAt:     utils.FormatRFC3339(place.CreatedTime()),
	}
}
