package services

import (
	"context"
	"time"

	"pahunapath/internal/models/db_models"
	"pahunapath/internal/models/response_models"
	mem "pahunapath/pkg/memcache"
	"pahunapath/pkg/utils"
)

const (
	ActionDeleteUsers  = "delete_users"
	ActionDeleteStaff  = "delete_staff"
	ActionDeletePlaces = "delete_places"
)

// AdminActionService stages bulk deletes so they run only after an explicit
// confirm. A staged action belongs to the admin who staged it.
type AdminActionService interface {
	Stage(ctx context.Context, kind string, ids []string, requestedBy string) (response_models.PendingAction, error)
	Confirm(ctx context.Context, token, requestedBy, role string) (response_models.BulkDeleteResult, error)
	Cancel(token, requestedBy string) error
}

type adminActionService struct {
	accounts AccountServiceInterface
	places   PlaceServiceInterface
	pending  mem.PendingActionStore
	ttl      time.Duration
}

func NewAdminActionService(accounts AccountServiceInterface, places PlaceServiceInterface, pending mem.PendingActionStore, ttl time.Duration) AdminActionService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &adminActionService{accounts: accounts, places: places, pending: pending, ttl: ttl}
}

func (s *adminActionService) Stage(ctx context.Context, kind string, ids []string, requestedBy string) (response_models.PendingAction, error) {
	var (
		description string
		err         error
	)
	switch kind {
	case ActionDeleteUsers:
		description, err = s.accounts.DescribeAccounts(ctx, ids, db_models.RoleUser)
	case ActionDeleteStaff:
		description, err = s.accounts.DescribeAccounts(ctx, ids, db_models.RoleStaff)
	case ActionDeletePlaces:
		description, err = s.places.DescribePlaces(ctx, ids)
	default:
		return response_models.PendingAction{}, utils.ErrUnsupportedAction
	}
	if err != nil {
		return response_models.PendingAction{}, err
	}

	token, err := utils.GenerateSecureToken(16)
	if err != nil {
		return response_models.PendingAction{}, err
	}

	action := mem.PendingAction{
		Kind:        kind,
		Description: description,
		IDs:         append([]string(nil), ids...),
		RequestedBy: requestedBy,
	}
	s.pending.Put(token, action, s.ttl)
	staged, _ := s.pending.Peek(token)

	return response_models.PendingAction{
		Token:       token,
		Kind:        kind,
		Description: description,
		IDs:         action.IDs,
		ExpiresAt:   utils.FormatRFC3339(staged.ExpiresAt),
	}, nil
}

func (s *adminActionService) Confirm(ctx context.Context, token, requestedBy, role string) (response_models.BulkDeleteResult, error) {
	action, ok := s.pending.Peek(token)
	if !ok {
		return response_models.BulkDeleteResult{}, utils.ErrPendingNotFound
	}
	if action.RequestedBy != requestedBy {
		return response_models.BulkDeleteResult{}, utils.ErrForbidden
	}
	if _, ok := s.pending.Take(token); !ok {
		return response_models.BulkDeleteResult{}, utils.ErrPendingNotFound
	}

	switch action.Kind {
	case ActionDeleteUsers:
		return s.accounts.BulkDeleteAccounts(ctx, action.IDs, db_models.RoleUser), nil
	case ActionDeleteStaff:
		return s.accounts.BulkDeleteAccounts(ctx, action.IDs, db_models.RoleStaff), nil
	case ActionDeletePlaces:
		return s.places.BulkDeletePlaces(ctx, action.IDs, requestedBy, role), nil
	}
	return response_models.BulkDeleteResult{}, utils.ErrUnsupportedAction
}

func (s *adminActionService) Cancel(token, requestedBy string) error {
	action, ok := s.pending.Peek(token)
	if !ok {
		return utils.ErrPendingNotFound
	}
	if action.RequestedBy != requestedBy {
		return utils.ErrForbidden
	}
	s.pending.Take(token)
	return nil
}
