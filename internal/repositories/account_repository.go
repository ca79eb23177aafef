package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pahunapath/internal/models/db_models"
)

type AccountRepository interface {
	InsertTx(account *db_models.Account, ctx context.Context) error
	FindById(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	ListByRole(ctx context.Context, role string) ([]db_models.Account, error)

	// DeleteCascade hard-deletes the account together with its places, the
	// reviews on those places and the reviews it wrote, soft-deleted rows
	// included. Ratings of places that lose a
	// review are recomputed. Returns gorm.ErrRecordNotFound when no account
	// with that id and role exists.
	DeleteCascade(ctx context.Context, id uuid.UUID, role string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) InsertTx(account *db_models.Account, ctx context.Context) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) ListByRole(ctx context.Context, role string) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).
		Where("role = ?", role).
		Order("created_at DESC").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (a *accountRepository) DeleteCascade(ctx context.Context, id uuid.UUID, role string) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account db_models.Account
		if err := tx.First(&account, "id = ? AND role = ?", id, role).Error; err != nil {
			return err
		}

		// soft-deleted places and reviews still reference the account, so
		// every child row is removed with Unscoped
		var placeIDs []uuid.UUID
		if err := tx.Unscoped().Model(&db_models.Place{}).Where("author_id = ?", id).Pluck("id", &placeIDs).Error; err != nil {
			return err
		}

		// live places reviewed by this account that survive the cascade
		var touched []uuid.UUID
		q := tx.Model(&db_models.Review{}).Distinct("place_id").Where("author_id = ?", id)
		if len(placeIDs) > 0 {
			q = q.Where("place_id NOT IN ?", placeIDs)
		}
		if err := q.Pluck("place_id", &touched).Error; err != nil {
			return err
		}

		if len(placeIDs) > 0 {
			if err := tx.Unscoped().Where("place_id IN ?", placeIDs).Delete(&db_models.Review{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("id IN ?", placeIDs).Delete(&db_models.Place{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("author_id = ?", id).Delete(&db_models.Review{}).Error; err != nil {
			return err
		}
		for _, placeID := range touched {
			if err := refreshPlaceRating(tx, placeID); err != nil {
				return err
			}
		}

		return tx.Unscoped().Delete(&account).Error
	})
}
