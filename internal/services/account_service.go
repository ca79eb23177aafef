package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pahunapath/internal/models/db_models"
	"pahunapath/internal/models/request_models"
	"pahunapath/internal/models/response_models"
	"pahunapath/internal/repositories"
	"pahunapath/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (response_models.AccountLoginResponse, error)
	Logout(ctx context.Context, claims *utils.Claims) error
	CreateAccount(request request_models.SignUpRequest, ctx context.Context) error
	Me(ctx context.Context, id string) (response_models.AccountResponse, error)

	ListAccounts(ctx context.Context, role string) ([]response_models.AccountResponse, error)
	CreateStaff(ctx context.Context, request request_models.CreateStaffRequest) (response_models.AccountResponse, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, role string) error
	BulkDeleteAccounts(ctx context.Context, ids []string, role string) response_models.BulkDeleteResult
	DescribeAccounts(ctx context.Context, ids []string, role string) (string, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenIssuer
	sessions    SessionStore
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenIssuer, sessions SessionStore) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		sessions:    sessions,
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (response_models.AccountLoginResponse, error) {
	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, strings.ToLower(request.Email))
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		return response_models.AccountLoginResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID, account.Role)
	if err != nil {
		slog.Error("token generation failed", "error", err)
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	slog.Debug("login completed", "account_id", account.ID, "took", time.Since(startTime))

	return response_models.AccountLoginResponse{
		Token:     token,
		Role:      account.Role,
		AccountID: account.ID.String(),
		ExpiresIn: int64(a.tokens.TTL().Seconds()),
	}, nil
}

// Logout revokes the token until it would have expired anyway.
func (a *AccountService) Logout(ctx context.Context, claims *utils.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := a.sessions.Revoke(ctx, claims.ID, ttl); err != nil {
		slog.Error("revoke token failed", "error", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) CreateAccount(request request_models.SignUpRequest, ctx context.Context) error {
	_, err := a.createAccount(ctx, request.DisplayName, request.Email, request.Password, db_models.RoleUser)
	return err
}

func (a *AccountService) CreateStaff(ctx context.Context, request request_models.CreateStaffRequest) (response_models.AccountResponse, error) {
	account, err := a.createAccount(ctx, request.Name, request.Email, request.Password, db_models.RoleStaff)
	if err != nil {
		return response_models.AccountResponse{}, err
	}
	return toAccountResponse(*account), nil
}

func (a *AccountService) createAccount(ctx context.Context, name, email, password, role string) (*db_models.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		slog.Error("account lookup failed", "error", err)
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return nil, err
	}
	if err != nil {
		slog.Error("hash password failed", "error", err)
		return nil, utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		// staff accounts are created by an admin and need no email check
		Verified: role != db_models.RoleUser,
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		slog.Error("insert account failed", "error", err)
		return nil, utils.ErrDatabaseError
	}

	return newAccount, nil
}

func (a *AccountService) Me(ctx context.Context, id string) (response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		slog.Error("account lookup failed", "error", err)
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AccountResponse{}, utils.ErrAccountNotFound
	}
	return toAccountResponse(*account), nil
}

func (a *AccountService) ListAccounts(ctx context.Context, role string) ([]response_models.AccountResponse, error) {
	accounts, err := a.accountRepo.ListByRole(ctx, role)
	if err != nil {
		slog.Error("list accounts failed", "role", role, "error", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, toAccountResponse(acc))
	}
	return out, nil
}

func (a *AccountService) DeleteAccount(ctx context.Context, id uuid.UUID, role string) error {
	err := a.accountRepo.DeleteCascade(ctx, id, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrAccountNotFound
		}
		slog.Error("delete account failed", "account_id", id, "error", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) BulkDeleteAccounts(ctx context.Context, ids []string, role string) response_models.BulkDeleteResult {
	return bulkDelete(ctx, ids, func(ctx context.Context, id uuid.UUID) error {
		return a.DeleteAccount(ctx, id, role)
	})
}

// DescribeAccounts renders a confirmation line such as
// "Delete 2 users: Ann <a@x.com>, Bob <b@x.com>".
func (a *AccountService) DescribeAccounts(ctx context.Context, ids []string, role string) (string, error) {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			labels = append(labels, id+" (invalid id)")
			continue
		}
		account, err := a.accountRepo.FindById(ctx, id)
		if err != nil {
			return "", utils.ErrDatabaseError
		}
		if account == nil || account.Role != role {
			labels = append(labels, id+" (missing)")
			continue
		}
		labels = append(labels, account.Name+" <"+account.Email+">")
	}
	return describe("Delete", len(ids), role, labels), nil
}

func toAccountResponse(acc db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:        acc.ID.String(),
		Name:      acc.Name,
		Email:     acc.Email,
		Role:      acc.Role,
		Verified:  acc.Verified,
		CreatedAt: utils.FormatRFC3339(acc.CreatedTime()),
	}
}
