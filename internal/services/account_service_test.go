package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pahunapath/internal/models/db_models"
	"pahunapath/internal/models/request_models"
	"pahunapath/pkg/utils"
)

func newTestAccountService(repo *stubAccountRepo) (AccountServiceInterface, *stubSessions, *utils.TokenIssuer) {
	sessions := &stubSessions{}
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	return NewAccountService(repo, tokens, sessions), sessions, tokens
}

func TestCreateAccountAndLogin(t *testing.T) {
	repo := newStubAccountRepo()
	svc, _, tokens := newTestAccountService(repo)
	ctx := context.Background()

	err := svc.CreateAccount(request_models.SignUpRequest{
		DisplayName: "Ann",
		Email:       "Ann@X.com",
		Password:    "secret1",
	}, ctx)
	require.NoError(t, err)

	login, err := svc.Login(request_models.LoginRequest{Email: "ann@x.com", Password: "secret1"}, ctx)
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleUser, login.Role)
	assert.Equal(t, int64(3600), login.ExpiresIn)

	claims, err := tokens.ValidateToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, login.AccountID, claims.UserID)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := newStubAccountRepo(&db_models.Account{Email: "ann@x.com", Role: db_models.RoleUser})
	svc, _, _ := newTestAccountService(repo)

	err := svc.CreateAccount(request_models.SignUpRequest{DisplayName: "Ann", Email: "ann@x.com", Password: "secret1"}, context.Background())
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)
	repo := newStubAccountRepo(&db_models.Account{Email: "ann@x.com", PasswordHash: hash, Role: db_models.RoleUser})
	svc, _, _ := newTestAccountService(repo)

	_, err = svc.Login(request_models.LoginRequest{Email: "ann@x.com", Password: "nope123"}, context.Background())
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(request_models.LoginRequest{Email: "bob@x.com", Password: "secret1"}, context.Background())
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, sessions, tokens := newTestAccountService(newStubAccountRepo())

	token, err := tokens.CreateToken(uuid.New(), db_models.RoleAdmin)
	require.NoError(t, err)
	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims))
	ttl, ok := sessions.revoked[claims.ID]
	require.True(t, ok)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)
}

func TestCreateStaffIsVerified(t *testing.T) {
	repo := newStubAccountRepo()
	svc, _, _ := newTestAccountService(repo)

	staff, err := svc.CreateStaff(context.Background(), request_models.CreateStaffRequest{
		Name: "Sita", Email: "sita@x.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleStaff, staff.Role)
	assert.True(t, staff.Verified)
	assert.NotEmpty(t, staff.CreatedAt)
}

func TestListAccountsFiltersRole(t *testing.T) {
	repo := newStubAccountRepo(
		&db_models.Account{Name: "Ann", Email: "a@x.com", Role: db_models.RoleUser},
		&db_models.Account{Name: "Sita", Email: "s@x.com", Role: db_models.RoleStaff},
	)
	svc, _, _ := newTestAccountService(repo)

	users, err := svc.ListAccounts(context.Background(), db_models.RoleUser)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Ann", users[0].Name)
}

func TestDeleteAccountRoleMismatchIsNotFound(t *testing.T) {
	staff := &db_models.Account{Name: "Sita", Email: "s@x.com", Role: db_models.RoleStaff}
	svc, _, _ := newTestAccountService(newStubAccountRepo(staff))

	err := svc.DeleteAccount(context.Background(), staff.ID, db_models.RoleUser)
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestBulkDeleteAccountsCollectsOutcomes(t *testing.T) {
	ann := &db_models.Account{Name: "Ann", Email: "a@x.com", Role: db_models.RoleUser}
	bob := &db_models.Account{Name: "Bob", Email: "b@x.com", Role: db_models.RoleUser}
	cat := &db_models.Account{Name: "Cat", Email: "c@x.com", Role: db_models.RoleUser}
	repo := newStubAccountRepo(ann, bob, cat)
	repo.failOn[bob.ID] = errBoom
	svc, _, _ := newTestAccountService(repo)

	res := svc.BulkDeleteAccounts(context.Background(), []string{ann.ID.String(), bob.ID.String(), "not-a-uuid", cat.ID.String()}, db_models.RoleUser)

	assert.Equal(t, 4, res.Requested)
	assert.Equal(t, 2, res.Deleted)
	assert.Equal(t, 2, res.Failed)
	assert.True(t, res.Outcomes[0].Deleted)
	assert.False(t, res.Outcomes[1].Deleted)
	assert.Equal(t, "invalid id", res.Outcomes[2].Error)
	assert.True(t, res.Outcomes[3].Deleted)
	assert.Equal(t, []uuid.UUID{ann.ID, cat.ID}, repo.deleted)
}

func TestDescribeAccounts(t *testing.T) {
	ann := &db_models.Account{Name: "Ann", Email: "a@x.com", Role: db_models.RoleUser}
	svc, _, _ := newTestAccountService(newStubAccountRepo(ann))

	desc, err := svc.DescribeAccounts(context.Background(), []string{ann.ID.String()}, db_models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "Delete 1 user: Ann <a@x.com>", desc)

	desc, err = svc.DescribeAccounts(context.Background(), []string{ann.ID.String(), "bogus"}, db_models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "Delete 2 users: Ann <a@x.com>, bogus (invalid id)", desc)
}
