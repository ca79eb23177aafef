package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pahunapath/internal/api/controllers"
	"pahunapath/internal/models/db_models"
	"pahunapath/internal/models/request_models"
	"pahunapath/internal/models/response_models"
	"pahunapath/internal/services"
	"pahunapath/pkg/utils"
)

type fakeAccounts struct {
	services.AccountServiceInterface
	listed      string
	bulkIDs     []string
	deletedRole string
}

func (f *fakeAccounts) Login(req request_models.LoginRequest, _ context.Context) (response_models.AccountLoginResponse, error) {
	if req.Password != "secret1" {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}
	return response_models.AccountLoginResponse{Token: "tok", Role: db_models.RoleAdmin}, nil
}

func (f *fakeAccounts) Me(_ context.Context, id string) (response_models.AccountResponse, error) {
	return response_models.AccountResponse{ID: id, Role: db_models.RoleAdmin}, nil
}

func (f *fakeAccounts) ListAccounts(_ context.Context, role string) ([]response_models.AccountResponse, error) {
	f.listed = role
	return []response_models.AccountResponse{{ID: "1", Name: "Ann", Email: "a@x.com", Role: role}}, nil
}

func (f *fakeAccounts) DeleteAccount(_ context.Context, _ uuid.UUID, role string) error {
	f.deletedRole = role
	return utils.ErrAccountNotFound
}

func (f *fakeAccounts) BulkDeleteAccounts(_ context.Context, ids []string, _ string) response_models.BulkDeleteResult {
	f.bulkIDs = ids
	return response_models.BulkDeleteResult{
		Requested: len(ids),
		Deleted:   len(ids) - 1,
		Failed:    1,
		Outcomes:  []response_models.DeleteOutcome{{ID: ids[0], Error: "account not found"}},
	}
}

type fakePlaces struct {
	services.PlaceServiceInterface
	created request_models.CreatePlaceInput
}

func (f *fakePlaces) ListPlaces(_ context.Context, kind string) ([]response_models.Place, error) {
	if kind == "bogus" {
		return nil, utils.ErrInvalidPlaceKind
	}
	return []response_models.Place{{ID: "p1", Name: "Phewa", Images: []string{}}}, nil
}

func (f *fakePlaces) CreatePlace(_ context.Context, in request_models.CreatePlaceInput) (response_models.Place, error) {
	f.created = in
	return response_models.Place{ID: "p2", Name: in.Name}, nil
}

type fakeReviews struct {
	services.ReviewServiceInterface
}

type fakeActions struct {
	services.AdminActionService
	stagedBy string
}

func (f *fakeActions) Stage(_ context.Context, kind string, ids []string, by string) (response_models.PendingAction, error) {
	f.stagedBy = by
	return response_models.PendingAction{Token: "abc", Kind: kind, IDs: ids, Description: "Delete 1 user: Ann <a@x.com>"}, nil
}

func (f *fakeActions) Cancel(token, _ string) error {
	if token != "abc" {
		return utils.ErrPendingNotFound
	}
	return nil
}

type testEnv struct {
	router   *gin.Engine
	issuer   *utils.TokenIssuer
	accounts *fakeAccounts
	places   *fakePlaces
	actions  *fakeActions
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		issuer:   utils.NewTokenIssuer("secret", time.Hour),
		accounts: &fakeAccounts{},
		places:   &fakePlaces{},
		actions:  &fakeActions{},
	}
	ctrl := Controllers{
		Accounts: controllers.NewAccountController(env.accounts),
		Places:   controllers.NewPlacesController(env.places, &fakeReviews{}),
		Admin:    controllers.NewAdminController(env.accounts, env.actions, nil),
		Media:    controllers.NewMediaController(nil),
	}
	env.router = NewRouter(ctrl, env.issuer, nil)
	return env
}

func (e *testEnv) token(t *testing.T, role string) (string, string) {
	t.Helper()
	id := uuid.New()
	tok, err := e.issuer.CreateToken(id, role)
	require.NoError(t, err)
	return tok, id.String()
}

func (e *testEnv) do(req *http.Request, token string) (*httptest.ResponseRecorder, utils.APIResponse) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	var body utils.APIResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func jsonRequest(method, path string, v any) *http.Request {
	b, _ := json.Marshal(v)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLoginValidationAndFailure(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(jsonRequest(http.MethodPost, "/accounts/login", map[string]string{"email": "nope"}), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "password")

	w, body = env.do(jsonRequest(http.MethodPost, "/accounts/login", map[string]string{"email": "a@x.com", "password": "wrong12"}), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", body.Message)
	assert.NotEmpty(t, body.TraceID)

	w, _ = env.do(jsonRequest(http.MethodPost, "/accounts/login", map[string]string{"email": "a@x.com", "password": "secret1"}), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.do(httptest.NewRequest(http.MethodGet, "/admin/users", nil), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	staff, _ := env.token(t, db_models.RoleStaff)
	w, _ = env.do(httptest.NewRequest(http.MethodGet, "/admin/users", nil), staff)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin, _ := env.token(t, db_models.RoleAdmin)
	w, body := env.do(httptest.NewRequest(http.MethodGet, "/admin/staff", nil), admin)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, db_models.RoleStaff, env.accounts.listed)
	assert.Equal(t, "success", body.Status)
}

func TestDeleteUserNotFound(t *testing.T) {
	env := newTestEnv(t)
	admin, _ := env.token(t, db_models.RoleAdmin)

	w, _ := env.do(httptest.NewRequest(http.MethodDelete, "/admin/users/"+uuid.NewString(), nil), admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, db_models.RoleUser, env.accounts.deletedRole)

	w, body := env.do(httptest.NewRequest(http.MethodDelete, "/admin/users/not-an-id", nil), admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body.Errors, "id")
}

func TestBulkDeleteUsersReportsOutcomes(t *testing.T) {
	env := newTestEnv(t)
	admin, _ := env.token(t, db_models.RoleAdmin)
	ids := []string{uuid.NewString(), "not-a-uuid"}

	w, body := env.do(jsonRequest(http.MethodPost, "/admin/users/bulk-delete", map[string]any{"ids": ids}), admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ids, env.accounts.bulkIDs)
	assert.Equal(t, "Deleted 1 record(s), 1 failed", body.Message)

	w, _ = env.do(jsonRequest(http.MethodPost, "/admin/users/bulk-delete", map[string]any{"ids": []string{}}), admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStageAndCancelPendingAction(t *testing.T) {
	env := newTestEnv(t)
	admin, adminID := env.token(t, db_models.RoleAdmin)

	w, body := env.do(jsonRequest(http.MethodPost, "/admin/pending", map[string]any{
		"kind": "delete_users",
		"ids":  []string{uuid.NewString()},
	}), admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, adminID, env.actions.stagedBy)
	data := body.Data.(map[string]any)
	assert.Equal(t, "abc", data["token"])

	w, _ = env.do(httptest.NewRequest(http.MethodDelete, "/admin/pending/abc", nil), admin)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = env.do(httptest.NewRequest(http.MethodDelete, "/admin/pending/zzz", nil), admin)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = env.do(jsonRequest(http.MethodPost, "/admin/pending", map[string]any{
		"kind": "drop_tables",
		"ids":  []string{uuid.NewString()},
	}), admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPlacesKindFilter(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.do(httptest.NewRequest(http.MethodGet, "/places", nil), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, body := env.do(httptest.NewRequest(http.MethodGet, "/places?kind=bogus", nil), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body.Errors, "kind")
}

func TestCreatePlaceMultipart(t *testing.T) {
	env := newTestEnv(t)
	user, userID := env.token(t, db_models.RoleUser)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Phewa Lake"))
	require.NoError(t, mw.WriteField("kind", "place"))
	require.NoError(t, mw.WriteField("latitude", "28.21"))
	require.NoError(t, mw.WriteField("longitude", "83.95"))
	part, err := mw.CreateFormFile("images", "lake.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n rest of png"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/places", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w, _ := env.do(req, user)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Phewa Lake", env.places.created.Name)
	assert.Equal(t, userID, env.places.created.AuthorID.String())
	require.Len(t, env.places.created.Images, 1)
	assert.Equal(t, "image/png", env.places.created.Images[0].MimeType)
}

func TestCreatePlaceRequiresName(t *testing.T) {
	env := newTestEnv(t)
	user, _ := env.token(t, db_models.RoleUser)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("description", "no name"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/places", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w, body := env.do(req, user)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body.Errors, "name")
}
