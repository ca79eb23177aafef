package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pahunapath/internal/config"
	"pahunapath/internal/guard"
	"pahunapath/pkg/client"
)

type fakeAPI struct {
	mu      sync.Mutex
	role    string
	users   []map[string]any
	deleted []string
	bulk    [][]string
	missing map[string]bool
}

func newFakeAPI(role string) *fakeAPI {
	return &fakeAPI{
		role: role,
		users: []map[string]any{
			{"id": "u1", "name": "Ann", "email": "ann@x.com", "role": "user", "created_at": "2025-01-03T10:00:00+05:45"},
			{"id": "u2", "name": "Bob", "email": "bob@x.com", "role": "user", "created_at": "2025-01-01T10:00:00+05:45"},
			{"id": "u3", "name": "Anish", "email": "anish@pokhara.np", "role": "user", "created_at": "2025-01-02T10:00:00+05:45"},
		},
		missing: map[string]bool{},
	}
}

func reply(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]any{"status": "success", "code": status, "data": data}
	if status >= 400 {
		body = map[string]any{"status": "error", "code": status, "message": data}
	}
	_ = json.NewEncoder(w).Encode(body)
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer tok" {
				reply(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			next(w, r)
		}
	}

	mux.HandleFunc("POST /accounts/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret1" {
			reply(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		reply(w, http.StatusOK, map[string]any{"token": "tok", "role": f.role, "account_id": "me"})
	})
	mux.HandleFunc("POST /accounts/logout", authed(func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, nil)
	}))
	mux.HandleFunc("GET /accounts/me", authed(func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, map[string]any{"id": "me", "name": "Root", "email": "root@pahuna.np", "role": f.role})
	}))
	mux.HandleFunc("GET /admin/users", authed(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		reply(w, http.StatusOK, f.users)
	}))
	mux.HandleFunc("DELETE /admin/users/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		id := r.PathValue("id")
		f.deleted = append(f.deleted, id)
		if f.missing[id] {
			reply(w, http.StatusNotFound, "Account not found")
			return
		}
		reply(w, http.StatusOK, nil)
	}))
	mux.HandleFunc("POST /admin/users/bulk-delete", authed(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		var body struct {
			IDs []string `json:"ids"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.bulk = append(f.bulk, body.IDs)

		var outcomes []map[string]any
		failed := 0
		for _, id := range body.IDs {
			if f.missing[id] {
				failed++
				outcomes = append(outcomes, map[string]any{"id": id, "deleted": false, "error": "account not found"})
				continue
			}
			outcomes = append(outcomes, map[string]any{"id": id, "deleted": true})
		}
		reply(w, http.StatusOK, map[string]any{
			"requested": len(body.IDs), "deleted": len(body.IDs) - failed, "failed": failed, "outcomes": outcomes,
		})
	}))
	return mux
}

type harness struct {
	api         *fakeAPI
	sessionPath string
	out         *bytes.Buffer
	url         string
}

func newHarness(t *testing.T, role string) *harness {
	t.Helper()
	api := newFakeAPI(role)
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	return &harness{
		api:         api,
		sessionPath: filepath.Join(t.TempDir(), "session.json"),
		out:         &bytes.Buffer{},
		url:         srv.URL,
	}
}

func (h *harness) run(stdin string, args ...string) error {
	h.out.Reset()
	app := NewApp(config.CLIConfig{APIURL: h.url, HTTPTimeoutSeconds: 5}, h.sessionPath, strings.NewReader(stdin), h.out)
	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(h.out)
	root.SetErr(h.out)
	return root.Execute()
}

func (h *harness) login(t *testing.T) {
	t.Helper()
	require.NoError(t, h.run("", "login", "--email", "root@pahuna.np", "--password", "secret1"))
}

func TestLoginSavesSessionAndWhoami(t *testing.T) {
	h := newHarness(t, "admin")

	h.login(t)
	assert.Contains(t, h.out.String(), "Logged in as root@pahuna.np (admin)")

	sess, err := guard.LoadSession(h.sessionPath)
	require.NoError(t, err)
	assert.Equal(t, "tok", sess.Token)

	require.NoError(t, h.run("", "whoami"))
	assert.Contains(t, h.out.String(), "role=admin")
}

func TestLoginFailureShowsServerMessage(t *testing.T) {
	h := newHarness(t, "admin")

	err := h.run("", "login", "--email", "root@pahuna.np", "--password", "nope")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestCommandsRequireSession(t *testing.T) {
	h := newHarness(t, "admin")

	err := h.run("", "users", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestStaffCannotManageUsers(t *testing.T) {
	h := newHarness(t, "staff")
	h.login(t)

	err := h.run("", "users", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestUsersListFiltersAndSorts(t *testing.T) {
	h := newHarness(t, "admin")
	h.login(t)

	require.NoError(t, h.run("", "users", "list", "--search", "an", "--sort", "created", "--desc"))
	out := h.out.String()
	assert.Contains(t, out, "2 of 3 users")
	assert.NotContains(t, out, "Bob")
	assert.Less(t, strings.Index(out, "Ann"), strings.Index(out, "Anish"))
}

func TestUsersListRejectsUnknownSort(t *testing.T) {
	h := newHarness(t, "admin")
	h.login(t)

	assert.Error(t, h.run("", "users", "list", "--sort", "rating"))
}

func TestDeleteSingleUserAfterConfirm(t *testing.T) {
	h := newHarness(t, "admin")
	h.login(t)

	require.NoError(t, h.run("y\n", "users", "delete", "u2"))
	assert.Contains(t, h.out.String(), "Delete user Bob <bob@x.com>?")
	assert.Contains(t, h.out.String(), "Deleted 1 of 1")
	assert.Equal(t, []string{"u2"}, h.api.deleted)
	assert.Empty(t, h.api.bulk)
}

func TestDeleteCancelledMakesNoCalls(t *testing.T) {
	h := newHarness(t, "admin")
	h.login(t)

	require.NoError(t, h.run("n\n", "users", "delete", "u1", "u2"))
	assert.Contains(t, h.out.String(), "Cancelled")
	assert.Empty(t, h.api.deleted)
	assert.Empty(t, h.api.bulk)
}

func TestDeleteAllMatchingReportsPartialFailure(t *testing.T) {
	h := newHarness(t, "admin")
	h.login(t)
	h.api.missing["u3"] = true

	err := h.run("", "users", "delete", "--all-matching", "--search", "an", "--yes")
	require.Error(t, err)
	assert.Equal(t, "1 of 2 deletions failed", err.Error())

	require.Len(t, h.api.bulk, 1)
	assert.ElementsMatch(t, []string{"u1", "u3"}, h.api.bulk[0])
	assert.Contains(t, h.out.String(), "Deleted 1 of 2, 1 failed")
	assert.Contains(t, h.out.String(), "u3: account not found")
}

func TestDeleteUnknownID(t *testing.T) {
	h := newHarness(t, "admin")
	h.login(t)

	err := h.run("", "users", "delete", "nope", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown id nope")
	assert.Empty(t, h.api.deleted)
}

func TestAllMatchingNeedsSearch(t *testing.T) {
	h := newHarness(t, "admin")
	h.login(t)

	err := h.run("", "users", "delete", "--all-matching", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--search")
}

func TestLogoutClearsSession(t *testing.T) {
	h := newHarness(t, "admin")
	h.login(t)

	require.NoError(t, h.run("", "logout"))
	_, err := guard.LoadSession(h.sessionPath)
	assert.ErrorIs(t, err, guard.ErrNoSession)
}

func TestFriendlyErrors(t *testing.T) {
	assert.EqualError(t, friendly(guard.ErrNoSession), "not logged in: run `pahuna-admin login` first")
	assert.EqualError(t,
		friendly(&client.APIError{Status: http.StatusForbidden, Message: "Forbidden: insufficient permissions"}),
		"access denied: Forbidden: insufficient permissions")
	assert.EqualError(t,
		friendly(&client.APIError{Status: http.StatusBadRequest, Message: "Validation failed", Fields: map[string]string{"name": "is required", "email": "must be a valid email"}}),
		"Validation failed (email: must be a valid email; name: is required)")
}
