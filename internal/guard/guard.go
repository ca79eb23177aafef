// Package guard decides whether a session may open an admin or staff screen.
package guard

import (
	"context"
	"errors"
	"slices"

	"pahunapath/pkg/client"
)

var (
	ErrNoSession = errors.New("not logged in")
	ErrForbidden = errors.New("your account is not allowed to do this")
)

const (
	RoleUser  = "user"
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// Verifier resolves a token to the account the server associates with it.
type Verifier interface {
	Verify(ctx context.Context, token string) (client.Account, error)
}

type Guard struct {
	verifier Verifier
}

func New(verifier Verifier) *Guard {
	return &Guard{verifier: verifier}
}

// Allow revalidates the session with the server and checks the returned role
// against roles. The locally stored role is never trusted. A token the
// server rejects, or one whose account no longer exists, is ErrNoSession.
func (g *Guard) Allow(ctx context.Context, s *Session, roles ...string) (client.Account, error) {
	if s == nil || s.Token == "" {
		return client.Account{}, ErrNoSession
	}

	acc, err := g.verifier.Verify(ctx, s.Token)
	if err != nil {
		if apiErr, ok := client.AsAPIError(err); ok && (apiErr.Unauthorized() || apiErr.NotFound()) {
			return client.Account{}, ErrNoSession
		}
		return client.Account{}, err
	}

	if !slices.Contains(roles, acc.Role) {
		return acc, ErrForbidden
	}
	return acc, nil
}

func (g *Guard) RequireAdmin(ctx context.Context, s *Session) (client.Account, error) {
	return g.Allow(ctx, s, RoleAdmin)
}

func (g *Guard) RequireStaff(ctx context.Context, s *Session) (client.Account, error) {
	return g.Allow(ctx, s, RoleStaff, RoleAdmin)
}
