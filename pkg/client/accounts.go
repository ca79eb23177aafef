package client

import (
	"context"
	"net/http"
)

func (c *Client) Register(ctx context.Context, name, email, password string) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/accounts/register", map[string]string{
		"display_name": name,
		"email":        email,
		"password":     password,
	})
	return err
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	env, err := c.doJSON(ctx, http.MethodPost, "/accounts/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return LoginResult{}, err
	}

	var out LoginResult
	if err := decodeInto(env, &out); err != nil {
		return LoginResult{}, err
	}
	return out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/accounts/logout", nil)
	return err
}

// Me returns the account behind the client's token as the server sees it.
func (c *Client) Me(ctx context.Context) (Account, error) {
	env, err := c.doJSON(ctx, http.MethodGet, "/accounts/me", nil)
	if err != nil {
		return Account{}, err
	}

	var out Account
	if err := decodeInto(env, &out); err != nil {
		return Account{}, err
	}
	return out, nil
}

// Verify resolves token to its account without changing c.
func (c *Client) Verify(ctx context.Context, token string) (Account, error) {
	return c.WithSession(token).Me(ctx)
}
