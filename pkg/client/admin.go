package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Pending action kinds accepted by StageAction.
const (
	ActionDeleteUsers  = "delete_users"
	ActionDeleteStaff  = "delete_staff"
	ActionDeletePlaces = "delete_places"
)

// ListUsers accepts both the {data: [...]} and the older {users: [...]}
// response shapes.
func (c *Client) ListUsers(ctx context.Context) ([]Account, error) {
	return c.listAccounts(ctx, "/admin/users")
}

func (c *Client) ListStaff(ctx context.Context) ([]Account, error) {
	return c.listAccounts(ctx, "/admin/staff")
}

func (c *Client) listAccounts(ctx context.Context, path string) ([]Account, error) {
	env, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Account](env)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(id), nil)
	return err
}

func (c *Client) DeleteStaff(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/admin/staff/"+url.PathEscape(id), nil)
	return err
}

func (c *Client) BulkDeleteUsers(ctx context.Context, ids []string) (BulkResult, error) {
	return c.bulkDelete(ctx, "/admin/users/bulk-delete", ids)
}

func (c *Client) BulkDeleteStaff(ctx context.Context, ids []string) (BulkResult, error) {
	return c.bulkDelete(ctx, "/admin/staff/bulk-delete", ids)
}

func (c *Client) bulkDelete(ctx context.Context, path string, ids []string) (BulkResult, error) {
	env, err := c.doJSON(ctx, http.MethodPost, path, map[string][]string{"ids": ids})
	if err != nil {
		return BulkResult{}, err
	}

	var out BulkResult
	if err := decodeInto(env, &out); err != nil {
		return BulkResult{}, err
	}
	return out, nil
}

func (c *Client) CreateStaff(ctx context.Context, name, email, password string) (Account, error) {
	env, err := c.doJSON(ctx, http.MethodPost, "/admin/staff", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return Account{}, err
	}

	var out Account
	if err := decodeInto(env, &out); err != nil {
		return Account{}, err
	}
	return out, nil
}

// StageAction asks the server to hold a bulk delete until it is confirmed.
func (c *Client) StageAction(ctx context.Context, kind string, ids []string) (PendingAction, error) {
	env, err := c.doJSON(ctx, http.MethodPost, "/admin/pending", map[string]any{
		"kind": kind,
		"ids":  ids,
	})
	if err != nil {
		return PendingAction{}, err
	}

	var out PendingAction
	if err := decodeInto(env, &out); err != nil {
		return PendingAction{}, err
	}
	return out, nil
}

func (c *Client) ConfirmAction(ctx context.Context, token string) (BulkResult, error) {
	env, err := c.doJSON(ctx, http.MethodPost, "/admin/pending/"+url.PathEscape(token)+"/confirm", nil)
	if err != nil {
		return BulkResult{}, err
	}

	var out BulkResult
	if err := decodeInto(env, &out); err != nil {
		return BulkResult{}, err
	}
	return out, nil
}

func (c *Client) CancelAction(ctx context.Context, token string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/admin/pending/"+url.PathEscape(token), nil)
	return err
}

func (c *Client) Dashboard(ctx context.Context, days int) (Dashboard, error) {
	path := "/admin/dashboard"
	if days > 0 {
		path += "?days=" + strconv.Itoa(days)
	}

	env, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return Dashboard{}, err
	}

	var out Dashboard
	if err := decodeInto(env, &out); err != nil {
		return Dashboard{}, err
	}
	return out, nil
}
