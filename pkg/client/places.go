package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) ListPlaces(ctx context.Context, kind string) ([]Place, error) {
	path := "/places"
	if kind != "" {
		path += "?kind=" + url.QueryEscape(kind)
	}

	env, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	places, err := decodeList[Place](env)
	if err != nil {
		return nil, err
	}
	for i := range places {
		places[i].Images = ResolveImages(c.baseURL, places[i].Images)
	}
	return places, nil
}

func (c *Client) GetPlace(ctx context.Context, id string) (Place, error) {
	env, err := c.doJSON(ctx, http.MethodGet, "/places/"+url.PathEscape(id), nil)
	if err != nil {
		return Place{}, err
	}

	var out Place
	if err := decodeInto(env, &out); err != nil {
		return Place{}, err
	}
	out.Images = ResolveImages(c.baseURL, out.Images)
	return out, nil
}

func (c *Client) CreatePlace(ctx context.Context, in NewPlace) (Place, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":        in.Name,
		"description": in.Description,
		"kind":        in.Kind,
		"map_link":    in.MapLink,
		"latitude":    strconv.FormatFloat(in.Latitude, 'f', -1, 64),
		"longitude":   strconv.FormatFloat(in.Longitude, 'f', -1, 64),
	}
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := mw.WriteField(k, v); err != nil {
			return Place{}, fmt.Errorf("write field %s: %w", k, err)
		}
	}
	for _, img := range in.Images {
		part, err := mw.CreateFormFile("images", img.Name)
		if err != nil {
			return Place{}, fmt.Errorf("attach %s: %w", img.Name, err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return Place{}, fmt.Errorf("attach %s: %w", img.Name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return Place{}, fmt.Errorf("finish form: %w", err)
	}

	env, err := c.do(ctx, http.MethodPost, "/places", &buf, mw.FormDataContentType())
	if err != nil {
		return Place{}, err
	}

	var out Place
	if err := decodeInto(env, &out); err != nil {
		return Place{}, err
	}
	out.Images = ResolveImages(c.baseURL, out.Images)
	return out, nil
}

func (c *Client) DeletePlace(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/places/"+url.PathEscape(id), nil)
	return err
}

func (c *Client) ListReviews(ctx context.Context, placeID string) ([]Review, error) {
	env, err := c.doJSON(ctx, http.MethodGet, "/places/"+url.PathEscape(placeID)+"/reviews", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Review](env)
}

func (c *Client) AddReview(ctx context.Context, placeID string, rating int, comment string) (Review, error) {
	env, err := c.doJSON(ctx, http.MethodPost, "/places/"+url.PathEscape(placeID)+"/reviews", map[string]any{
		"rating":  rating,
		"comment": comment,
	})
	if err != nil {
		return Review{}, err
	}

	var out Review
	if err := decodeInto(env, &out); err != nil {
		return Review{}, err
	}
	return out, nil
}

func (c *Client) DeleteReview(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/reviews/"+url.PathEscape(id), nil)
	return err
}
