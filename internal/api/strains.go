package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-querystring/query"

	"github.com/cannadex/cannadex-go/internal/models"
)

// Strains lists catalog entries matching the filters. Caching is the
// caller's concern: pair with storage.SetCachedStrains when appropriate.
func (c *Client) Strains(ctx context.Context, filters models.StrainFilters) ([]models.Strain, error) {
	q, err := query.Values(filters)
	if err != nil {
		return nil, fmt.Errorf("encode filters: %w", err)
	}
	body, err := c.do(ctx, http.MethodGet, "/strains", nil, reqOptions{query: q})
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Strain](body)
}

// Strain fetches a single catalog entry.
func (c *Client) Strain(ctx context.Context, id int64) (*models.Strain, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/strains/%d", id), nil, reqOptions{})
	if err != nil {
		return nil, err
	}
	return unwrapPtr[models.Strain](body)
}

// PopularStrains lists the currently trending strains.
func (c *Client) PopularStrains(ctx context.Context) ([]models.Strain, error) {
	body, err := c.do(ctx, http.MethodGet, "/strains/popular", nil, reqOptions{})
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Strain](body)
}

// SearchStrains runs a free-text strain search.
func (c *Client) SearchStrains(ctx context.Context, q string) ([]models.Strain, error) {
	body, err := c.do(ctx, http.MethodGet, "/strains/search", nil, reqOptions{query: url.Values{"q": {q}}})
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Strain](body)
}

// SimilarStrains lists strains the backend considers close to the given one.
func (c *Client) SimilarStrains(ctx context.Context, strainID int64) ([]models.Strain, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/strains/%d/similar", strainID), nil, reqOptions{})
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Strain](body)
}

// Categories lists all strain categories.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	body, err := c.do(ctx, http.MethodGet, "/categories", nil, reqOptions{})
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Category](body)
}
