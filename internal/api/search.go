package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cannadex/cannadex-go/internal/models"
)

// GlobalSearch searches across users, strains, and encounters. The optional
// type narrows the search to one resource kind.
func (c *Client) GlobalSearch(ctx context.Context, q, resourceType string) (*models.SearchResults, error) {
	params := url.Values{"q": {q}}
	if resourceType != "" {
		params.Set("type", resourceType)
	}
	body, err := c.do(ctx, http.MethodGet, "/search", nil, reqOptions{query: params})
	if err != nil {
		return nil, err
	}
	return unwrapPtr[models.SearchResults](body)
}

// UserStats fetches the caller's dashboard aggregate.
func (c *Client) UserStats(ctx context.Context) (*models.UserStats, error) {
	body, err := c.do(ctx, http.MethodGet, "/stats/user", nil, reqOptions{})
	if err != nil {
		return nil, err
	}
	return unwrapPtr[models.UserStats](body)
}

// CommunityStats fetches the global dashboard aggregate.
func (c *Client) CommunityStats(ctx context.Context) (*models.CommunityStats, error) {
	body, err := c.do(ctx, http.MethodGet, "/stats/community", nil, reqOptions{})
	if err != nil {
		return nil, err
	}
	return unwrapPtr[models.CommunityStats](body)
}
