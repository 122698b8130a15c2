package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-querystring/query"

	"github.com/cannadex/cannadex-go/internal/models"
)

// CreateEncounter logs a new strain encounter. Queueable: when offline the
// payload is stored for replay by the sync coordinator.
func (c *Client) CreateEncounter(ctx context.Context, data models.CreateEncounterData) (*models.Encounter, error) {
	body, err := c.do(ctx, http.MethodPost, "/encounters", data, reqOptions{queueable: true})
	if err != nil {
		return nil, err
	}
	return unwrapPtr[models.Encounter](body)
}

// Encounters lists encounters matching the filters.
func (c *Client) Encounters(ctx context.Context, filters models.EncounterFilters) ([]models.Encounter, error) {
	q, err := query.Values(filters)
	if err != nil {
		return nil, fmt.Errorf("encode filters: %w", err)
	}
	body, err := c.do(ctx, http.MethodGet, "/encounters", nil, reqOptions{query: q})
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Encounter](body)
}

// PublicFeed lists recent public encounters.
func (c *Client) PublicFeed(ctx context.Context) ([]models.Encounter, error) {
	body, err := c.do(ctx, http.MethodGet, "/encounters/public_feed", nil, reqOptions{})
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Encounter](body)
}

// FriendsFeed lists recent encounters from the caller's friends.
func (c *Client) FriendsFeed(ctx context.Context) ([]models.Encounter, error) {
	body, err := c.do(ctx, http.MethodGet, "/encounters/friends_feed", nil, reqOptions{})
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Encounter](body)
}

// UpdateEncounter patches an encounter. Queueable.
func (c *Client) UpdateEncounter(ctx context.Context, id int64, patch models.EncounterPatch) (*models.Encounter, error) {
	body, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/encounters/%d", id), patch, reqOptions{queueable: true})
	if err != nil {
		return nil, err
	}
	return unwrapPtr[models.Encounter](body)
}

// DeleteEncounter removes an encounter. Queueable; returns nothing on
// success.
func (c *Client) DeleteEncounter(ctx context.Context, id int64) error {
	body, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/encounters/%d", id), nil, reqOptions{queueable: true})
	if err != nil {
		return err
	}
	return unwrapEmpty(body)
}
