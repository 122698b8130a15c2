package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cannadex/cannadex-go/internal/models"
)

// Battle operations issue state-transition requests and reflect the
// server's resulting resource. No battle logic (round scoring, winner
// determination, expiry) runs client-side, and none of these calls are
// queueable: transitions expire server-side, so replaying a stale one is
// worse than failing fast.

// CreateBattle challenges an opponent with the caller's strain lineup.
func (c *Client) CreateBattle(ctx context.Context, data models.CreateBattleData) (*models.Battle, error) {
	body, err := c.do(ctx, http.MethodPost, "/battles", data, reqOptions{})
	if err != nil {
		return nil, err
	}
	return unwrapPtr[models.Battle](body)
}

// Battles lists the caller's battles, optionally filtered by status.
func (c *Client) Battles(ctx context.Context, status string) ([]models.Battle, error) {
	path := "/battles"
	if status != "" {
		path = "/battles/" + status
	}
	body, err := c.do(ctx, http.MethodGet, path, nil, reqOptions{})
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Battle](body)
}

// AcceptBattle accepts a pending challenge with the caller's strain lineup.
func (c *Client) AcceptBattle(ctx context.Context, battleID int64, strainIDs []int64) (*models.Battle, error) {
	payload := struct {
		StrainIDs []int64 `json:"strain_ids"`
	}{StrainIDs: strainIDs}
	body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/battles/%d/accept", battleID), payload, reqOptions{})
	if err != nil {
		return nil, err
	}
	return unwrapPtr[models.Battle](body)
}

// DeclineBattle declines a pending challenge.
func (c *Client) DeclineBattle(ctx context.Context, battleID int64) (*models.Battle, error) {
	body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/battles/%d/decline", battleID), nil, reqOptions{})
	if err != nil {
		return nil, err
	}
	return unwrapPtr[models.Battle](body)
}

// CancelBattle withdraws a challenge the caller created. Returns nothing on
// success.
func (c *Client) CancelBattle(ctx context.Context, battleID int64) error {
	body, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/battles/%d/cancel", battleID), nil, reqOptions{})
	if err != nil {
		return err
	}
	return unwrapEmpty(body)
}
