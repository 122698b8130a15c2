package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cannadex/cannadex-go/internal/models"
)

// Achievements lists the caller's achievements with progress state.
func (c *Client) Achievements(ctx context.Context) ([]models.Achievement, error) {
	body, err := c.do(ctx, http.MethodGet, "/achievements", nil, reqOptions{})
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Achievement](body)
}

// ClaimAchievement claims an unlocked achievement's reward. Queueable:
// claiming is idempotent server-side.
func (c *Client) ClaimAchievement(ctx context.Context, achievementID int64) (*models.Achievement, error) {
	body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/achievements/%d/claim", achievementID), nil, reqOptions{queueable: true})
	if err != nil {
		return nil, err
	}
	return unwrapPtr[models.Achievement](body)
}
