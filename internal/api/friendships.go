package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cannadex/cannadex-go/internal/models"
)

// Friends lists accepted friendships.
func (c *Client) Friends(ctx context.Context) ([]models.Friendship, error) {
	body, err := c.do(ctx, http.MethodGet, "/friendships", nil, reqOptions{})
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Friendship](body)
}

// FriendRequests lists incoming pending requests.
func (c *Client) FriendRequests(ctx context.Context) ([]models.Friendship, error) {
	body, err := c.do(ctx, http.MethodGet, "/friendships/requests", nil, reqOptions{})
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Friendship](body)
}

// SendFriendRequest creates a pending friendship edge. Queueable.
func (c *Client) SendFriendRequest(ctx context.Context, userID int64) (*models.Friendship, error) {
	payload := struct {
		FriendID int64 `json:"friend_id"`
	}{FriendID: userID}
	body, err := c.do(ctx, http.MethodPost, "/friendships", payload, reqOptions{queueable: true})
	if err != nil {
		return nil, err
	}
	return unwrapPtr[models.Friendship](body)
}

// AcceptFriendRequest flips a pending friendship to accepted. Queueable.
func (c *Client) AcceptFriendRequest(ctx context.Context, friendshipID int64) (*models.Friendship, error) {
	payload := struct {
		Status string `json:"status"`
	}{Status: models.FriendshipAccepted}
	body, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/friendships/%d", friendshipID), payload, reqOptions{queueable: true})
	if err != nil {
		return nil, err
	}
	return unwrapPtr[models.Friendship](body)
}

// RejectFriendRequest removes a pending or existing friendship. Queueable;
// returns nothing on success.
func (c *Client) RejectFriendRequest(ctx context.Context, friendshipID int64) error {
	body, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/friendships/%d", friendshipID), nil, reqOptions{queueable: true})
	if err != nil {
		return err
	}
	return unwrapEmpty(body)
}
