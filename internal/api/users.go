package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cannadex/cannadex-go/internal/models"
)

// CurrentUser fetches the authenticated account.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	body, err := c.do(ctx, http.MethodGet, "/users/me", nil, reqOptions{})
	if err != nil {
		return nil, err
	}
	return unwrapPtr[models.User](body)
}

// UpdateProfile patches the authenticated account and refreshes the locally
// cached user on success.
func (c *Client) UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.User, error) {
	body, err := c.do(ctx, http.MethodPatch, "/users/me", patch, reqOptions{})
	if err != nil {
		return nil, err
	}
	user, err := unwrapPtr[models.User](body)
	if err != nil {
		return nil, err
	}
	token, terr := c.sessions.Token()
	rt, rerr := c.sessions.RefreshToken()
	if terr == nil && rerr == nil && token != "" {
		if err := c.sessions.SaveSession(token, rt, user); err != nil {
			return nil, fmt.Errorf("persist user: %w", err)
		}
	}
	return user, nil
}

// UpdateDeviceToken registers the push-notification device token. The call
// is queueable: registration is idempotent and safe to replay.
func (c *Client) UpdateDeviceToken(ctx context.Context, fcmToken string) error {
	patch := models.UserPatch{FCMToken: &fcmToken}
	body, err := c.do(ctx, http.MethodPatch, "/users/me", patch, reqOptions{queueable: true})
	if err != nil {
		return err
	}
	return unwrapEmpty(body)
}

// UserProfile fetches the expanded public profile of a user.
func (c *Client) UserProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/profile", userID), nil, reqOptions{})
	if err != nil {
		return nil, err
	}
	return unwrapPtr[models.UserProfile](body)
}

// SearchUsers finds users by name or username.
func (c *Client) SearchUsers(ctx context.Context, q string) ([]models.User, error) {
	body, err := c.do(ctx, http.MethodGet, "/users/search", nil, reqOptions{query: url.Values{"q": {q}}})
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.User](body)
}

// NearbyUsers lists discoverable users close to the caller's shared location.
func (c *Client) NearbyUsers(ctx context.Context) ([]models.User, error) {
	body, err := c.do(ctx, http.MethodGet, "/users/nearby", nil, reqOptions{})
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.User](body)
}

// unwrapPtr unwraps an envelope into a pointer, rejecting a missing payload.
func unwrapPtr[T any](body []byte) (*T, error) {
	data, err := unwrap[*T](body)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, &APIError{Code: CodeRequestFailed, Message: "empty response payload"}
	}
	return data, nil
}
