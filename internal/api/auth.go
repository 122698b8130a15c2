package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cannadex/cannadex-go/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type verifyAgeRequest struct {
	DateOfBirth string `json:"date_of_birth"`
}

// authResponse is the auth payload inside the envelope.
type authResponse struct {
	User         *models.User `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	ExpiresAt    string       `json:"expires_at,omitempty"`
}

func (c *Client) persistAuth(ar authResponse) (*models.Session, error) {
	if ar.User == nil || ar.Token == "" {
		return nil, &APIError{Code: CodeRequestFailed, Message: "malformed auth response"}
	}
	if err := c.sessions.SaveSession(ar.Token, ar.RefreshToken, ar.User); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return &models.Session{Token: ar.Token, RefreshToken: ar.RefreshToken, User: ar.User}, nil
}

// Login authenticates with email/password and persists the resulting
// session locally.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Session, error) {
	body, err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, reqOptions{})
	if err != nil {
		return nil, err
	}
	ar, err := unwrap[authResponse](body)
	if err != nil {
		return nil, err
	}
	return c.persistAuth(ar)
}

// Register creates an account and persists the resulting session locally.
func (c *Client) Register(ctx context.Context, data models.RegisterData) (*models.Session, error) {
	body, err := c.do(ctx, http.MethodPost, "/auth/register", data, reqOptions{})
	if err != nil {
		return nil, err
	}
	ar, err := unwrap[authResponse](body)
	if err != nil {
		return nil, err
	}
	return c.persistAuth(ar)
}

// Logout invalidates the session server-side. The local session is cleared
// even when the request fails: a logout must never leave credentials behind.
func (c *Client) Logout(ctx context.Context) error {
	_, reqErr := c.do(ctx, http.MethodDelete, "/auth/logout", nil, reqOptions{})
	if err := c.sessions.ClearSession(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return reqErr
}

// RefreshSession exchanges the stored refresh token for a fresh session.
func (c *Client) RefreshSession(ctx context.Context) (*models.Session, error) {
	rt, err := c.sessions.RefreshToken()
	if err != nil {
		return nil, fmt.Errorf("read refresh token: %w", err)
	}
	if rt == "" {
		return nil, &APIError{Code: CodeUnauthorized, Message: "no refresh token"}
	}
	body, err := c.do(ctx, http.MethodPost, "/auth/refresh", refreshRequest{RefreshToken: rt}, reqOptions{})
	if err != nil {
		return nil, err
	}
	ar, err := unwrap[authResponse](body)
	if err != nil {
		return nil, err
	}
	return c.persistAuth(ar)
}

// VerifyAge submits the date of birth for age verification.
func (c *Client) VerifyAge(ctx context.Context, dateOfBirth string) (bool, error) {
	body, err := c.do(ctx, http.MethodPost, "/auth/verify_age", verifyAgeRequest{DateOfBirth: dateOfBirth}, reqOptions{})
	if err != nil {
		return false, err
	}
	data, err := unwrap[struct {
		AgeVerified bool `json:"age_verified"`
	}](body)
	if err != nil {
		return false, err
	}
	return data.AgeVerified, nil
}

// SessionExpiringSoon inspects the stored access token's exp claim without
// verifying the signature (the token is otherwise opaque to the client).
// It reports true when no token is stored or the token expires within the
// given leeway; tokens without an exp claim never expire from the client's
// point of view.
func (c *Client) SessionExpiringSoon(leeway time.Duration) (bool, error) {
	token, err := c.sessions.Token()
	if err != nil {
		return false, fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return true, nil
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		// Not a JWT; treat as non-expiring.
		return false, nil
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false, nil
	}
	return c.now().Add(leeway).After(exp.Time), nil
}
