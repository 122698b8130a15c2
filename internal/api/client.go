// Package api implements the Cannadex API client: a single request pipeline
// (auth injection, connectivity precheck, timeout, bounded retry, error
// normalization) and one typed method per backend operation on top of it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/cannadex/cannadex-go/internal/logging"
	"github.com/cannadex/cannadex-go/internal/models"
	"github.com/cannadex/cannadex-go/internal/netx"
)

// Base URLs per environment. The backend mounts everything under /api/v1.
const (
	DevBaseURL  = "http://localhost:3000/api/v1"
	ProdBaseURL = "https://api.cannadex.app/api/v1"

	// DefaultTimeout bounds each HTTP attempt, not the retries cumulatively.
	DefaultTimeout = 15 * time.Second
)

// SessionStore is the slice of the local store the client depends on for
// token injection and the 401 side effect. Implemented by *storage.Store.
type SessionStore interface {
	Token() (string, error)
	RefreshToken() (string, error)
	SaveSession(token, refreshToken string, user *models.User) error
	ClearSession() error
}

// QueueStore receives mutating requests that could not reach the network.
// Implemented by *storage.Store.
type QueueStore interface {
	AddToOfflineQueue(item models.QueueItem) error
}

// Client is the Cannadex API client. It is safe for concurrent use; each
// in-flight call runs its own retry loop independently.
type Client struct {
	baseURL  string
	httpc    *http.Client
	timeout  time.Duration
	sessions SessionStore
	queue    QueueStore
	online   netx.Checker
	retry    RetryPolicy
	log      logging.Logger
	now      func() time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying http.Client.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.httpc = h } }

// WithTimeout sets the per-attempt timeout.
func WithTimeout(d time.Duration) Option { return func(c *Client) { c.timeout = d } }

// WithRetryPolicy replaces the transient-failure retry policy.
func WithRetryPolicy(p RetryPolicy) Option { return func(c *Client) { c.retry = p } }

// WithConnectivity sets the checker consulted before every request.
func WithConnectivity(ch netx.Checker) Option { return func(c *Client) { c.online = ch } }

// WithOfflineQueue enables queueing of mutating requests that fail the
// connectivity precheck.
func WithOfflineQueue(q QueueStore) Option { return func(c *Client) { c.queue = q } }

// WithLogger sets the client logger.
func WithLogger(l logging.Logger) Option { return func(c *Client) { c.log = l.With("component", "api") } }

// New constructs a Client against the given base URL. The session store is
// mandatory: every request reads the current token through it.
func New(baseURL string, sessions SessionStore, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		httpc:    &http.Client{},
		timeout:  DefaultTimeout,
		sessions: sessions,
		online:   netx.Always{},
		retry:    DefaultRetryPolicy(),
		log:      logging.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var errOffline = errors.New("no network connection")

// reqOptions carries per-request settings through the pipeline.
type reqOptions struct {
	query     url.Values
	queueable bool
}

// do runs the full request pipeline and returns the raw body of a 2xx
// response. Every failure is one of exactly three error types: NetworkError,
// ValidationError, or APIError.
func (c *Client) do(ctx context.Context, method, path string, body any, opts reqOptions) ([]byte, error) {
	target := path
	if len(opts.query) > 0 {
		target = path + "?" + opts.query.Encode()
	}

	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = b
	}

	if !c.online.Online(ctx) {
		queued := false
		if opts.queueable && c.queue != nil {
			item := models.QueueItem{
				ID:        uuid.NewString(),
				Method:    method,
				URL:       target,
				Body:      payload,
				Timestamp: c.now(),
			}
			if err := c.queue.AddToOfflineQueue(item); err != nil {
				c.log.Error(ctx, "offline enqueue failed", "method", method, "path", path, "error", err)
			} else {
				queued = true
				c.log.Info(ctx, "request queued for replay", "method", method, "path", path)
			}
		}
		return nil, &NetworkError{Queued: queued, Err: errOffline}
	}

	var out []byte
	err := retry.Do(ctx, c.retry.backoff(), func(ctx context.Context) error {
		b, err := c.attempt(ctx, method, target, payload)
		if err != nil {
			if isTransient(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// attempt performs a single HTTP exchange and maps the response onto the
// error taxonomy.
func (c *Client) attempt(ctx context.Context, method, target string, payload []byte) ([]byte, error) {
	actx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(actx, method, c.baseURL+target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, err := c.sessions.Token(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := c.now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		// Timeout or transport failure: no response at all.
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	c.log.Debug(ctx, "request finished",
		"method", method, "target", target,
		"status", resp.StatusCode, "duration", time.Since(start))

	return c.normalize(ctx, resp.StatusCode, respBody)
}

// normalize maps an HTTP response onto the error taxonomy. 2xx bodies pass
// through untouched.
func (c *Client) normalize(ctx context.Context, status int, respBody []byte) ([]byte, error) {
	switch {
	case status >= 200 && status < 300:
		return respBody, nil

	case status == http.StatusUnauthorized:
		// Token expired or invalid: drop the local session. Re-routing to
		// login is the caller's concern, not ours.
		if err := c.sessions.ClearSession(); err != nil {
			c.log.Error(ctx, "clearing session after 401 failed", "error", err)
		}
		return nil, &APIError{Code: CodeUnauthorized, StatusCode: status, Message: fallback(messageFrom(respBody), "unauthorized")}

	case status == http.StatusForbidden:
		return nil, &APIError{Code: CodeForbidden, StatusCode: status, Message: fallback(messageFrom(respBody), "forbidden")}

	case status == http.StatusNotFound:
		return nil, &APIError{Code: CodeNotFound, StatusCode: status, Message: fallback(messageFrom(respBody), "not found")}

	case status == http.StatusTooManyRequests:
		return nil, &APIError{Code: CodeRateLimited, StatusCode: status, Message: fallback(messageFrom(respBody), "rate limited")}

	case status == http.StatusUnprocessableEntity:
		return nil, validationFrom(respBody)

	case status >= 500:
		return nil, &APIError{Code: CodeServerError, StatusCode: status, Message: fallback(messageFrom(respBody), http.StatusText(status))}

	default:
		return nil, &APIError{Code: CodeRequestFailed, StatusCode: status, Message: fallback(messageFrom(respBody), http.StatusText(status))}
	}
}

// isTransient reports whether the attempt error is worth retrying:
// HTTP ≥500 or a transport-level failure (which includes the per-attempt
// timeout).
func isTransient(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == CodeServerError
	}
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

func fallback(msg, def string) string {
	if msg != "" {
		return msg
	}
	return def
}

// Replay re-issues a previously queued request verbatim. Replays never
// re-queue: a replay that fails stays in the hands of the sync coordinator.
func (c *Client) Replay(ctx context.Context, item models.QueueItem) error {
	var body any
	if len(item.Body) > 0 {
		body = json.RawMessage(item.Body)
	}
	_, err := c.do(ctx, item.Method, item.URL, body, reqOptions{})
	return err
}
