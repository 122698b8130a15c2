package api

import (
	"context"
	"net/http"

	"github.com/cannadex/cannadex-go/internal/analytics"
)

// SendAnalyticsEvents posts a batch of usage events. The client is the
// analytics.Sink of the app.
func (c *Client) SendAnalyticsEvents(ctx context.Context, events []analytics.Event) error {
	payload := struct {
		Events []analytics.Event `json:"events"`
	}{Events: events}
	body, err := c.do(ctx, http.MethodPost, "/analytics/events", payload, reqOptions{})
	if err != nil {
		return err
	}
	return unwrapEmpty(body)
}
