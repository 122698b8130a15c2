package api

import (
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy controls how transient request failures (timeouts, transport
// errors, HTTP 5xx) are retried. It is injected into the client so tests can
// substitute a zero-delay policy.
type RetryPolicy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries uint64
	// Backoff returns the delay before the given retry; attempt starts at 1.
	Backoff func(attempt uint64) time.Duration
}

// DefaultRetryPolicy retries three times with linearly increasing backoff
// (1s, 2s, 3s).
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 3, Backoff: LinearBackoff(time.Second)}
}

// LinearBackoff scales the base delay by the attempt number.
func LinearBackoff(base time.Duration) func(uint64) time.Duration {
	return func(attempt uint64) time.Duration {
		return time.Duration(attempt) * base
	}
}

// backoff adapts the policy to go-retry. The returned Backoff is stateful
// and must be created fresh per request.
func (p RetryPolicy) backoff() retry.Backoff {
	var attempt uint64
	b := retry.BackoffFunc(func() (time.Duration, bool) {
		attempt++
		return p.Backoff(attempt), false
	})
	return retry.WithMaxRetries(p.MaxRetries, b)
}
