package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLinearBackoff(t *testing.T) {
	backoff := LinearBackoff(time.Second)
	assert.Equal(t, time.Second, backoff(1))
	assert.Equal(t, 2*time.Second, backoff(2))
	assert.Equal(t, 3*time.Second, backoff(3))
}

func TestDefaultRetryPolicy(t *testing.T) {
	p := DefaultRetryPolicy()
	assert.Equal(t, uint64(3), p.MaxRetries)
	assert.Equal(t, 2*time.Second, p.Backoff(2))
}

func TestPolicyBackoff_DelaysThenStops(t *testing.T) {
	p := RetryPolicy{MaxRetries: 2, Backoff: LinearBackoff(100 * time.Millisecond)}
	b := p.backoff()

	d, stop := b.Next()
	assert.Equal(t, 100*time.Millisecond, d)
	assert.False(t, stop)

	d, stop = b.Next()
	assert.Equal(t, 200*time.Millisecond, d)
	assert.False(t, stop)

	_, stop = b.Next()
	assert.True(t, stop)
}

func TestPolicyBackoff_FreshStatePerCall(t *testing.T) {
	p := RetryPolicy{MaxRetries: 2, Backoff: LinearBackoff(time.Millisecond)}

	b1 := p.backoff()
	b1.Next()
	b1.Next()

	b2 := p.backoff()
	d, stop := b2.Next()
	assert.Equal(t, time.Millisecond, d)
	assert.False(t, stop)
}
