// Package netx provides connectivity probing for the API client. The client
// asks a Checker before every request so that offline calls fail fast
// without touching the network stack.
package netx

import (
	"context"
	"net"
	"net/url"
	"time"
)

// Checker reports whether the backend is currently reachable.
type Checker interface {
	Online(ctx context.Context) bool
}

// Always reports the network as reachable. It is the default for clients
// constructed without an explicit checker.
type Always struct{}

func (Always) Online(context.Context) bool { return true }

// DialChecker probes reachability by opening a TCP connection to the
// backend host. The connection is closed immediately; no request is sent.
type DialChecker struct {
	Addr    string
	Timeout time.Duration
}

// NewDialChecker derives the probe address from the API base URL. The port
// defaults to 443 for https and 80 otherwise.
func NewDialChecker(baseURL string) (*DialChecker, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		if u.Scheme == "https" {
			port = "443"
		} else {
			port = "80"
		}
	}
	return &DialChecker{Addr: net.JoinHostPort(host, port), Timeout: 3 * time.Second}, nil
}

func (c *DialChecker) Online(ctx context.Context) bool {
	d := net.Dialer{Timeout: c.Timeout}
	conn, err := d.DialContext(ctx, "tcp", c.Addr)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
