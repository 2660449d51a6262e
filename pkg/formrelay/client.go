// Package formrelay posts contact form submissions to a hosted form endpoint
// (Formspree style: form-encoded body, JSON reply, 200 on success).
package formrelay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client relays submissions to one endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a relay client. A timeout <= 0 falls back to 10s.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// StatusError is a non-200 answer from the relay.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("form relay returned status %d: %s", e.StatusCode, e.Body)
}

// Submit posts fields once. Anything but HTTP 200 is an error; there is no retry.
func (c *Client) Submit(ctx context.Context, fields url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(fields.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach form relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
