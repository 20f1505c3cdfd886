// Package fetch is the plain HTTP backend: a GET with a spoofed browser identity.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultTimeout bounds a single request; requests are never retried.
	DefaultTimeout = 15 * time.Second
	maxBodyBytes   = 8 << 20
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s returned status %d", e.URL, e.StatusCode)
}

type Client struct {
	headers map[string]string
	hc      *http.Client
}

// New builds a client that sends headers on every request.
func New(headers map[string]string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	h := make(map[string]string, len(headers))
	for k, v := range headers {
		// net/http negotiates and decodes compression itself only when it set the header
		if http.CanonicalHeaderKey(k) == "Accept-Encoding" {
			continue
		}
		h[k] = v
	}
	return &Client{
		headers: h,
		hc:      &http.Client{Timeout: timeout},
	}
}

// Get returns the body of url as a string.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return "", &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}
