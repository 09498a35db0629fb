package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// DefaultUserAgent is sent with every request. Listing servers tend to
// reject the Go default, so the client presents itself as a desktop browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"

// Client wraps HTTP operations with a fixed User-Agent header.
//
// Client provides:
//   - Listing page retrieval that reports the status code instead of failing
//   - File download straight to disk
//
// No timeout is configured: an unresponsive server stalls the run until the
// context is cancelled.
//
// Example usage:
//
//	client := NewClient()
//
//	// Fetch the listing page
//	status, body, err := client.GetPage(ctx, "https://example.com/pages/")
//
//	// Download a file
//	err = client.DownloadFile(ctx, "https://example.com/pages/1.png", "/tmp/stage/001.png")
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent replaces the User-Agent header value.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new HTTP client with the browser User-Agent.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetPage performs a GET request and returns the status code and, for a
// 200 OK answer, the response body.
//
// A non-200 status is not an error: the caller decides what to report.
// An error is returned only when the request itself fails or the body
// cannot be read.
func (c *Client) GetPage(ctx context.Context, url string) (int, []byte, error) {
	resp, err := c.do(ctx, url)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read %s: %w", url, err)
	}
	return resp.StatusCode, body, nil
}

// DownloadFile downloads url to destPath.
//
// The file is created (or truncated if it exists) and the whole response
// body is streamed to it, whatever the status code. A failed transfer
// leaves the partial file behind.
func (c *Client) DownloadFile(ctx context.Context, url, destPath string) error {
	resp, err := c.do(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	file, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	return file.Close()
}

func (c *Client) do(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	return c.httpClient.Do(req)
}
