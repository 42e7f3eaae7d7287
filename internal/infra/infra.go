// Package infra provides the shared HTTP plumbing used by providers: a
// cookie-aware client with browser-like defaults and typed HTTP errors.
package infra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/net/publicsuffix"
)

// DefaultUserAgent is the user agent string used for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// ErrHTTP wraps a non-2xx upstream response.
type ErrHTTP struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

func (e *ErrHTTP) Error() string {
	return fmt.Sprintf("HTTP %s from %s: %s", e.Status, e.URL, e.Body)
}

// Client is an HTTP client that keeps cookies between calls, which upstreams
// such as Yahoo require for their session crumb.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// NewClient creates a client with a public-suffix aware cookie jar. A zero
// timeout leaves requests bounded only by their context.
func NewClient(timeout time.Duration, userAgent string) *Client {
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		HTTP: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		UserAgent: userAgent,
	}
}

// DoGet performs a GET request with the given URL and headers, returning the
// response body. Responses with status >= 400 become *ErrHTTP, carrying the
// first KiB of the body. The caller closes the returned ReadCloser.
func (c *Client) DoGet(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json, text/html, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("HTTP GET %s: %w", url, err)
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, resp.StatusCode, &ErrHTTP{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        url,
			Body:       string(body),
		}
	}

	return resp.Body, resp.StatusCode, nil
}

// GetJSON performs a GET and decodes the JSON body into dest. When the
// upstream answers with an error status but a JSON body, the body is still
// decoded into dest and the *ErrHTTP is returned alongside, so callers can
// read an error object the upstream put in the payload.
func (c *Client) GetJSON(ctx context.Context, url string, dest any) error {
	body, _, err := c.DoGet(ctx, url, map[string]string{"Accept": "application/json"})
	if err != nil {
		var httpErr *ErrHTTP
		if errors.As(err, &httpErr) && json.Valid([]byte(httpErr.Body)) {
			_ = json.Unmarshal([]byte(httpErr.Body), dest)
		}
		return err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	return nil
}

// Discard performs a GET only for its side effects on the cookie jar.
func (c *Client) Discard(ctx context.Context, url string) error {
	body, _, err := c.DoGet(ctx, url, nil)
	if err != nil {
		return err
	}
	defer body.Close()
	_, err = io.Copy(io.Discard, body)
	return err
}
