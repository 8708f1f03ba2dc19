// SPDX-License-Identifier: MPL-2.0

package bootstrap

import (
	"context"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultLauncherURL is the canonical location of the launcher source.
	// It is fixed: configuration cannot point omniboot elsewhere, only tests
	// override it via WithURL.
	DefaultLauncherURL = "https://raw.githubusercontent.com/Ner-Kun/Omni-trans/main/launcher/start.py"

	// defaultFetchTimeout bounds the single launcher GET end to end.
	defaultFetchTimeout = 60 * time.Second

	// defaultUserAgent is the User-Agent header sent with the fetch.
	defaultUserAgent = "omniboot/dev"
)

type (
	// Client performs the single unauthenticated GET for the launcher
	// source. At most one request is made per run, and only when the local
	// file is absent.
	Client struct {
		httpClient *http.Client
		url        string
		userAgent  string
	}

	// ClientOption configures a Client during construction.
	ClientOption func(*Client)
)

// WithHTTPClient sets a custom HTTP client, useful for tests or proxy
// configurations.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithURL overrides the launcher source URL, primarily for test servers.
func WithURL(u string) ClientOption {
	return func(cl *Client) {
		cl.url = u
	}
}

// WithUserAgent sets the User-Agent header sent with the request.
func WithUserAgent(ua string) ClientOption {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// WithTimeout sets the overall request timeout. It applies to the default
// HTTP client only; a client supplied via WithHTTPClient keeps its own.
func WithTimeout(d time.Duration) ClientOption {
	return func(cl *Client) {
		if cl.httpClient != nil {
			return
		}
		cl.httpClient = &http.Client{Timeout: d}
	}
}

// NewClient creates a Client with sensible defaults: the canonical launcher
// URL and a 60 second timeout.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		url:       DefaultLauncherURL,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultFetchTimeout}
	}
	return c
}

// LauncherURL returns the URL this client fetches from.
func (c *Client) LauncherURL() string {
	return c.url
}

// Fetch downloads the launcher source and returns the response body as a
// streaming reader. The caller is responsible for closing it. Transport
// errors and non-2xx responses are both reported as *FetchError.
func (c *Client) Fetch(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, &FetchError{URL: c.url, Cause: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: c.url, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, &FetchError{URL: c.url, Status: resp.StatusCode}
	}

	return resp.Body, nil
}
