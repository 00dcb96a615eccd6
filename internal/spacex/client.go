package spacex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the SpaceX v4 HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultAPIURL is the public SpaceX API host.
	DefaultAPIURL     = "https://api.spacexdata.com"
	defaultUserAgent  = "liftoff/0.1"
	launchQueryPath   = "/v4/launches/query"
	imageProbeTimeout = 5 * time.Second
)

// NewClient builds a Client for apiURL. A zero timeout leaves launch queries
// unbounded; they end when the transport resolves or ctx is cancelled.
func NewClient(apiURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// QueryLaunches issues a single launch query and returns the docs in API order.
// Every error is a *FetchError.
func (c *Client) QueryLaunches(ctx context.Context, query Query) ([]Launch, error) {
	if c == nil {
		return nil, &FetchError{Kind: KindFailure, Err: fmt.Errorf("client is nil")}
	}
	body, err := json.Marshal(query)
	if err != nil {
		return nil, &FetchError{Kind: KindFailure, Err: fmt.Errorf("encode query: %w", err)}
	}
	var payload QueryResponse
	if err := c.post(ctx, launchQueryPath, body, &payload); err != nil {
		return nil, err
	}
	return payload.Docs, nil
}

// ProbeImage checks that imageURL answers with a 2xx status. It stands in for
// a browser image load: a failed probe means the image cannot be shown.
func (c *Client) ProbeImage(ctx context.Context, imageURL string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, imageProbeTimeout)
	defer cancel()

	status, err := c.probe(ctx, http.MethodHead, imageURL)
	if err == nil && status == http.StatusMethodNotAllowed {
		status, err = c.probe(ctx, http.MethodGet, imageURL)
	}
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("image %s returned status %d", imageURL, status)
	}
	return nil
}

func (c *Client) probe(ctx context.Context, method, target string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("execute request: %w", err)
	}
	_ = resp.Body.Close()
	return resp.StatusCode, nil
}

func (c *Client) post(ctx context.Context, path string, body []byte, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(body))
	if err != nil {
		return &FetchError{Kind: KindFailure, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Kind: KindNetwork, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	slog.Debug("api response",
		"path", path,
		"status", resp.StatusCode,
		"elapsed", time.Since(started).Round(time.Millisecond),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &FetchError{Kind: KindHTTPStatus, StatusCode: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &FetchError{Kind: KindFailure, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = DefaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", apiURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_url %q: missing host", apiURL)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
