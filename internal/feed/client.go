package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/five82/svitlo/internal/schedule"
)

// Fetcher retrieves the schedule document. It is implemented by *Client and
// can be replaced in tests.
type Fetcher interface {
	FetchSchedule(ctx context.Context) (*schedule.Document, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// StatusError is returned when the feed answers outside the 2xx range.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("feed returned status %d", e.Code)
}

// Client downloads the schedule feed over HTTP.
type Client struct {
	feedURL   *url.URL
	http      *http.Client
	userAgent string
	now       func() time.Time
}

const (
	defaultUserAgent = "svitlo/0.1"
	defaultTimeout   = 15 * time.Second
	cacheBustParam   = "_"
)

// NewClient builds a Client for feedURL. A non-positive timeout selects the
// default.
func NewClient(feedURL string, timeout time.Duration) (*Client, error) {
	u, err := parseFeedURL(feedURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		feedURL:   u,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
		now:       time.Now,
	}, nil
}

// URL returns the configured feed URL without the cache-busting parameter.
func (c *Client) URL() string {
	if c == nil || c.feedURL == nil {
		return ""
	}
	return c.feedURL.String()
}

// FetchSchedule downloads and decodes the current document. Caches are
// bypassed on every request so a refresh always sees fresh data.
func (c *Client) FetchSchedule(ctx context.Context) (*schedule.Document, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var doc schedule.Document
	if err := c.doURL(ctx, c.requestURL(), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *Client) requestURL() *url.URL {
	u := *c.feedURL
	values := u.Query()
	values.Set(cacheBustParam, strconv.FormatInt(c.now().UnixMilli(), 10))
	u.RawQuery = values.Encode()
	return &u
}

func (c *Client) doURL(ctx context.Context, reqURL *url.URL, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseFeedURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("feed url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse feed url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("feed url %q has no host", raw)
	}
	u.Fragment = ""
	return u, nil
}
