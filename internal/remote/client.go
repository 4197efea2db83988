// Package remote reads inventory collections from a REST backend. It owns
// the response shape differences between backends: collections arrive as a
// bare array, under "data", under "data.items" or under a per-resource key,
// and leave this package as ordered table records.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/table"
)

// DefaultPageSize is the page size requested while walking pages.
const DefaultPageSize = 100

// maxPages bounds page walking against backends that never report an end.
const maxPages = 1000

// Options configures a Client.
type Options struct {
	// BaseURL is the API root, e.g. http://localhost:8080/api/v1.
	BaseURL string
	// Token is sent as a bearer token when not empty.
	Token   string
	Retries int
	Timeout time.Duration
	// Logger receives retry diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Client fetches collections from a REST backend with retries.
type Client struct {
	base  *url.URL
	token string
	http  *retryablehttp.Client
}

// StatusError is a non-2xx response.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("remote: unexpected status %d: %s", e.Status, e.Message)
}

// NewClient creates a Client for opts.BaseURL.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, errors.New("remote: base url is required")
	}
	base, err := url.Parse(strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"))
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("remote: invalid base url %q", opts.BaseURL)
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = max(opts.Retries, 0)
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	if opts.Timeout > 0 {
		rc.HTTPClient.Timeout = opts.Timeout
	}
	rc.Logger = nil
	if opts.Logger != nil {
		rc.Logger = opts.Logger
	}
	// Exhausted retries keep the last response so its status and message
	// reach the caller.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{base: base, token: opts.Token, http: rc}, nil
}

// Get fetches path below the base URL and returns the body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	u.RawQuery = query.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote: GET %s: %w", u.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("remote: read %s: %w", u.Path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, Message: gjson.GetBytes(body, "message").String()}
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("remote: %s returned invalid JSON", u.Path)
	}
	return body, nil
}

// Fetch walks every page of res and returns its records in backend order.
// Pages are requested until the reported total_pages is reached; backends
// that do not report it are read as a single page.
func (c *Client) Fetch(ctx context.Context, res catalog.Resource) ([]table.Record, error) {
	records := make([]table.Record, 0)
	for page := 1; page <= maxPages; page++ {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("page_size", strconv.Itoa(DefaultPageSize))

		body, err := c.Get(ctx, res.Name, q)
		if err != nil {
			return nil, err
		}
		records = append(records, Decode(res, Items(body, res.Envelope))...)

		total := gjson.GetBytes(body, "data.total_pages")
		if !total.Exists() || int(total.Int()) <= page {
			break
		}
	}
	return records, nil
}
