package seeddata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/okian/perftrack/internal/domain/athlete"
	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/model"
	"github.com/okian/perftrack/internal/domain/types"
)

// Client talks to the perftrack HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client with a per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// APIError is a non-2xx response.
type APIError struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status %d: %s: %s", e.Status, e.Code, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return fmt.Errorf("%s %s: %w", method, path, apiErr)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode: %w", method, path, err)
	}
	return nil
}

// Health checks /healthz.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", nil, nil)
}

// Roster returns the server's roster.
func (c *Client) Roster(ctx context.Context) (*athlete.Roster, error) {
	var out struct {
		Athletes []athlete.Athlete `json:"athletes"`
	}
	if err := c.do(ctx, http.MethodGet, "/roster", nil, &out); err != nil {
		return nil, err
	}
	return athlete.NewRoster(out.Athletes)
}

// CreateSession opens a session.
func (c *Client) CreateSession(ctx context.Context) (types.Session, error) {
	var out types.Session
	err := c.do(ctx, http.MethodPost, "/sessions", nil, &out)
	return out, err
}

// DeleteSession drops a session.
func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/sessions/"+url.PathEscape(id), nil, nil)
}

// PutWeek uploads table as week.
func (c *Client) PutWeek(ctx context.Context, id string, week int, table model.Table) (types.UploadResult, error) {
	var out types.UploadResult
	err := c.do(ctx, http.MethodPut, "/sessions/"+url.PathEscape(id)+"/weeks/"+strconv.Itoa(week), table, &out)
	return out, err
}

func athletePath(id, name, op string) string {
	return "/sessions/" + url.PathEscape(id) + "/athletes/" + url.PathEscape(name) + "/" + op
}

// Trend fetches name's series for kind.
func (c *Client) Trend(ctx context.Context, id, name string, kind metric.Kind) (types.Trend, error) {
	var out types.Trend
	err := c.do(ctx, http.MethodGet, athletePath(id, name, "trend")+"?metric="+kind.Slug(), nil, &out)
	return out, err
}

// Profile fetches name's profile vector for week.
func (c *Client) Profile(ctx context.Context, id, name string, week int) (types.Profile, error) {
	var out types.Profile
	err := c.do(ctx, http.MethodGet, athletePath(id, name, "profile")+"?week="+strconv.Itoa(week), nil, &out)
	return out, err
}

// Report fetches name's range report.
func (c *Client) Report(ctx context.Context, id, name string, start, end int) (types.RangeReport, error) {
	var out types.RangeReport
	q := url.Values{"start": {strconv.Itoa(start)}, "end": {strconv.Itoa(end)}}
	err := c.do(ctx, http.MethodGet, athletePath(id, name, "report")+"?"+q.Encode(), nil, &out)
	return out, err
}
