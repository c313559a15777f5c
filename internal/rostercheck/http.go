package rostercheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mergington/activities/internal/domain/model"
)

// Client talks to the activities API.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates a client for baseURL with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Health returns nil when GET /healthz answers 200.
func (c *Client) Health(ctx context.Context) error {
	status, _, err := c.do(ctx, http.MethodGet, "/healthz")
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: healthz returned %d", ErrUnhealthy, status)
	}
	return nil
}

// List fetches every activity keyed by name.
func (c *Client) List(ctx context.Context) (map[string]model.Activity, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/activities")
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: list returned %d", ErrUnexpectedStatus, status)
	}
	var out map[string]model.Activity
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return out, nil
}

// Signup signs email up for activity and returns the response status.
func (c *Client) Signup(ctx context.Context, activity, email string) (int, error) {
	path := "/activities/" + url.PathEscape(activity) + "/signup?email=" + url.QueryEscape(email)
	status, _, err := c.do(ctx, http.MethodPost, path)
	return status, err
}

// Remove removes email from activity and returns the response status.
func (c *Client) Remove(ctx context.Context, activity, email string) (int, error) {
	path := "/activities/" + url.PathEscape(activity) + "/participants/" + url.PathEscape(email)
	status, _, err := c.do(ctx, http.MethodDelete, path)
	return status, err
}

func (c *Client) do(ctx context.Context, method, path string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, http.NoBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response body: %w", err)
	}
	return resp.StatusCode, body, nil
}
