package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hamed0406/uptimemonitor/internal/domain"
	"github.com/hamed0406/uptimemonitor/internal/httpapi"
)

// Client talks to a running uptime monitor API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		// the server waits up to its own probe timeout before replying
		HTTP: &http.Client{Timeout: 30 * time.Second},
	}
}

// CheckReply is a check route's body plus the HTTP status it came with.
type CheckReply struct {
	httpapi.Reply
	Code int
}

// Check triggers a probe. Non-2xx codes are part of the reply, not an error.
func (c *Client) Check(ctx context.Context, ct domain.CheckType) (CheckReply, error) {
	var path string
	switch ct {
	case domain.CheckWebsite:
		path = httpapi.PathCheckWebsite
	case domain.CheckLogin:
		path = httpapi.PathCheckLogin
	default:
		return CheckReply{}, fmt.Errorf("unknown check type %q", ct)
	}

	resp, err := c.get(ctx, path)
	if err != nil {
		return CheckReply{}, err
	}
	defer resp.Body.Close()

	out := CheckReply{Code: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&out.Reply); err != nil {
		return out, fmt.Errorf("decode %s reply (HTTP %d): %w", path, resp.StatusCode, err)
	}
	return out, nil
}

// History returns the recorded results, newest first.
func (c *Client) History(ctx context.Context) ([]domain.CheckResult, error) {
	resp, err := c.get(ctx, httpapi.PathHistory)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("history: unexpected status %s", resp.Status)
	}
	var out []domain.CheckResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contact API: %w", err)
	}
	return resp, nil
}
