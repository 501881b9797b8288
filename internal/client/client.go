// Package client is the Go client for the Ramanuj site backend. It
// carries the same submission pipeline the web front end runs: validate
// locally, submit, and on success mirror the submission into a local
// history file and an optional webhook — both best-effort.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"
)

// DefaultBaseURL is where the backend listens in local dev.
const DefaultBaseURL = "http://127.0.0.1:8080"

// Client talks to the backend API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	WebhookURL string
	History    *History
	Log        *zap.Logger
}

// New returns a client for the given base URL with no webhook and no
// history mirror configured.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
		Log:        zap.NewNop(),
	}
}

// NewFromEnv builds a client from RAMANUJ_API_URL,
// RAMANUJ_CONTACT_WEBHOOK_URL and RAMANUJ_HISTORY_PATH.
func NewFromEnv(log *zap.Logger) *Client {
	c := New(os.Getenv("RAMANUJ_API_URL"))
	c.WebhookURL = os.Getenv("RAMANUJ_CONTACT_WEBHOOK_URL")
	if path := os.Getenv("RAMANUJ_HISTORY_PATH"); path != "" {
		c.History = &History{Path: path}
	}
	if log != nil {
		c.Log = log
	}
	return c
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.HTTPClient.Do(req)
}

// relayWebhook mirrors a successful submission to the configured
// webhook. Best-effort: failures are logged and never propagated.
func (c *Client) relayWebhook(ctx context.Context, payload any) {
	if c.WebhookURL == "" {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		c.Log.Warn("webhook payload encode failed", zap.Error(err))
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.WebhookURL, bytes.NewReader(body))
	if err != nil {
		c.Log.Warn("webhook request build failed", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Warn("webhook relay failed", zap.Error(err))
		return
	}
	res.Body.Close()
}
