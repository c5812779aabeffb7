package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gitlab.com/toeic-drill.net/internal/config"
	"gitlab.com/toeic-drill.net/internal/core/ports/primary"
	"gitlab.com/toeic-drill.net/internal/core/ports/secondary"
)

var _ secondary.ResultEndpoint = (*Client)(nil)

// Client talks to the external result endpoint over HTTP. Redirects are
// followed by the underlying http.Client.
type Client struct {
	client *http.Client
	logger primary.Logger
}

// NewClient creates a webhook client; a zero timeout means no deadline
func NewClient(cfg *config.RelayConfig, logger primary.Logger) *Client {
	return &Client{
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// NewClientWith wraps an existing http.Client
func NewClientWith(client *http.Client, logger primary.Logger) *Client {
	return &Client{client: client, logger: logger}
}

// Post sends body as JSON to url and returns the raw response body
func (c *Client) Post(ctx context.Context, url string, body interface{}) ([]byte, error) {
	bodyJSON, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("External endpoint answered", "method", http.MethodPost, "statusCode", resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}

// Get fetches url and returns the status code and raw response body
func (c *Client) Get(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("External endpoint answered", "method", http.MethodGet, "statusCode", resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, data, nil
}
