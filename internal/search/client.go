package search

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/news-comments-api/internal/config"
	"github.com/news-comments-api/internal/models"
	"github.com/rs/zerolog"
	"resty.dev/v3"
)

// Client proxies article searches to the external provider. The contract is
// intentionally thin: pass the query through, return the upstream JSON body,
// and fail with an upstream error on non-success or timeout. The API key
// stays server-side.
type Client struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	log     zerolog.Logger
}

// NewClient creates an article search client with a bounded request timeout
func NewClient(cfg config.SearchConfig, log zerolog.Logger) *Client {
	client := resty.New().
		SetTimeout(cfg.Timeout)

	return &Client{
		client:  client,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		log:     log.With().Str("component", "search").Logger(),
	}
}

// Close releases the underlying HTTP client
func (c *Client) Close() error {
	return c.client.Close()
}

// Search passes the query to the upstream provider and returns its raw JSON body
func (c *Client) Search(ctx context.Context, query string) (json.RawMessage, error) {
	resp, err := c.client.R().
		WithContext(ctx).
		SetQueryParam("q", query).
		SetQueryParam("api-key", c.apiKey).
		Get(c.baseURL)
	if err != nil {
		c.log.Warn().Err(err).Msg("Article search request failed")
		return nil, fmt.Errorf("%w: article search: %v", models.ErrUpstream, err)
	}
	if resp.IsError() {
		c.log.Warn().Int("status", resp.StatusCode()).Msg("Article search returned error status")
		return nil, fmt.Errorf("%w: article search status %d", models.ErrUpstream, resp.StatusCode())
	}

	return json.RawMessage(resp.Bytes()), nil
}
