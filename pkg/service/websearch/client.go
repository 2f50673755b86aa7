package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/heirs-lab/prince/pkg/utils/safe"
)

const defaultEndpoint = "https://google.serper.dev/search"

// Service performs web searches against an external search API.
type Service interface {
	Search(ctx context.Context, query string) ([]*Result, error)
}

// client implements Service interface
type client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*client)

// WithEndpoint overrides the search API endpoint. Mainly for testing.
func WithEndpoint(endpoint string) Option {
	return func(c *client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// New creates a new web search service with the provided API key
func New(apiKey string, opts ...Option) (Service, error) {
	if apiKey == "" {
		return nil, goerr.New("search API key is required")
	}

	c := &client{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Search posts the query to the search API and returns the organic results
func (c *client) Search(ctx context.Context, query string) ([]*Result, error) {
	if query == "" {
		return nil, goerr.New("search query is required")
	}

	body, err := json.Marshal(searchRequest{Q: query})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal search request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create search request", goerr.V("endpoint", c.endpoint))
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call search API", goerr.V("endpoint", c.endpoint))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("search API returned unexpected status",
			goerr.V("status", resp.StatusCode),
			goerr.V("endpoint", c.endpoint))
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, goerr.Wrap(err, "failed to decode search response")
	}

	results := make([]*Result, 0, len(searchResp.Organic))
	for _, organic := range searchResp.Organic {
		results = append(results, &Result{
			Title:   organic.Title,
			Link:    organic.Link,
			Snippet: organic.Snippet,
		})
	}

	return results, nil
}
