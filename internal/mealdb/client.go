package mealdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/recipe-finder/internal/logging"
	"github.com/ytget/recipe-finder/internal/model"
)

// Endpoint constants
const (
	DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"
	SearchPath     = "/search.php"
	SearchParam    = "s"
)

// Request defaults
const (
	DefaultTimeout   = 10 * time.Second
	MaxResponseBytes = 4 << 20
	errorBodyPreview = 256
)

var (
	// ErrUnexpectedStatus is returned for non-2xx responses
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrDecode is returned when the response body is not a search envelope
	ErrDecode = errors.New("failed to decode response")
)

// Client queries the search endpoint
type Client struct {
	mu         sync.RWMutex
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ Searcher = (*Client)(nil)

// NewClient creates a new search client. An empty baseURL selects the public
// endpoint and a non-positive timeout selects DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	c := &Client{
		httpClient: &http.Client{},
		logger:     logging.OrNop(logger),
	}
	c.Configure(baseURL, timeout)
	return c
}

// Configure replaces the endpoint root and the request timeout. Empty or
// non-positive values select the defaults.
func (c *Client) Configure(baseURL string, timeout time.Duration) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	c.httpClient.Timeout = timeout
}

// SetHTTPClient replaces the underlying HTTP client
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	if httpClient == nil {
		return
	}
	c.mu.Lock()
	c.httpClient = httpClient
	c.mu.Unlock()
}

// BaseURL returns the configured endpoint root
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// Timeout returns the request timeout
func (c *Client) Timeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.httpClient.Timeout
}

// SearchURL builds the request URL for query
func (c *Client) SearchURL(query string) (string, error) {
	u, err := url.Parse(c.BaseURL() + SearchPath)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}

	q := u.Query()
	q.Set(SearchParam, query)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Search performs a search request
func (c *Client) Search(ctx context.Context, query string) ([]model.Recipe, error) {
	reqURL, err := c.SearchURL(query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.mu.RLock()
	httpClient := c.httpClient
	c.mu.RUnlock()

	started := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("search response",
		zap.String("query", query),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(started)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, bodyPreview(body))
	}

	var envelope model.SearchResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if envelope.Meals == nil {
		return []model.Recipe{}, nil
	}
	return envelope.Meals, nil
}

// bodyPreview returns at most errorBodyPreview runes of body for error messages
func bodyPreview(body []byte) string {
	preview := []rune(strings.TrimSpace(string(body)))
	if len(preview) > errorBodyPreview {
		preview = preview[:errorBodyPreview]
	}
	return string(preview)
}
