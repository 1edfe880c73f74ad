// Package newswire provides a news source backed by a NewsAPI-compatible
// HTTP endpoint. It queries for gaming headlines and maps them to wire
// items for ingestion.
package newswire

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"gamepulse/internal/resilience/circuitbreaker"
	"gamepulse/internal/resilience/retry"
	"gamepulse/internal/usecase/ingest"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public NewsAPI endpoint.
const DefaultBaseURL = "https://newsapi.org"

// defaultQuery covers the gaming beat across outlets.
const defaultQuery = `gaming OR "video games" OR esports`

// maxResponseBytes caps the response body read to keep a misbehaving
// upstream from exhausting memory.
const maxResponseBytes = 4 * 1024 * 1024

// Config holds the settings for the newswire client.
type Config struct {
	// APIKey authenticates requests. Required.
	APIKey string

	// BaseURL is the API root. Defaults to DefaultBaseURL.
	BaseURL string

	// Query is the search query. Defaults to the gaming beat.
	Query string

	// PageSize is how many stories one fetch returns. Defaults to 10.
	PageSize int

	// RequestsPerHour throttles outgoing calls. The free NewsAPI tier
	// allows 100 requests per day, so the default of 4/hour stays well
	// under it. Zero disables throttling.
	RequestsPerHour int
}

// ConfigFromEnv builds a Config from NEWS_API_KEY, NEWS_API_BASE_URL,
// NEWS_API_QUERY and NEWS_API_PAGE_SIZE.
func ConfigFromEnv() Config {
	cfg := Config{
		APIKey:          os.Getenv("NEWS_API_KEY"),
		BaseURL:         os.Getenv("NEWS_API_BASE_URL"),
		Query:           os.Getenv("NEWS_API_QUERY"),
		RequestsPerHour: 4,
	}
	if val := os.Getenv("NEWS_API_PAGE_SIZE"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			cfg.PageSize = parsed
		}
	}
	return cfg
}

// Client implements ingest.NewsSource against a NewsAPI-compatible API.
// Requests run through a rate limiter, a circuit breaker, and retry with
// backoff, in that order.
type Client struct {
	apiKey         string
	baseURL        string
	query          string
	pageSize       int
	client         *http.Client
	limiter        *rate.Limiter
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
}

// New creates a newswire client. An empty API key is allowed here so
// construction cannot fail; Fetch reports the missing key instead.
func New(cfg Config, client *http.Client) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Query == "" {
		cfg.Query = defaultQuery
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}

	limit := rate.Inf
	if cfg.RequestsPerHour > 0 {
		limit = rate.Every(time.Hour / time.Duration(cfg.RequestsPerHour))
	}

	return &Client{
		apiKey:         cfg.APIKey,
		baseURL:        cfg.BaseURL,
		query:          cfg.Query,
		pageSize:       cfg.PageSize,
		client:         client,
		limiter:        rate.NewLimiter(limit, 1),
		circuitBreaker: circuitbreaker.New(circuitbreaker.NewsAPIConfig()),
		retryConfig:    retry.NewsAPIConfig(),
	}
}

// Name identifies the source in logs and metrics.
func (c *Client) Name() string {
	return "newsapi"
}

// Fetch queries the API for the latest gaming stories.
func (c *Client) Fetch(ctx context.Context) ([]ingest.WireItem, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("news API key not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var items []ingest.WireItem

	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doFetch(ctx)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("news API circuit breaker open, request rejected",
					slog.String("source", c.Name()),
					slog.String("state", c.circuitBreaker.State().String()))
				return err
			}
			return err
		}

		items = cbResult.([]ingest.WireItem)
		return nil
	})

	if retryErr != nil {
		return nil, retryErr
	}

	return items, nil
}

// wireResponse mirrors the NewsAPI everything-endpoint payload.
type wireResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Content     string    `json:"content"`
		URL         string    `json:"url"`
		URLToImage  string    `json:"urlToImage"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"articles"`
}

// doFetch performs the actual API call without retry or circuit breaker.
func (c *Client) doFetch(ctx context.Context) ([]ingest.WireItem, error) {
	endpoint := c.baseURL + "/v2/everything"

	params := url.Values{}
	params.Set("q", c.query)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(c.pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	// The key goes in a header, not the query string, so it never lands
	// in access logs.
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("User-Agent", "GamePulseBot/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news API request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &retry.HTTPError{StatusCode: resp.StatusCode, Message: "news API returned non-OK status"}
	}

	var parsed wireResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if parsed.Status != "ok" {
		return nil, fmt.Errorf("news API error status %q: %s", parsed.Status, parsed.Message)
	}

	items := make([]ingest.WireItem, 0, len(parsed.Articles))
	for _, a := range parsed.Articles {
		items = append(items, ingest.WireItem{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			SourceName:  a.Source.Name,
			PublishedAt: a.PublishedAt,
		})
	}

	return items, nil
}
