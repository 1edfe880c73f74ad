// Package feed provides an RSS/Atom news source implementation.
// It uses the gofeed library to parse feed content with reliability patterns.
package feed

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"gamepulse/internal/resilience/circuitbreaker"
	"gamepulse/internal/resilience/retry"
	"gamepulse/internal/usecase/ingest"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/sony/gobreaker"
)

// RSSSource implements ingest.NewsSource for a single RSS/Atom feed.
// It includes circuit breaker and retry logic for improved reliability.
type RSSSource struct {
	name           string
	feedURL        string
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
}

// NewRSSSource creates a news source for the given feed URL.
// It automatically configures circuit breaker and retry logic.
func NewRSSSource(name, feedURL string, client *http.Client) *RSSSource {
	return &RSSSource{
		name:           name,
		feedURL:        feedURL,
		client:         client,
		circuitBreaker: circuitbreaker.New(circuitbreaker.FeedFetchConfig()),
		retryConfig:    retry.FeedFetchConfig(),
	}
}

// Name returns the configured source name.
func (s *RSSSource) Name() string {
	return s.name
}

// Fetch retrieves and parses the feed, returning its entries as wire items.
// It uses circuit breaker and retry logic for improved reliability.
func (s *RSSSource) Fetch(ctx context.Context) ([]ingest.WireItem, error) {
	var items []ingest.WireItem

	retryErr := retry.WithBackoff(ctx, s.retryConfig, func() error {
		cbResult, err := s.circuitBreaker.Execute(func() (interface{}, error) {
			return s.doFetch(ctx)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("feed fetch circuit breaker open, request rejected",
					slog.String("source", s.name),
					slog.String("url", s.feedURL),
					slog.String("state", s.circuitBreaker.State().String()))
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

// doFetch performs the actual feed fetch without retry or circuit breaker.
func (s *RSSSource) doFetch(ctx context.Context) ([]ingest.WireItem, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "GamePulseBot"
	fp.Client = s.client

	feed, err := fp.ParseURLWithContext(s.feedURL, ctx)
	if err != nil {
		return nil, err
	}

	items := make([]ingest.WireItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		pubAt := time.Now()
		if it.PublishedParsed != nil {
			pubAt = *it.PublishedParsed
		}

		// Prefer full content, fall back to the description
		content := it.Content
		if content == "" {
			content = it.Description
		}

		items = append(items, ingest.WireItem{
			Title:       it.Title,
			Description: plainText(it.Description),
			Content:     content,
			URL:         it.Link,
			ImageURL:    itemImage(it),
			SourceName:  s.name,
			PublishedAt: pubAt,
		})
	}

	return items, nil
}

// itemImage picks an image URL for a feed item. Enclosures and media
// extensions come first, then the first <img> in the item body.
func itemImage(it *gofeed.Item) string {
	if it.Image != nil && it.Image.URL != "" {
		return it.Image.URL
	}

	for _, enc := range it.Enclosures {
		if strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}

	if media, ok := it.Extensions["media"]; ok {
		for _, ext := range media["content"] {
			if url := ext.Attrs["url"]; url != "" {
				return url
			}
		}
		for _, ext := range media["thumbnail"] {
			if url := ext.Attrs["url"]; url != "" {
				return url
			}
		}
	}

	return firstImageURL(it.Content + it.Description)
}

// firstImageURL extracts the src of the first <img> tag in an HTML fragment.
func firstImageURL(html string) string {
	if !strings.Contains(html, "<img") {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	src, _ := doc.Find("img").First().Attr("src")
	return src
}

// plainText strips HTML tags from a fragment, leaving readable text.
func plainText(html string) string {
	if !strings.Contains(html, "<") {
		return strings.TrimSpace(html)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}

	return strings.TrimSpace(doc.Text())
}
