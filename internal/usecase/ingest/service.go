// Package ingest provides the use case that pulls gaming news from
// external sources into the catalog. It deduplicates against existing
// articles, assigns a category, and keeps the featured slot pointed at
// the newest story.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"gamepulse/internal/domain/entity"
	"gamepulse/internal/repository"
)

// PlaceholderImageURL is used when a wire item carries no image.
const PlaceholderImageURL = "https://placehold.co/600x400?text=Gaming+News"

// titleDedupePrefixLen is how much of a title is matched against the
// catalog to detect near-duplicate stories from different outlets.
const titleDedupePrefixLen = 30

// categories an ingested article can land in.
var categories = []string{"pc", "console", "mobile", "industry", "esports"}

// WireItem is a single story delivered by a news source.
type WireItem struct {
	Title       string
	Description string
	Content     string
	URL         string
	ImageURL    string
	SourceName  string
	PublishedAt time.Time
}

// NewsSource delivers the latest gaming stories from one upstream.
type NewsSource interface {
	Fetch(ctx context.Context) ([]WireItem, error)
	Name() string
}

// ContentEnhancer fetches the full article text when the wire only
// carries a teaser. Optional.
type ContentEnhancer interface {
	FetchContent(ctx context.Context, url string) (string, error)
}

// Service orchestrates one ingestion run across all configured sources.
type Service struct {
	ArticleRepo repository.ArticleRepository
	Sources     []NewsSource
	Enhancer    ContentEnhancer

	// ContentThreshold is the minimum wire content length below which
	// the enhancer is consulted.
	ContentThreshold int

	// Observe, when set, is called with the source name and the outcome
	// of every wire item (inserted, duplicated, failed).
	Observe func(source, result string)
}

func (s *Service) observe(source, result string) {
	if s.Observe != nil {
		s.Observe(source, result)
	}
}

// Stats summarizes one ingestion run.
type Stats struct {
	Sources    int
	Items      int
	Inserted   int
	Duplicated int
	Failed     int
	Duration   time.Duration
}

// batch is the fetch result of one source, kept in source order so
// runs stay deterministic regardless of fetch completion order.
type batch struct {
	source string
	items  []WireItem
}

// Run pulls every source, stores new stories and promotes the newest
// article to the featured slot. Sources are fetched concurrently;
// items are then ingested serially so deduplication sees every prior
// insert. A failing source or item is logged and skipped; only context
// cancellation aborts the run.
func (s *Service) Run(ctx context.Context) (*Stats, error) {
	start := time.Now()
	stats := &Stats{Sources: len(s.Sources)}

	batches := make([]batch, len(s.Sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range s.Sources {
		g.Go(func() error {
			items, err := src.Fetch(gctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				slog.Warn("news source fetch failed",
					slog.String("source", src.Name()),
					slog.Any("error", err))
				return nil
			}
			batches[i] = batch{source: src.Name(), items: items}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}

	for _, b := range batches {
		for _, item := range b.items {
			stats.Items++
			inserted, err := s.ingestItem(ctx, item)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return stats, err
				}
				stats.Failed++
				s.observe(b.source, "failed")
				slog.Warn("failed to ingest article",
					slog.String("source", b.source),
					slog.String("title", item.Title),
					slog.Any("error", err))
				continue
			}
			if inserted {
				stats.Inserted++
				s.observe(b.source, "inserted")
			} else {
				stats.Duplicated++
				s.observe(b.source, "duplicated")
			}
		}
	}

	if err := s.promoteNewest(ctx); err != nil {
		slog.Warn("failed to promote newest article", slog.Any("error", err))
	}

	stats.Duration = time.Since(start)
	slog.Info("ingestion run completed",
		slog.Int("sources", stats.Sources),
		slog.Int("items", stats.Items),
		slog.Int("inserted", stats.Inserted),
		slog.Int("duplicated", stats.Duplicated),
		slog.Int("failed", stats.Failed),
		slog.Duration("duration", stats.Duration))
	return stats, nil
}

// ingestItem stores one wire item unless a story with a similar title
// already exists. Reports whether an insert happened.
func (s *Service) ingestItem(ctx context.Context, item WireItem) (bool, error) {
	if item.Title == "" {
		return false, fmt.Errorf("wire item has no title")
	}

	// Truncate on rune boundaries; a byte slice could split a multi-byte
	// character and break the dedupe match for non-ASCII titles.
	prefix := item.Title
	if runes := []rune(prefix); len(runes) > titleDedupePrefixLen {
		prefix = string(runes[:titleDedupePrefixLen])
	}
	similar, err := s.ArticleRepo.Search(ctx, prefix)
	if err != nil {
		return false, fmt.Errorf("dedupe search: %w", err)
	}
	if len(similar) > 0 {
		return false, nil
	}

	art := s.mapToArticle(ctx, item)
	if err := s.ArticleRepo.Create(ctx, art); err != nil {
		return false, fmt.Errorf("create article: %w", err)
	}
	return true, nil
}

// mapToArticle converts a wire item into a catalog article, filling in
// a category, image fallback and content enhancement.
func (s *Service) mapToArticle(ctx context.Context, item WireItem) *entity.Article {
	content := item.Content
	if s.Enhancer != nil && len(content) < s.ContentThreshold && item.URL != "" {
		if full, err := s.Enhancer.FetchContent(ctx, item.URL); err == nil && len(full) > len(content) {
			content = full
		} else if err != nil {
			slog.Debug("content enhancement failed, keeping wire content",
				slog.String("url", item.URL),
				slog.Any("error", err))
		}
	}

	body := "<p>" + item.Description + "</p><p>" + content + "</p>"
	if item.URL != "" {
		source := item.SourceName
		if source == "" {
			source = "External source"
		}
		body += fmt.Sprintf(`<p>Source: <a href="%s" target="_blank" rel="noopener noreferrer">%s</a></p>`, item.URL, source)
	}

	summary := item.Description
	if summary == "" {
		summary = "No description available"
	}

	imageURL := item.ImageURL
	if imageURL == "" {
		imageURL = PlaceholderImageURL
	}

	publishedAt := item.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now()
	}

	return &entity.Article{
		Title:       item.Title,
		Content:     body,
		Summary:     summary,
		ImageURL:    imageURL,
		Category:    categorize(item),
		PublishedAt: publishedAt,
	}
}

// categorize assigns a pseudo-random but stable category derived from
// the item's text lengths.
func categorize(item WireItem) string {
	idx := (len(item.Title) + len(item.Description)) % len(categories)
	return categories[idx]
}

// promoteNewest points the featured slot at the most recent article.
func (s *Service) promoteNewest(ctx context.Context) error {
	newest, err := s.ArticleRepo.List(ctx, repository.ListOptions{Limit: 1})
	if err != nil {
		return fmt.Errorf("list newest article: %w", err)
	}
	if len(newest) == 0 {
		return nil
	}
	if err := s.ArticleRepo.SetFeatured(ctx, newest[0].ID); err != nil {
		return fmt.Errorf("set featured: %w", err)
	}
	slog.Info("featured article updated",
		slog.Int64("article_id", newest[0].ID),
		slog.String("title", newest[0].Title))
	return nil
}
