// Package repository defines the persistence interfaces for the catalog.
// Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"gamepulse/internal/domain/entity"
)

// CategoryAll is the sentinel category value meaning "no filter".
const CategoryAll = "all"

// SearchResultLimit caps the number of records a substring search may return.
const SearchResultLimit = 10

// ListOptions contains the typed query parameters for list operations.
// A zero Limit means "no limit"; an empty or sentinel Category means
// "all categories". Category matching is case-insensitive exact equality.
type ListOptions struct {
	Limit    int
	Category string
}

// FiltersByCategory reports whether the options request category filtering.
func (o ListOptions) FiltersByCategory() bool {
	return o.Category != "" && o.Category != CategoryAll
}

// ArticleRepository is the storage contract for articles.
//
// Implementations must guarantee:
//   - Create assigns a unique, monotonically increasing id and never reuses one.
//   - List orders by publishedAt descending, ties broken by insertion order.
//   - Search matches a case-insensitive substring of title, summary, or
//     content (OR semantics), ordered newest first, capped at SearchResultLimit.
//   - GetFeatured returns the single featured article; if a bug ever leaves
//     several featured, the most recently published one wins.
//   - SetFeatured atomically clears every featured flag and sets the target's;
//     it returns entity.ErrNotFound without touching any flag when the target
//     id does not exist.
//
// Lookups for missing ids return (nil, nil), not an error.
type ArticleRepository interface {
	List(ctx context.Context, opts ListOptions) ([]*entity.Article, error)
	Get(ctx context.Context, id int64) (*entity.Article, error)
	GetFeatured(ctx context.Context) (*entity.Article, error)
	Search(ctx context.Context, query string) ([]*entity.Article, error)
	Create(ctx context.Context, article *entity.Article) error
	SetFeatured(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
