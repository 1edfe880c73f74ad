// Package memory provides in-memory implementations of the repository
// interfaces. Each repository guards its collection with an RWMutex and hands
// out copies of stored records, so callers can never mutate catalog state
// behind the store's back. Intended for development, tests, and single-node
// deployments without a database.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"gamepulse/internal/domain/entity"
	"gamepulse/internal/repository"
)

// ArticleRepo implements repository.ArticleRepository backed by a slice kept
// in insertion order, which makes the publishedAt sort naturally stable.
type ArticleRepo struct {
	mu     sync.RWMutex
	items  []entity.Article
	byID   map[int64]int
	nextID int64
}

// NewArticleRepo creates an empty in-memory article repository.
func NewArticleRepo() *ArticleRepo {
	return &ArticleRepo{byID: make(map[int64]int), nextID: 1}
}

func (r *ArticleRepo) List(_ context.Context, opts repository.ListOptions) ([]*entity.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Article, 0, len(r.items))
	for i := range r.items {
		if opts.FiltersByCategory() && !strings.EqualFold(r.items[i].Category, opts.Category) {
			continue
		}
		a := r.items[i]
		out = append(out, &a)
	}

	sortByPublishedDesc(out)

	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (r *ArticleRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	a := r.items[idx]
	return &a, nil
}

// GetFeatured returns the featured article. Should the single-featured
// invariant ever be violated, the most recently published candidate wins.
func (r *ArticleRepo) GetFeatured(_ context.Context) (*entity.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *entity.Article
	for i := range r.items {
		if !r.items[i].Featured {
			continue
		}
		if found == nil || r.items[i].PublishedAt.After(found.PublishedAt) {
			a := r.items[i]
			found = &a
		}
	}
	return found, nil
}

func (r *ArticleRepo) Search(_ context.Context, query string) ([]*entity.Article, error) {
	q := strings.ToLower(query)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Article, 0, repository.SearchResultLimit)
	for i := range r.items {
		a := r.items[i]
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Summary), q) ||
			strings.Contains(strings.ToLower(a.Content), q) {
			aa := a
			out = append(out, &aa)
		}
	}

	sortByPublishedDesc(out)

	if len(out) > repository.SearchResultLimit {
		out = out[:repository.SearchResultLimit]
	}
	return out, nil
}

func (r *ArticleRepo) Create(_ context.Context, article *entity.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	article.ID = r.nextID
	r.nextID++
	if article.PublishedAt.IsZero() {
		article.PublishedAt = time.Now()
	}

	r.byID[article.ID] = len(r.items)
	r.items = append(r.items, *article)
	return nil
}

// SetFeatured clears every featured flag and marks the target article, as a
// single critical section so no reader ever observes zero or two featured
// articles mid-transition. An unknown id returns entity.ErrNotFound and
// leaves all flags untouched.
func (r *ArticleRepo) SetFeatured(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[id]
	if !ok {
		return entity.ErrNotFound
	}
	for i := range r.items {
		r.items[i].Featured = false
	}
	r.items[idx].Featured = true
	return nil
}

func (r *ArticleRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

// sortByPublishedDesc orders newest first. The input preserves insertion
// order, so the stable sort breaks publishedAt ties by insertion order.
func sortByPublishedDesc(items []*entity.Article) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
}
