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

// ReviewRepo implements repository.ReviewRepository in memory.
type ReviewRepo struct {
	mu     sync.RWMutex
	items  []entity.Review
	byID   map[int64]int
	nextID int64
}

// NewReviewRepo creates an empty in-memory review repository.
func NewReviewRepo() *ReviewRepo {
	return &ReviewRepo{byID: make(map[int64]int), nextID: 1}
}

func (r *ReviewRepo) List(_ context.Context, opts repository.ListOptions) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Review, 0, len(r.items))
	for i := range r.items {
		if opts.FiltersByCategory() && !strings.EqualFold(r.items[i].Category, opts.Category) {
			continue
		}
		rv := r.items[i]
		out = append(out, &rv)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})

	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (r *ReviewRepo) Get(_ context.Context, id int64) (*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	rv := r.items[idx]
	return &rv, nil
}

func (r *ReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	review.ID = r.nextID
	r.nextID++
	if review.PublishedAt.IsZero() {
		review.PublishedAt = time.Now()
	}

	r.byID[review.ID] = len(r.items)
	r.items = append(r.items, *review)
	return nil
}
