package memory

import (
	"context"
	"sync"
	"time"

	"gamepulse/internal/domain/entity"
)

// SubscriptionRepo implements repository.SubscriptionRepository in memory.
type SubscriptionRepo struct {
	mu      sync.RWMutex
	items   []entity.Subscription
	byEmail map[string]int
	nextID  int64
}

// NewSubscriptionRepo creates an empty in-memory subscription repository.
func NewSubscriptionRepo() *SubscriptionRepo {
	return &SubscriptionRepo{byEmail: make(map[string]int), nextID: 1}
}

// Create stores a new subscription, or fills sub with the already-stored
// record when the email is taken. The lookup and insert share one critical
// section, so two concurrent sign-ups with the same email can never both
// insert.
func (r *SubscriptionRepo) Create(_ context.Context, sub *entity.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, ok := r.byEmail[sub.Email]; ok {
		*sub = r.items[idx]
		return nil
	}

	sub.ID = r.nextID
	r.nextID++
	sub.SubscribedAt = time.Now()

	r.byEmail[sub.Email] = len(r.items)
	r.items = append(r.items, *sub)
	return nil
}

func (r *SubscriptionRepo) GetByEmail(_ context.Context, email string) (*entity.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	s := r.items[idx]
	return &s, nil
}
