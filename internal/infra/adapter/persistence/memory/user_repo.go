package memory

import (
	"context"
	"sync"

	"gamepulse/internal/domain/entity"
)

// UserRepo implements repository.UserRepository in memory.
type UserRepo struct {
	mu     sync.RWMutex
	items  []entity.User
	byID   map[int64]int
	nextID int64
}

// NewUserRepo creates an empty in-memory user repository.
func NewUserRepo() *UserRepo {
	return &UserRepo{byID: make(map[int64]int), nextID: 1}
}

func (r *UserRepo) Get(_ context.Context, id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	u := r.items[idx]
	return &u, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].Username == username {
			u := r.items[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++

	r.byID[user.ID] = len(r.items)
	r.items = append(r.items, *user)
	return nil
}
