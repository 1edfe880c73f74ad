package repository

import (
	"context"

	"gamepulse/internal/domain/entity"
)

// UserRepository is the storage contract for users. Username uniqueness is
// not enforced at this layer. Lookups for missing records return (nil, nil).
type UserRepository interface {
	Get(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}
