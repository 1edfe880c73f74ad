package repository

import (
	"context"

	"gamepulse/internal/domain/entity"
)

// ReviewRepository is the storage contract for reviews. Ordering, filtering,
// and id-assignment rules match ArticleRepository; reviews are immutable
// after Create.
type ReviewRepository interface {
	List(ctx context.Context, opts ListOptions) ([]*entity.Review, error)
	Get(ctx context.Context, id int64) (*entity.Review, error)
	Create(ctx context.Context, review *entity.Review) error
}
