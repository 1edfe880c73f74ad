package repository

import (
	"context"

	"gamepulse/internal/domain/entity"
)

// SubscriptionRepository is the storage contract for newsletter subscriptions.
//
// Create is idempotent by email: when the email is already subscribed the
// implementation leaves the stored record unchanged and fills the passed
// struct with the existing record. Email comparison is case-sensitive exact
// match. GetByEmail returns (nil, nil) for an unknown address.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entity.Subscription) error
	GetByEmail(ctx context.Context, email string) (*entity.Subscription, error)
}
