package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"gamepulse/internal/domain/entity"
	"gamepulse/internal/repository"
)

type SubscriptionRepo struct {
	db *sql.DB
}

func NewSubscriptionRepo(db *sql.DB) repository.SubscriptionRepository {
	return &SubscriptionRepo{db: db}
}

// Create inserts a subscription, or returns the stored one when the email
// already signed up. ON CONFLICT DO NOTHING plus a follow-up select keeps
// concurrent duplicate sign-ups from racing past the unique index.
func (repo *SubscriptionRepo) Create(ctx context.Context, sub *entity.Subscription) error {
	const insert = `
INSERT INTO subscriptions (email, subscribed_at, accepted_policy)
VALUES ($1, NOW(), $2)
ON CONFLICT (email) DO NOTHING
RETURNING id, subscribed_at`
	err := repo.db.QueryRowContext(ctx, insert, sub.Email, sub.AcceptedPolicy).
		Scan(&sub.ID, &sub.SubscribedAt)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("Create: %w", err)
	}

	existing, err := repo.GetByEmail(ctx, sub.Email)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("Create: conflicting row vanished for %q", sub.Email)
	}
	*sub = *existing
	return nil
}

func (repo *SubscriptionRepo) GetByEmail(ctx context.Context, email string) (*entity.Subscription, error) {
	const query = `
SELECT id, email, subscribed_at, accepted_policy
FROM subscriptions
WHERE email = $1
LIMIT 1`
	var s entity.Subscription
	err := repo.db.QueryRowContext(ctx, query, email).
		Scan(&s.ID, &s.Email, &s.SubscribedAt, &s.AcceptedPolicy)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	return &s, nil
}
