package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gamepulse/internal/domain/entity"
	"gamepulse/internal/repository"
)

// SubscriptionRepo implements the SubscriptionRepository interface using SQLite.
type SubscriptionRepo struct{ db *sql.DB }

// NewSubscriptionRepo creates a new SQLite-backed subscription repository.
func NewSubscriptionRepo(db *sql.DB) repository.SubscriptionRepository {
	return &SubscriptionRepo{db: db}
}

// Create inserts a subscription, or returns the stored one when the email
// already signed up. The unique index on email backs the conflict check.
func (repo *SubscriptionRepo) Create(ctx context.Context, sub *entity.Subscription) error {
	now := time.Now()
	const insert = `
INSERT INTO subscriptions (email, subscribed_at, accepted_policy)
VALUES (?, ?, ?)
ON CONFLICT (email) DO NOTHING
`
	res, err := repo.db.ExecContext(ctx, insert, sub.Email, now, sub.AcceptedPolicy)
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("Create: LastInsertId: %w", err)
		}
		sub.ID = id
		sub.SubscribedAt = now
		return nil
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
WHERE email = ?
LIMIT 1
`
	var s entity.Subscription
	err := repo.db.QueryRowContext(ctx, query, email).
		Scan(&s.ID, &s.Email, &s.SubscribedAt, &s.AcceptedPolicy)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetByEmail: QueryRowContext: %w", err)
	}
	return &s, nil
}
