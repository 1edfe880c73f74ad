package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gamepulse/internal/domain/entity"
	"gamepulse/internal/repository"
)

const reviewColumns = `id, title, content, summary, image_url, category, rating, published_at, author`

// ReviewRepo implements the ReviewRepository interface using SQLite.
type ReviewRepo struct{ db *sql.DB }

// NewReviewRepo creates a new SQLite-backed review repository.
func NewReviewRepo(db *sql.DB) repository.ReviewRepository {
	return &ReviewRepo{db: db}
}

func scanReview(row interface{ Scan(...any) error }) (*entity.Review, error) {
	var rv entity.Review
	err := row.Scan(&rv.ID, &rv.Title, &rv.Content, &rv.Summary, &rv.ImageURL,
		&rv.Category, &rv.Rating, &rv.PublishedAt, &rv.Author)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (repo *ReviewRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Review, error) {
	query := `
SELECT ` + reviewColumns + `
FROM reviews`
	args := make([]any, 0, 2)
	if opts.FiltersByCategory() {
		query += "\nWHERE LOWER(category) = LOWER(?)"
		args = append(args, opts.Category)
	}
	query += "\nORDER BY published_at DESC, id ASC"
	if opts.Limit > 0 {
		query += "\nLIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	reviews := make([]*entity.Review, 0, 32)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}
	return reviews, nil
}

func (repo *ReviewRepo) Get(ctx context.Context, id int64) (*entity.Review, error) {
	const query = `
SELECT ` + reviewColumns + `
FROM reviews
WHERE id = ?
LIMIT 1
`
	rv, err := scanReview(repo.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return rv, nil
}

func (repo *ReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	if review.PublishedAt.IsZero() {
		review.PublishedAt = time.Now()
	}
	const query = `
INSERT INTO reviews
	   (title, content, summary, image_url, category, rating, published_at, author)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`
	res, err := repo.db.ExecContext(ctx, query,
		review.Title, review.Content, review.Summary, review.ImageURL,
		review.Category, review.Rating, review.PublishedAt, review.Author,
	)
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	review.ID = id
	return nil
}
