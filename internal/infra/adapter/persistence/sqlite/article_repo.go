// Package sqlite provides SQLite implementations of the repository
// interfaces for single-node deployments that do not run Postgres.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"gamepulse/internal/domain/entity"
	"gamepulse/internal/repository"
)

const articleColumns = `id, title, content, summary, image_url, category, published_at, comment_count, featured`

// likeEscaper neutralizes LIKE metacharacters so a keyword containing
// % or _ matches literally, as the in-memory backend does.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ArticleRepo implements the ArticleRepository interface using SQLite.
type ArticleRepo struct{ db *sql.DB }

// NewArticleRepo creates a new SQLite-backed article repository.
func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func scanArticle(row interface{ Scan(...any) error }) (*entity.Article, error) {
	var a entity.Article
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Summary, &a.ImageURL,
		&a.Category, &a.PublishedAt, &a.CommentCount, &a.Featured)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List retrieves articles newest first, optionally filtered by category
// and truncated to the requested limit.
func (repo *ArticleRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles`
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

	articles := make([]*entity.Article, 0, 32)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}
	return articles, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = ?
LIMIT 1
`
	a, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return a, nil
}

func (repo *ArticleRepo) GetFeatured(ctx context.Context) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE featured
ORDER BY published_at DESC, id ASC
LIMIT 1
`
	a, err := scanArticle(repo.db.QueryRowContext(ctx, query))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetFeatured: QueryRowContext: %w", err)
	}
	return a, nil
}

// Search matches the keyword against title, summary and content.
// SQLite LIKE is case-insensitive for ASCII, which covers the catalog.
func (repo *ArticleRepo) Search(ctx context.Context, keyword string) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE title   LIKE ? ESCAPE '\'
   OR summary LIKE ? ESCAPE '\'
   OR content LIKE ? ESCAPE '\'
ORDER BY published_at DESC, id ASC
LIMIT ?
`
	param := "%" + likeEscaper.Replace(keyword) + "%"
	rows, err := repo.db.QueryContext(ctx, query, param, param, param, repository.SearchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("Search: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, repository.SearchResultLimit)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("Search: Scan: %w", err)
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Search: rows.Err: %w", err)
	}
	return articles, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	if article.PublishedAt.IsZero() {
		article.PublishedAt = time.Now()
	}
	const query = `
INSERT INTO articles
	   (title, content, summary, image_url, category, published_at, comment_count, featured)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`
	res, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Content, article.Summary, article.ImageURL,
		article.Category, article.PublishedAt, article.CommentCount, article.Featured,
	)
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	article.ID = id
	return nil
}

// SetFeatured promotes one article and demotes the rest in a single
// transaction.
func (repo *ArticleRepo) SetFeatured(ctx context.Context, id int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("SetFeatured: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `UPDATE articles SET featured = TRUE WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("SetFeatured: promote: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `UPDATE articles SET featured = FALSE WHERE featured AND id <> ?`, id); err != nil {
		return fmt.Errorf("SetFeatured: demote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("SetFeatured: commit: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: QueryRowContext: %w", err)
	}
	return count, nil
}
