package postgres

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

type ArticleRepo struct {
	db *sql.DB
}

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

// List returns articles newest first. Ties on published_at keep insertion
// order, which the id tie-break preserves since ids grow monotonically.
func (repo *ArticleRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles`
	args := make([]any, 0, 2)
	if opts.FiltersByCategory() {
		args = append(args, opts.Category)
		query += fmt.Sprintf("\nWHERE LOWER(category) = LOWER($%d)", len(args))
	}
	query += "\nORDER BY published_at DESC, id ASC"
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf("\nLIMIT $%d", len(args))
	}

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
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
	return articles, rows.Err()
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`
	a, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return a, nil
}

func (repo *ArticleRepo) GetFeatured(ctx context.Context) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE featured
ORDER BY published_at DESC, id ASC
LIMIT 1`
	a, err := scanArticle(repo.db.QueryRowContext(ctx, query))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetFeatured: %w", err)
	}
	return a, nil
}

func (repo *ArticleRepo) Search(ctx context.Context, keyword string) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE title   ILIKE $1
   OR summary ILIKE $1
   OR content ILIKE $1
ORDER BY published_at DESC, id ASC
LIMIT $2`
	param := "%" + likeEscaper.Replace(keyword) + "%"
	rows, err := repo.db.QueryContext(ctx, query, param, repository.SearchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
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
	return articles, rows.Err()
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	if article.PublishedAt.IsZero() {
		article.PublishedAt = time.Now()
	}
	const query = `
INSERT INTO articles
	   (title, content, summary, image_url, category, published_at, comment_count, featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.Content, article.Summary, article.ImageURL,
		article.Category, article.PublishedAt, article.CommentCount, article.Featured,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// SetFeatured promotes one article and demotes every other one inside a
// single transaction, so readers never observe zero or two featured rows.
func (repo *ArticleRepo) SetFeatured(ctx context.Context, id int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("SetFeatured: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `UPDATE articles SET featured = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("SetFeatured: promote: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `UPDATE articles SET featured = FALSE WHERE featured AND id <> $1`, id); err != nil {
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
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
