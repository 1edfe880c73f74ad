package article

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gamepulse/internal/domain/entity"
	"gamepulse/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title        string
	Content      string
	Summary      string
	ImageURL     string
	Category     string
	PublishedAt  time.Time
	CommentCount int
	Featured     bool
}

// Service provides article catalog use cases.
// It handles business logic for article operations and delegates
// persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// List retrieves articles newest first, optionally filtered by category
// and truncated to the given limit. A zero limit means no truncation,
// and the category "all" (or an empty one) matches everything.
func (s *Service) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Article, error) {
	if opts.Limit < 0 {
		return nil, &entity.ValidationError{Field: "limit", Message: "must not be negative"}
	}

	articles, err := s.Repo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// GetFeatured retrieves the current featured article.
// Returns ErrNoFeaturedArticle when the catalog holds none.
func (s *Service) GetFeatured(ctx context.Context) (*entity.Article, error) {
	article, err := s.Repo.GetFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("get featured article: %w", err)
	}
	if article == nil {
		return nil, ErrNoFeaturedArticle
	}
	return article, nil
}

// SetFeatured promotes the article with the given ID to be the single
// featured one. Returns ErrArticleNotFound when the ID is unknown; the
// previous featured article keeps its flag in that case.
func (s *Service) SetFeatured(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	if err := s.Repo.SetFeatured(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("set featured article: %w", err)
	}
	return nil
}

// Search finds articles whose title, summary or content contains the
// keyword, case-insensitively. Returns ErrEmptyQuery for a blank query.
func (s *Service) Search(ctx context.Context, kw string) ([]*entity.Article, error) {
	kw = strings.TrimSpace(kw)
	if kw == "" {
		return nil, ErrEmptyQuery
	}

	articles, err := s.Repo.Search(ctx, kw)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return articles, nil
}

// Create creates a new article with the provided input.
// Returns a ValidationError if a required field is missing.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if in.Content == "" {
		return nil, &entity.ValidationError{Field: "content", Message: "is required"}
	}
	if in.Category == "" {
		return nil, &entity.ValidationError{Field: "category", Message: "is required"}
	}

	art := &entity.Article{
		Title:        in.Title,
		Content:      in.Content,
		Summary:      in.Summary,
		ImageURL:     in.ImageURL,
		Category:     in.Category,
		PublishedAt:  in.PublishedAt,
		CommentCount: in.CommentCount,
		Featured:     in.Featured,
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Count reports how many articles the catalog holds.
func (s *Service) Count(ctx context.Context) (int64, error) {
	count, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}
