package review

import (
	"context"
	"fmt"
	"time"

	"gamepulse/internal/domain/entity"
	"gamepulse/internal/repository"
)

// CreateInput represents the input parameters for creating a new review.
type CreateInput struct {
	Title       string
	Content     string
	Summary     string
	ImageURL    string
	Category    string
	Rating      int
	PublishedAt time.Time
	Author      string
}

// Service provides review catalog use cases.
type Service struct {
	Repo repository.ReviewRepository
}

// List retrieves reviews newest first, optionally filtered by category
// and truncated to the given limit.
func (s *Service) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Review, error) {
	if opts.Limit < 0 {
		return nil, &entity.ValidationError{Field: "limit", Message: "must not be negative"}
	}

	reviews, err := s.Repo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// Get retrieves a single review by its ID.
// Returns ErrInvalidReviewID if the ID is not positive.
// Returns ErrReviewNotFound if the review does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Review, error) {
	if id <= 0 {
		return nil, ErrInvalidReviewID
	}

	review, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

// Create creates a new review with the provided input.
// Returns a ValidationError if a required field is missing or the
// rating falls outside the 0-100 scale.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Review, error) {
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if in.Content == "" {
		return nil, &entity.ValidationError{Field: "content", Message: "is required"}
	}
	if err := entity.ValidateRating(in.Rating); err != nil {
		return nil, fmt.Errorf("validate rating: %w", err)
	}

	rv := &entity.Review{
		Title:       in.Title,
		Content:     in.Content,
		Summary:     in.Summary,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Rating:      in.Rating,
		PublishedAt: in.PublishedAt,
		Author:      in.Author,
	}

	if err := s.Repo.Create(ctx, rv); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return rv, nil
}
