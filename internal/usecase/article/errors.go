// Package article provides use cases for the news catalog.
// It implements business logic for listing, fetching, searching and
// promoting articles, delegating persistence to the article repository.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrNoFeaturedArticle indicates that the catalog has no featured
	// article yet, which only happens before any content was loaded.
	ErrNoFeaturedArticle = errors.New("no featured article")

	// ErrEmptyQuery indicates that a search was requested with an empty
	// or whitespace-only query.
	ErrEmptyQuery = errors.New("search query is empty")
)
