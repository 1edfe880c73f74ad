// Package entity defines the core domain entities and validation logic for the
// catalog. It contains the fundamental business objects such as Article, Review,
// and Subscription, along with their validation rules and domain-specific errors.
package entity

import "time"

// Article represents a news article in the catalog.
// At most one article in the whole collection carries Featured = true;
// the catalog store owns that invariant via its SetFeatured operation.
type Article struct {
	ID           int64
	Title        string
	Content      string
	Summary      string
	ImageURL     string
	Category     string
	PublishedAt  time.Time
	CommentCount int
	Featured     bool
}
