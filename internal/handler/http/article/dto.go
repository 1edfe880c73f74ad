// Package article provides HTTP handlers for the news article endpoints.
// It includes handlers for listing, fetching and searching articles and
// for reading the featured story.
package article

import (
	"time"

	"gamepulse/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Summary      string    `json:"summary"`
	ImageURL     string    `json:"imageUrl"`
	Category     string    `json:"category"`
	PublishedAt  time.Time `json:"publishedAt"`
	CommentCount int       `json:"commentCount"`
	Featured     bool      `json:"featured"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:           a.ID,
		Title:        a.Title,
		Content:      a.Content,
		Summary:      a.Summary,
		ImageURL:     a.ImageURL,
		Category:     a.Category,
		PublishedAt:  a.PublishedAt,
		CommentCount: a.CommentCount,
		Featured:     a.Featured,
	}
}

func toDTOs(list []*entity.Article) []DTO {
	out := make([]DTO, 0, len(list))
	for _, a := range list {
		out = append(out, toDTO(a))
	}
	return out
}
