// Package review provides HTTP handlers for the game review endpoints.
package review

import (
	"time"

	"gamepulse/internal/domain/entity"
)

// DTO represents the JSON structure for review data transfer. Stars is
// derived from the 0-100 rating for display on a five-star scale.
type DTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Summary     string    `json:"summary"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Rating      int       `json:"rating"`
	Stars       float64   `json:"stars"`
	PublishedAt time.Time `json:"publishedAt"`
	Author      string    `json:"author"`
}

func toDTO(rv *entity.Review) DTO {
	return DTO{
		ID:          rv.ID,
		Title:       rv.Title,
		Content:     rv.Content,
		Summary:     rv.Summary,
		ImageURL:    rv.ImageURL,
		Category:    rv.Category,
		Rating:      rv.Rating,
		Stars:       rv.Stars(),
		PublishedAt: rv.PublishedAt,
		Author:      rv.Author,
	}
}

func toDTOs(list []*entity.Review) []DTO {
	out := make([]DTO, 0, len(list))
	for _, rv := range list {
		out = append(out, toDTO(rv))
	}
	return out
}
