package entity

import "time"

// Review represents a game review in the catalog.
// Reviews are immutable after creation.
type Review struct {
	ID          int64
	Title       string
	Content     string
	Summary     string
	ImageURL    string
	Category    string
	Rating      int // 0-100 scale
	PublishedAt time.Time
	Author      string
}

// Stars maps the 0-100 rating to a 0-5 star display value
// with half-star granularity.
func (r Review) Stars() float64 {
	stars := float64(r.Rating) / 20.0
	return float64(int(stars*2+0.5)) / 2
}
