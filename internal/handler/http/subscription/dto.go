// Package subscription provides HTTP handlers for newsletter sign-ups.
package subscription

import (
	"time"

	"gamepulse/internal/domain/entity"
)

// DTO represents the JSON structure for subscription data transfer.
type DTO struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	SubscribedAt   time.Time `json:"subscribedAt"`
	AcceptedPolicy bool      `json:"acceptedPolicy"`
}

func toDTO(s *entity.Subscription) DTO {
	return DTO{
		ID:             s.ID,
		Email:          s.Email,
		SubscribedAt:   s.SubscribedAt,
		AcceptedPolicy: s.AcceptedPolicy,
	}
}
