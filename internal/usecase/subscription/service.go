// Package subscription provides use cases for newsletter sign-ups.
package subscription

import (
	"context"
	"fmt"
	"log/slog"

	"gamepulse/internal/domain/entity"
	"gamepulse/internal/repository"
)

// Mailer sends the welcome email after a new sign-up.
type Mailer interface {
	SendWelcome(ctx context.Context, email string) error
}

// SubscribeInput represents the input parameters for a newsletter sign-up.
type SubscribeInput struct {
	Email string
	// AcceptedPolicy defaults to true when omitted. An explicit false is
	// rejected; the policy must be accepted to sign up.
	AcceptedPolicy *bool
}

// Service provides newsletter subscription use cases.
// Mailer is optional; sign-ups succeed even when no mailer is configured
// or the welcome email fails.
type Service struct {
	Repo   repository.SubscriptionRepository
	Mailer Mailer
}

// Subscribe registers an email for the newsletter. A repeated sign-up
// with the same email returns the stored record instead of failing.
// Returns a ValidationError when the email is malformed or the policy
// was explicitly declined.
func (s *Service) Subscribe(ctx context.Context, in SubscribeInput) (*entity.Subscription, error) {
	if err := entity.ValidateEmail(in.Email); err != nil {
		return nil, fmt.Errorf("validate email: %w", err)
	}
	if in.AcceptedPolicy != nil && !*in.AcceptedPolicy {
		return nil, fmt.Errorf("validate policy: %w",
			&entity.ValidationError{Field: "acceptedPolicy", Message: "must be accepted"})
	}

	existing, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}

	sub := &entity.Subscription{Email: in.Email, AcceptedPolicy: true}
	if err := s.Repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}

	// Welcome mail only for genuinely new sign-ups, and best effort:
	// a mail failure must not fail the subscription.
	if existing == nil && s.Mailer != nil {
		if err := s.Mailer.SendWelcome(ctx, sub.Email); err != nil {
			slog.Warn("welcome email failed", slog.String("email", sub.Email), slog.Any("error", err))
		}
	}
	return sub, nil
}

// GetByEmail looks up a subscription. Returns (nil, nil) when the email
// never signed up.
func (s *Service) GetByEmail(ctx context.Context, email string) (*entity.Subscription, error) {
	sub, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return sub, nil
}
