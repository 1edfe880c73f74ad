package entity

import "time"

// Subscription represents a newsletter sign-up.
// Email is unique across the collection (case-sensitive exact match);
// SubscribedAt is set by the store at creation time, never by the caller.
type Subscription struct {
	ID             int64
	Email          string
	SubscribedAt   time.Time
	AcceptedPolicy bool
}
