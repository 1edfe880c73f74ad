package entity

// User is part of the entity model for completeness; no authentication
// behavior is built on top of it.
type User struct {
	ID       int64
	Username string
	Password string
}
