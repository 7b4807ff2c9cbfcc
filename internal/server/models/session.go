package models

import "time"

// Session binds a random token to an account until ExpiresAt or logout.
type Session struct {
	ID        string
	UserID    int64
	Name      string
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
