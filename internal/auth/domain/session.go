package domain

import "time"

// RefreshToken is a persisted session. TokenHash is the SHA-256 hex of
// the raw refresh token; the raw token is never stored.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	UserAgent string
	IPAddress string
	CreatedAt time.Time
}