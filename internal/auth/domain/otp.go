package domain

import "time"

// OTPCode is a one-time passcode challenge bound to a login identity and
// a purpose. Only the bcrypt hash of the code is ever stored. MaxAttempts
// is a snapshot of policy at creation time.
type OTPCode struct {
	ID              string
	LoginIdentityID string
	CodeHash        string
	Purpose         string
	Attempts        int
	MaxAttempts     int
	ExpiresAt       time.Time
	ConsumedAt      *time.Time
	CreatedAt       time.Time
}

// Active reports whether the challenge can still be presented a code.
func (o *OTPCode) Active(now time.Time) bool {
	return o.ConsumedAt == nil && o.ExpiresAt.After(now)
}
