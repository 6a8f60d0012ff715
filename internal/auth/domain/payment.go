package domain

import "time"

// Donation tracks a single payment intent. Reference is the provider
// idempotency key; PointsAwarded guards the ledger credit so duplicate
// webhook deliveries settle at most once.
type Donation struct {
	ID            string
	UserID        *string
	PhoneNumber   string
	Amount        int
	Reference     string
	Status        string
	PointsAwarded bool
	CreatedAt     time.Time
}

// PointTransaction is an append-only ledger entry. Points is signed and
// nonzero; a user's balance is the sum of their transactions.
type PointTransaction struct {
	ID         string
	UserID     string
	Points     int
	SourceType string
	SourceID   *string
	Reason     string
	CreatedAt  time.Time
}

// SourceTotal is a per-source aggregate of a user's ledger.
type SourceTotal struct {
	SourceType string
	Total      int
}
