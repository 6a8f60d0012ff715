package domain

//go:generate mockgen -destination=../../mocks/mock_repositories.go -package=mocks github.com/catherinekimani/Hummingbirds/internal/auth/domain IdentityRepository,OTPRepository,SessionRepository,PaymentRepository,PointsRepository

import (
	"context"
	"time"
)

type IdentityRepository interface {
	CreateUserWithIdentity(ctx context.Context, user *User, identity *LoginIdentity) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetIdentityByValue(ctx context.Context, identityType, value string) (*LoginIdentity, error)
	GetIdentityByID(ctx context.Context, id string) (*LoginIdentity, error)
	ListIdentitiesByUserID(ctx context.Context, userID string) ([]LoginIdentity, error)
	MarkIdentityVerified(ctx context.Context, identityID string, at time.Time) error
	RecordLogin(ctx context.Context, userID string, at time.Time) error
}

type OTPRepository interface {
	// InvalidateAndCreate consumes any active challenge for the new
	// challenge's (identity, purpose) and inserts the new one in a
	// single transaction.
	InvalidateAndCreate(ctx context.Context, otp *OTPCode) error
	GetActiveByIdentityID(ctx context.Context, identityID string, now time.Time) (*OTPCode, error)
	// IncrementAttempts bumps the attempt counter with a single
	// conditional statement. ok is false when the challenge was
	// concurrently consumed or exhausted.
	IncrementAttempts(ctx context.Context, id string) (attempts int, ok bool, err error)
	// Consume sets consumed_at once. ok is false when it was already set.
	Consume(ctx context.Context, id string, at time.Time) (ok bool, err error)
}

type SessionRepository interface {
	Store(ctx context.Context, rt *RefreshToken) error
	GetActiveByHash(ctx context.Context, tokenHash, userID string, now time.Time) (*RefreshToken, error)
	// Rotate revokes the session identified by oldID and stores its
	// replacement in one transaction. ok is false when the old session
	// was already revoked by a concurrent request.
	Rotate(ctx context.Context, oldID string, replacement *RefreshToken, at time.Time) (ok bool, err error)
	RevokeByHash(ctx context.Context, tokenHash, userID string, at time.Time) error
	RevokeAllByUserID(ctx context.Context, userID string, at time.Time) error
}

type PaymentRepository interface {
	CreateDonation(ctx context.Context, d *Donation) error
	// Settle serializes on the payment reference (SELECT ... FOR UPDATE),
	// marks the donation successful and credits the ledger in one
	// transaction. A nil donation means the reference is unknown;
	// credited is false when points were already awarded.
	Settle(ctx context.Context, reference string, points int, reason string) (d *Donation, credited bool, err error)
	// MarkFailed moves an initialized donation to the failed terminal
	// state. Settled donations are never downgraded.
	MarkFailed(ctx context.Context, reference string) error
}

type PointsRepository interface {
	Insert(ctx context.Context, tx *PointTransaction) error
	SumByUserID(ctx context.Context, userID string) (int, error)
	SumBySourceType(ctx context.Context, userID string) ([]SourceTotal, error)
}
