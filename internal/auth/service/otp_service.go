package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/catherinekimani/Hummingbirds/config"
	"github.com/catherinekimani/Hummingbirds/internal/auth/domain"
	autherror "github.com/catherinekimani/Hummingbirds/internal/errors"
)

// OTPService owns the lifecycle of one-time passcode challenges.
type OTPService struct {
	otps domain.OTPRepository
	cfg  *config.Config
}

func NewOTPService(otps domain.OTPRepository, cfg *config.Config) *OTPService {
	return &OTPService{otps: otps, cfg: cfg}
}

// Issue consumes any active challenge for (identity, purpose) and creates
// a new one in the same transaction. The plaintext code is returned once
// for delivery and never persisted.
func (s *OTPService) Issue(ctx context.Context, identity *domain.LoginIdentity, purpose string) (*domain.OTPCode, string, error) {
	code, err := generateOTP(s.cfg.OTPLength)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate otp: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash otp: %w", err)
	}

	now := time.Now()
	otp := &domain.OTPCode{
		ID:              uuid.NewString(),
		LoginIdentityID: identity.ID,
		CodeHash:        string(hash),
		Purpose:         purpose,
		Attempts:        0,
		MaxAttempts:     s.cfg.OTPMaxAttempts,
		ExpiresAt:       now.Add(time.Duration(s.cfg.OTPExpiryMin) * time.Minute),
		CreatedAt:       now,
	}

	if err := s.otps.InvalidateAndCreate(ctx, otp); err != nil {
		return nil, "", err
	}

	return otp, code, nil
}

// Verify checks a submitted code against the identity's single active
// challenge. A mismatch counts one attempt; a match consumes the
// challenge exactly once.
func (s *OTPService) Verify(ctx context.Context, identityID, code string) (*domain.OTPCode, error) {
	now := time.Now()

	otp, err := s.otps.GetActiveByIdentityID(ctx, identityID, now)
	if err != nil {
		return nil, err
	}
	if otp == nil {
		return nil, autherror.ErrNoActiveOTP
	}

	if otp.Attempts >= otp.MaxAttempts {
		return nil, autherror.ErrOTPAttemptsExceeded
	}

	if bcrypt.CompareHashAndPassword([]byte(otp.CodeHash), []byte(code)) != nil {
		attempts, ok, err := s.otps.IncrementAttempts(ctx, otp.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			// A concurrent attempt consumed or exhausted the challenge.
			return nil, autherror.ErrOTPAttemptsExceeded
		}

		return nil, &autherror.WrongOTPError{Remaining: otp.MaxAttempts - attempts}
	}

	consumed, err := s.otps.Consume(ctx, otp.ID, now)
	if err != nil {
		return nil, err
	}
	if !consumed {
		return nil, autherror.ErrNoActiveOTP
	}

	return otp, nil
}

func generateOTP(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("otp length must be positive")
	}

	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}

	return string(digits), nil
}
