package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrIdentityInUse       = errors.New("identity already registered")
	ErrIdentityNotFound    = errors.New("identity not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrAccountInactive     = errors.New("account is inactive")
	ErrNoActiveOTP         = errors.New("no valid otp found")
	ErrOTPAttemptsExceeded = errors.New("maximum otp attempts exceeded")
	ErrMissingRefreshToken = errors.New("refresh token required")
	ErrInvalidSession      = errors.New("invalid or expired refresh token")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	ErrPaymentProvider     = errors.New("payment provider request failed")
)

// WrongOTPError is returned on an OTP mismatch. Remaining is the number of
// verification attempts left before the challenge locks.
type WrongOTPError struct {
	Remaining int
}

func (e *WrongOTPError) Error() string {
	return fmt.Sprintf("invalid otp, %d attempts remaining", e.Remaining)
}
