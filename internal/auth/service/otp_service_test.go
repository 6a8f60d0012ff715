package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/catherinekimani/Hummingbirds/config"
	"github.com/catherinekimani/Hummingbirds/internal/auth/domain"
	"github.com/catherinekimani/Hummingbirds/internal/auth/service"
	autherror "github.com/catherinekimani/Hummingbirds/internal/errors"
	"github.com/catherinekimani/Hummingbirds/internal/mocks"
	"github.com/catherinekimani/Hummingbirds/pkg/constant"
)

func otpTestConfig() *config.Config {
	return &config.Config{
		OTPLength:      6,
		OTPExpiryMin:   10,
		OTPMaxAttempts: 5,
	}
}

func hashCode(t *testing.T, code string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}

func TestOTPService_Issue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOTPs := mocks.NewMockOTPRepository(ctrl)
	s := service.NewOTPService(mockOTPs, otpTestConfig())

	identity := &domain.LoginIdentity{ID: "identity-123", UserID: "user-123"}

	var stored *domain.OTPCode
	mockOTPs.EXPECT().InvalidateAndCreate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, otp *domain.OTPCode) error {
			stored = otp
			return nil
		})

	before := time.Now()
	otp, code, err := s.Issue(context.Background(), identity, constant.PurposeLogin)
	require.NoError(t, err)

	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}

	require.NotNil(t, stored)
	assert.Equal(t, otp, stored)
	assert.Equal(t, "identity-123", stored.LoginIdentityID)
	assert.Equal(t, constant.PurposeLogin, stored.Purpose)
	assert.Equal(t, 0, stored.Attempts)
	assert.Equal(t, 5, stored.MaxAttempts)
	assert.Nil(t, stored.ConsumedAt)
	assert.True(t, stored.ExpiresAt.After(before.Add(9*time.Minute)))
	assert.True(t, stored.Active(time.Now()))

	// Only the hash is stored, and it matches the returned plaintext.
	assert.NotEqual(t, code, stored.CodeHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.CodeHash), []byte(code)))
}

func TestOTPService_Verify_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOTPs := mocks.NewMockOTPRepository(ctrl)
	s := service.NewOTPService(mockOTPs, otpTestConfig())

	active := &domain.OTPCode{
		ID:          "otp-1",
		CodeHash:    hashCode(t, "123456"),
		Attempts:    1,
		MaxAttempts: 5,
		ExpiresAt:   time.Now().Add(5 * time.Minute),
	}

	mockOTPs.EXPECT().GetActiveByIdentityID(gomock.Any(), "identity-123", gomock.Any()).Return(active, nil)
	mockOTPs.EXPECT().Consume(gomock.Any(), "otp-1", gomock.Any()).Return(true, nil)

	otp, err := s.Verify(context.Background(), "identity-123", "123456")
	require.NoError(t, err)
	assert.Equal(t, "otp-1", otp.ID)
}

func TestOTPService_Verify_NoActiveChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOTPs := mocks.NewMockOTPRepository(ctrl)
	s := service.NewOTPService(mockOTPs, otpTestConfig())

	// An expired challenge is filtered out by the repository query, so
	// the caller sees "no valid OTP", not "attempts exceeded".
	mockOTPs.EXPECT().GetActiveByIdentityID(gomock.Any(), "identity-123", gomock.Any()).Return(nil, nil)

	_, err := s.Verify(context.Background(), "identity-123", "123456")
	assert.ErrorIs(t, err, autherror.ErrNoActiveOTP)
}

func TestOTPService_Verify_AttemptsExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOTPs := mocks.NewMockOTPRepository(ctrl)
	s := service.NewOTPService(mockOTPs, otpTestConfig())

	exhausted := &domain.OTPCode{
		ID:          "otp-1",
		CodeHash:    hashCode(t, "123456"),
		Attempts:    5,
		MaxAttempts: 5,
		ExpiresAt:   time.Now().Add(5 * time.Minute),
	}

	mockOTPs.EXPECT().GetActiveByIdentityID(gomock.Any(), "identity-123", gomock.Any()).Return(exhausted, nil)

	_, err := s.Verify(context.Background(), "identity-123", "123456")
	assert.ErrorIs(t, err, autherror.ErrOTPAttemptsExceeded)
}

func TestOTPService_Verify_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOTPs := mocks.NewMockOTPRepository(ctrl)
	s := service.NewOTPService(mockOTPs, otpTestConfig())

	active := &domain.OTPCode{
		ID:          "otp-1",
		CodeHash:    hashCode(t, "123456"),
		Attempts:    0,
		MaxAttempts: 5,
		ExpiresAt:   time.Now().Add(5 * time.Minute),
	}

	mockOTPs.EXPECT().GetActiveByIdentityID(gomock.Any(), "identity-123", gomock.Any()).Return(active, nil)
	mockOTPs.EXPECT().IncrementAttempts(gomock.Any(), "otp-1").Return(1, true, nil)

	_, err := s.Verify(context.Background(), "identity-123", "000000")

	var wrong *autherror.WrongOTPError
	require.ErrorAs(t, err, &wrong)
	assert.Equal(t, 4, wrong.Remaining)
}

func TestOTPService_Verify_WrongCode_ConcurrentlyExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOTPs := mocks.NewMockOTPRepository(ctrl)
	s := service.NewOTPService(mockOTPs, otpTestConfig())

	active := &domain.OTPCode{
		ID:          "otp-1",
		CodeHash:    hashCode(t, "123456"),
		Attempts:    4,
		MaxAttempts: 5,
		ExpiresAt:   time.Now().Add(5 * time.Minute),
	}

	mockOTPs.EXPECT().GetActiveByIdentityID(gomock.Any(), "identity-123", gomock.Any()).Return(active, nil)
	// The conditional increment found no eligible row: another request
	// got there first.
	mockOTPs.EXPECT().IncrementAttempts(gomock.Any(), "otp-1").Return(0, false, nil)

	_, err := s.Verify(context.Background(), "identity-123", "000000")
	assert.ErrorIs(t, err, autherror.ErrOTPAttemptsExceeded)
}

func TestOTPService_Verify_ConsumeRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOTPs := mocks.NewMockOTPRepository(ctrl)
	s := service.NewOTPService(mockOTPs, otpTestConfig())

	active := &domain.OTPCode{
		ID:          "otp-1",
		CodeHash:    hashCode(t, "123456"),
		Attempts:    0,
		MaxAttempts: 5,
		ExpiresAt:   time.Now().Add(5 * time.Minute),
	}

	mockOTPs.EXPECT().GetActiveByIdentityID(gomock.Any(), "identity-123", gomock.Any()).Return(active, nil)
	// consumed_at was set by a concurrent request; this one must not
	// succeed a second time.
	mockOTPs.EXPECT().Consume(gomock.Any(), "otp-1", gomock.Any()).Return(false, nil)

	_, err := s.Verify(context.Background(), "identity-123", "123456")
	assert.ErrorIs(t, err, autherror.ErrNoActiveOTP)
}
