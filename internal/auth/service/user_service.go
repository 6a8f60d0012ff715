package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/catherinekimani/Hummingbirds/config"
	"github.com/catherinekimani/Hummingbirds/internal/auth/domain"
	"github.com/catherinekimani/Hummingbirds/internal/auth/dto"
	autherror "github.com/catherinekimani/Hummingbirds/internal/errors"
	"github.com/catherinekimani/Hummingbirds/pkg/constant"
	"github.com/catherinekimani/Hummingbirds/pkg/validate"
)

// UserService orchestrates registration, OTP login, session issuance and
// rotation.
type UserService struct {
	identities domain.IdentityRepository
	sessions   domain.SessionRepository
	otpService *OTPService
	tokens     TokenGenerator
	notifier   Notifier
	cfg        *config.Config
	log        *zap.Logger
}

func NewUserService(identities domain.IdentityRepository, sessions domain.SessionRepository,
	otpService *OTPService, tokens TokenGenerator, notifier Notifier,
	cfg *config.Config, log *zap.Logger) *UserService {
	return &UserService{
		identities: identities,
		sessions:   sessions,
		otpService: otpService,
		tokens:     tokens,
		notifier:   notifier,
		cfg:        cfg,
		log:        log,
	}
}

// normalizeContact validates the email-xor-phone rule and returns the
// canonical identity type and value.
func (s *UserService) normalizeContact(email, phone string) (string, string, error) {
	if email == "" && phone == "" {
		return "", "", fmt.Errorf("%w: email or phone number is required", autherror.ErrInvalidInput)
	}
	if email != "" && phone != "" {
		return "", "", fmt.Errorf("%w: provide either email or phone, not both", autherror.ErrInvalidInput)
	}

	if email != "" {
		value, err := validate.Email(email)
		if err != nil {
			return "", "", err
		}
		return constant.IdentityTypeEmail, value, nil
	}

	value, err := validate.Phone(phone, s.cfg.DefaultRegion, s.cfg.AllowedRegions)
	if err != nil {
		return "", "", err
	}
	return constant.IdentityTypePhone, value, nil
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.RegisterResult, error) {
	fullName, err := validate.FullName(input.FullName)
	if err != nil {
		return nil, err
	}

	identityType, value, err := s.normalizeContact(input.Email, input.Phone)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:            uuid.NewString(),
		FullName:      fullName,
		DisplayName:   input.DisplayName,
		CanSelfManage: true,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	identity := &domain.LoginIdentity{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Type:      identityType,
		Value:     value,
		IsPrimary: true,
		CreatedAt: now,
	}

	if err := s.identities.CreateUserWithIdentity(ctx, user, identity); err != nil {
		return nil, err
	}

	if err := s.issueAndSend(ctx, identity, constant.PurposeVerifyIdentity); err != nil {
		return nil, err
	}

	return &dto.RegisterResult{
		IdentityID:   identity.ID,
		UserID:       user.ID,
		IdentityType: identityType,
	}, nil
}

func (s *UserService) RequestLogin(ctx context.Context, input dto.LoginInput) (*dto.LoginResult, error) {
	identityType, value, err := s.normalizeContact(input.Email, input.Phone)
	if err != nil {
		return nil, err
	}

	identity, err := s.identities.GetIdentityByValue(ctx, identityType, value)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, autherror.ErrIdentityNotFound
	}

	user, err := s.identities.GetUserByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, autherror.ErrAccountInactive
	}

	if err := s.issueAndSend(ctx, identity, constant.PurposeLogin); err != nil {
		return nil, err
	}

	return &dto.LoginResult{IdentityID: identity.ID, IdentityType: identityType}, nil
}

func (s *UserService) VerifyOTP(ctx context.Context, input dto.VerifyOTPInput) (*dto.AuthResult, error) {
	identity, err := s.identities.GetIdentityByID(ctx, input.IdentityID)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, autherror.ErrIdentityNotFound
	}

	if _, err := s.otpService.Verify(ctx, identity.ID, input.OTP); err != nil {
		return nil, err
	}

	now := time.Now()
	if !identity.IsVerified {
		if err := s.identities.MarkIdentityVerified(ctx, identity.ID, now); err != nil {
			return nil, err
		}
	}

	if err := s.identities.RecordLogin(ctx, identity.UserID, now); err != nil {
		return nil, err
	}

	accessToken, refreshToken, refreshExpiry, err := s.tokens.Generate(identity.UserID)
	if err != nil {
		return nil, err
	}

	session := &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    identity.UserID,
		TokenHash: HashToken(refreshToken),
		ExpiresAt: refreshExpiry,
		UserAgent: input.UserAgent,
		IPAddress: input.IPAddress,
		CreatedAt: now,
	}
	if err := s.sessions.Store(ctx, session); err != nil {
		return nil, err
	}

	profile, err := s.Profile(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         profile,
	}, nil
}

func (s *UserService) Resend(ctx context.Context, input dto.ResendOTPInput) (*dto.LoginResult, error) {
	identity, err := s.identities.GetIdentityByID(ctx, input.IdentityID)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, autherror.ErrIdentityNotFound
	}

	purpose := constant.PurposeVerifyIdentity
	if identity.IsVerified {
		purpose = constant.PurposeLogin
	}

	if err := s.issueAndSend(ctx, identity, purpose); err != nil {
		return nil, err
	}

	return &dto.LoginResult{IdentityID: identity.ID, IdentityType: identity.Type}, nil
}

// Refresh validates a presented refresh token and, when rotation is
// enabled, atomically replaces the session. All failure modes collapse
// into ErrInvalidSession so a forged token is indistinguishable from a
// revoked or expired one.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	if input.RefreshToken == "" {
		return nil, autherror.ErrMissingRefreshToken
	}

	// Signature check comes first: the embedded user id is untrusted
	// until it passes.
	claims, err := s.tokens.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, autherror.ErrInvalidSession
	}

	now := time.Now()
	session, err := s.sessions.GetActiveByHash(ctx, HashToken(input.RefreshToken), claims.UserID, now)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, autherror.ErrInvalidSession
	}

	accessToken, refreshToken, refreshExpiry, err := s.tokens.Generate(session.UserID)
	if err != nil {
		return nil, err
	}

	if !s.cfg.RotateRefreshToken {
		return &dto.TokenResponse{AccessToken: accessToken}, nil
	}

	replacement := &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    session.UserID,
		TokenHash: HashToken(refreshToken),
		ExpiresAt: refreshExpiry,
		UserAgent: input.UserAgent,
		IPAddress: input.IPAddress,
		CreatedAt: now,
	}
	rotated, err := s.sessions.Rotate(ctx, session.ID, replacement, now)
	if err != nil {
		return nil, err
	}
	if !rotated {
		// Lost the race against a logout; the presented token is gone.
		return nil, autherror.ErrInvalidSession
	}

	return &dto.TokenResponse{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Logout revokes one session or all of the user's sessions. Revoking an
// already-revoked session is a no-op.
func (s *UserService) Logout(ctx context.Context, userID string, input dto.LogoutInput) error {
	now := time.Now()

	if input.AllDevices {
		return s.sessions.RevokeAllByUserID(ctx, userID, now)
	}

	if input.RefreshToken == "" {
		return nil
	}

	return s.sessions.RevokeByHash(ctx, HashToken(input.RefreshToken), userID, now)
}

func (s *UserService) Profile(ctx context.Context, userID string) (*dto.UserOutput, error) {
	user, err := s.identities.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	identities, err := s.identities.ListIdentitiesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &dto.UserOutput{
		ID:            user.ID,
		FullName:      user.FullName,
		DisplayName:   user.DisplayName,
		CanSelfManage: user.CanSelfManage,
		IsActive:      user.IsActive,
		FirstLoginAt:  user.FirstLoginAt,
		LastLoginAt:   user.LastLoginAt,
		CreatedAt:     user.CreatedAt,
	}
	for _, identity := range identities {
		if !identity.IsPrimary {
			continue
		}
		switch identity.Type {
		case constant.IdentityTypeEmail:
			out.PrimaryEmail = identity.Value
		case constant.IdentityTypePhone:
			out.PrimaryPhone = identity.Value
		}
	}

	return out, nil
}

// issueAndSend creates a challenge and hands the code to the notifier.
// Delivery failure is logged and never fails the caller; the challenge
// stays issued and can be resent.
func (s *UserService) issueAndSend(ctx context.Context, identity *domain.LoginIdentity, purpose string) error {
	_, code, err := s.otpService.Issue(ctx, identity, purpose)
	if err != nil {
		return err
	}

	if err := s.notifier.SendOTP(ctx, identity, code, purpose); err != nil {
		s.log.Warn("otp delivery failed",
			zap.String("identity_id", identity.ID),
			zap.String("channel", identity.Type),
			zap.Error(err))
	}

	return nil
}
