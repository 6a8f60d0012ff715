package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/catherinekimani/Hummingbirds/config"
	"github.com/catherinekimani/Hummingbirds/internal/auth/domain"
	"github.com/catherinekimani/Hummingbirds/internal/auth/dto"
	autherror "github.com/catherinekimani/Hummingbirds/internal/errors"
	"github.com/catherinekimani/Hummingbirds/pkg/constant"
	"github.com/catherinekimani/Hummingbirds/pkg/validate"
)

// PaymentService drives donation initialization and idempotent webhook
// settlement.
type PaymentService struct {
	payments    domain.PaymentRepository
	identities  domain.IdentityRepository
	initializer PaymentInitializer
	cfg         *config.Config
	log         *zap.Logger
}

func NewPaymentService(payments domain.PaymentRepository, identities domain.IdentityRepository,
	initializer PaymentInitializer, cfg *config.Config, log *zap.Logger) *PaymentService {
	return &PaymentService{
		payments:    payments,
		identities:  identities,
		initializer: initializer,
		cfg:         cfg,
		log:         log,
	}
}

func (s *PaymentService) Donate(ctx context.Context, input dto.DonateInput) (*dto.DonateResult, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", autherror.ErrInvalidInput)
	}

	phone, err := validate.Phone(input.Phone, s.cfg.DefaultRegion, s.cfg.AllowedRegions)
	if err != nil {
		return nil, err
	}

	// Link the donation to a user when the phone matches a known
	// identity; anonymous donations stay unlinked.
	var userID *string
	identity, err := s.identities.GetIdentityByValue(ctx, constant.IdentityTypePhone, phone)
	if err != nil {
		return nil, err
	}
	if identity != nil {
		userID = &identity.UserID
	}

	donation := &domain.Donation{
		ID:          uuid.NewString(),
		UserID:      userID,
		PhoneNumber: phone,
		Amount:      input.Amount,
		Reference:   uuid.NewString(),
		Status:      constant.DonationStatusInitialized,
	}
	if err := s.payments.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	email := input.Email
	if email == "" {
		// Paystack requires an email address on every transaction.
		email = fmt.Sprintf("%s@donors.hummingbirds.co", donation.ID)
	}

	result, err := s.initializer.InitializeTransaction(ctx, email, donation.Amount, donation.Reference)
	if err != nil {
		// The intent stays initialized; the provider call can be retried
		// with the same reference.
		return nil, err
	}

	return &dto.DonateResult{
		AuthorizationURL: result.AuthorizationURL,
		AccessCode:       result.AccessCode,
		Reference:        result.Reference,
	}, nil
}

// VerifySignature recomputes the provider HMAC over the exact raw bytes
// and compares it in constant time.
func (s *PaymentService) VerifySignature(rawBody []byte, signature string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha512.New, []byte(s.cfg.Paystack.SecretKey))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// HandleWebhook authenticates and settles a provider callback. Once a
// payload is authenticated it is always acknowledged: duplicate,
// unknown and irrelevant events are no-ops, never retry-inducing
// failures.
func (s *PaymentService) HandleWebhook(ctx context.Context, rawBody []byte, signature string) error {
	if !s.VerifySignature(rawBody, signature) {
		return autherror.ErrInvalidSignature
	}

	var event dto.WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		s.log.Warn("discarding malformed webhook payload", zap.Error(err))
		return nil
	}

	if event.Data.Reference == "" {
		s.log.Warn("webhook event without reference", zap.String("event", event.Event))
		return nil
	}

	switch event.Event {
	case constant.WebhookEventChargeSuccess:
	case constant.WebhookEventChargeFailed:
		if err := s.payments.MarkFailed(ctx, event.Data.Reference); err != nil {
			return err
		}
		s.log.Info("donation marked failed", zap.String("reference", event.Data.Reference))
		return nil
	default:
		s.log.Debug("ignoring webhook event", zap.String("event", event.Event))
		return nil
	}

	donation, credited, err := s.payments.Settle(ctx, event.Data.Reference,
		s.cfg.DonationPoints, "donation received")
	if err != nil {
		return err
	}

	switch {
	case donation == nil:
		s.log.Warn("webhook for unknown payment reference",
			zap.String("reference", event.Data.Reference))
	case credited:
		s.log.Info("donation settled",
			zap.String("reference", donation.Reference),
			zap.Int("points", s.cfg.DonationPoints))
	default:
		s.log.Info("duplicate webhook delivery ignored",
			zap.String("reference", donation.Reference))
	}

	return nil
}
