package service_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/catherinekimani/Hummingbirds/config"
	"github.com/catherinekimani/Hummingbirds/internal/auth/domain"
	"github.com/catherinekimani/Hummingbirds/internal/auth/dto"
	"github.com/catherinekimani/Hummingbirds/internal/auth/service"
	autherror "github.com/catherinekimani/Hummingbirds/internal/errors"
	"github.com/catherinekimani/Hummingbirds/internal/mocks"
	"github.com/catherinekimani/Hummingbirds/pkg/constant"
)

const webhookSecret = "sk_test_secret"

type paymentServiceMocks struct {
	payments    *mocks.MockPaymentRepository
	identities  *mocks.MockIdentityRepository
	initializer *mocks.MockPaymentInitializer
}

func newPaymentService(ctrl *gomock.Controller) (*service.PaymentService, *paymentServiceMocks) {
	m := &paymentServiceMocks{
		payments:    mocks.NewMockPaymentRepository(ctrl),
		identities:  mocks.NewMockIdentityRepository(ctrl),
		initializer: mocks.NewMockPaymentInitializer(ctrl),
	}
	cfg := &config.Config{
		DefaultRegion:  "KE",
		AllowedRegions: []string{"KE"},
		DonationPoints: 5,
	}
	cfg.Paystack.SecretKey = webhookSecret

	s := service.NewPaymentService(m.payments, m.identities, m.initializer, cfg, zap.NewNop())
	return s, m
}

func signPayload(body []byte) string {
	mac := hmac.New(sha512.New, []byte(webhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestPaymentService_Donate_LinkedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newPaymentService(ctrl)

	m.identities.EXPECT().GetIdentityByValue(gomock.Any(), constant.IdentityTypePhone, "+254712345678").
		Return(&domain.LoginIdentity{ID: "identity-123", UserID: "user-123"}, nil)

	var created *domain.Donation
	m.payments.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *domain.Donation) error {
			created = d
			return nil
		})
	m.initializer.EXPECT().InitializeTransaction(gomock.Any(), "jane@b.com", 100, gomock.Any()).
		Return(&service.InitializeResult{
			AuthorizationURL: "https://checkout.paystack.com/abc",
			AccessCode:       "abc",
			Reference:        "ref-1",
		}, nil)

	result, err := s.Donate(context.Background(), dto.DonateInput{
		Phone:  "0712345678",
		Email:  "jane@b.com",
		Amount: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.paystack.com/abc", result.AuthorizationURL)
	require.NotNil(t, created)
	require.NotNil(t, created.UserID)
	assert.Equal(t, "user-123", *created.UserID)
	assert.Equal(t, "+254712345678", created.PhoneNumber)
	assert.Equal(t, constant.DonationStatusInitialized, created.Status)
	assert.NotEmpty(t, created.Reference)
}

func TestPaymentService_Donate_AnonymousWithFallbackEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newPaymentService(ctrl)

	m.identities.EXPECT().GetIdentityByValue(gomock.Any(), constant.IdentityTypePhone, "+254712345678").
		Return(nil, nil)

	var created *domain.Donation
	m.payments.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *domain.Donation) error {
			created = d
			return nil
		})
	m.initializer.EXPECT().InitializeTransaction(gomock.Any(), gomock.Any(), 50, gomock.Any()).
		DoAndReturn(func(_ context.Context, email string, _ int, _ string) (*service.InitializeResult, error) {
			assert.Equal(t, created.ID+"@donors.hummingbirds.co", email)
			return &service.InitializeResult{Reference: created.Reference}, nil
		})

	result, err := s.Donate(context.Background(), dto.DonateInput{Phone: "0712345678", Amount: 50})
	require.NoError(t, err)
	assert.Nil(t, created.UserID)
	assert.Equal(t, created.Reference, result.Reference)
}

func TestPaymentService_Donate_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newPaymentService(ctrl)

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := s.Donate(context.Background(), dto.DonateInput{Phone: "0712345678", Amount: 0})
		assert.ErrorIs(t, err, autherror.ErrInvalidInput)
	})

	t.Run("bad phone", func(t *testing.T) {
		_, err := s.Donate(context.Background(), dto.DonateInput{Phone: "12", Amount: 100})
		assert.ErrorIs(t, err, autherror.ErrInvalidInput)
	})
}

func TestPaymentService_Donate_ProviderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newPaymentService(ctrl)

	m.identities.EXPECT().GetIdentityByValue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.payments.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Return(nil)
	m.initializer.EXPECT().InitializeTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, autherror.ErrPaymentProvider)

	_, err := s.Donate(context.Background(), dto.DonateInput{Phone: "0712345678", Amount: 100})
	assert.ErrorIs(t, err, autherror.ErrPaymentProvider)
}

func TestPaymentService_VerifySignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newPaymentService(ctrl)
	body := []byte(`{"event":"charge.success"}`)

	assert.True(t, s.VerifySignature(body, signPayload(body)))
	assert.False(t, s.VerifySignature(body, signPayload([]byte("other"))))
	assert.False(t, s.VerifySignature(body, ""))
	assert.False(t, s.VerifySignature(body, "not-hex"))
}

func TestPaymentService_HandleWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("rejects bad signature", func(t *testing.T) {
		s, _ := newPaymentService(ctrl)
		body := []byte(`{"event":"charge.success"}`)

		err := s.HandleWebhook(context.Background(), body, "forged")
		assert.ErrorIs(t, err, autherror.ErrInvalidSignature)
	})

	t.Run("settles charge.success", func(t *testing.T) {
		s, m := newPaymentService(ctrl)
		body := []byte(`{"event":"charge.success","data":{"reference":"ref-1","amount":10000,"status":"success"}}`)

		m.payments.EXPECT().Settle(gomock.Any(), "ref-1", 5, "donation received").
			Return(&domain.Donation{Reference: "ref-1"}, true, nil)

		err := s.HandleWebhook(context.Background(), body, signPayload(body))
		assert.NoError(t, err)
	})

	t.Run("acks duplicate delivery", func(t *testing.T) {
		s, m := newPaymentService(ctrl)
		body := []byte(`{"event":"charge.success","data":{"reference":"ref-1"}}`)

		m.payments.EXPECT().Settle(gomock.Any(), "ref-1", 5, "donation received").
			Return(&domain.Donation{Reference: "ref-1"}, false, nil)

		err := s.HandleWebhook(context.Background(), body, signPayload(body))
		assert.NoError(t, err)
	})

	t.Run("acks unknown reference", func(t *testing.T) {
		s, m := newPaymentService(ctrl)
		body := []byte(`{"event":"charge.success","data":{"reference":"never-seen"}}`)

		m.payments.EXPECT().Settle(gomock.Any(), "never-seen", 5, "donation received").
			Return(nil, false, nil)

		err := s.HandleWebhook(context.Background(), body, signPayload(body))
		assert.NoError(t, err)
	})

	t.Run("marks donation failed on charge.failed", func(t *testing.T) {
		s, m := newPaymentService(ctrl)
		body := []byte(`{"event":"charge.failed","data":{"reference":"ref-1","status":"failed"}}`)

		m.payments.EXPECT().MarkFailed(gomock.Any(), "ref-1").Return(nil)

		err := s.HandleWebhook(context.Background(), body, signPayload(body))
		assert.NoError(t, err)
	})

	t.Run("ignores other events", func(t *testing.T) {
		s, _ := newPaymentService(ctrl)
		body := []byte(`{"event":"transfer.success","data":{"reference":"ref-1"}}`)

		err := s.HandleWebhook(context.Background(), body, signPayload(body))
		assert.NoError(t, err)
	})

	t.Run("acks malformed but authenticated payload", func(t *testing.T) {
		s, _ := newPaymentService(ctrl)
		body := []byte(`{not json`)

		err := s.HandleWebhook(context.Background(), body, signPayload(body))
		assert.NoError(t, err)
	})

	t.Run("acks missing reference", func(t *testing.T) {
		s, _ := newPaymentService(ctrl)
		body := []byte(`{"event":"charge.success","data":{"reference":""}}`)

		err := s.HandleWebhook(context.Background(), body, signPayload(body))
		assert.NoError(t, err)
	})

	t.Run("propagates storage errors for provider retry", func(t *testing.T) {
		s, m := newPaymentService(ctrl)
		body := []byte(`{"event":"charge.success","data":{"reference":"ref-1"}}`)

		m.payments.EXPECT().Settle(gomock.Any(), "ref-1", 5, "donation received").
			Return(nil, false, errors.New("connection reset"))

		err := s.HandleWebhook(context.Background(), body, signPayload(body))
		assert.Error(t, err)
	})
}
