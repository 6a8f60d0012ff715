package service

//go:generate mockgen -destination=../../mocks/mock_notifier.go -package=mocks github.com/catherinekimani/Hummingbirds/internal/auth/service Notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/catherinekimani/Hummingbirds/config"
	"github.com/catherinekimani/Hummingbirds/internal/auth/domain"
	"github.com/catherinekimani/Hummingbirds/pkg/constant"
)

// Notifier delivers an OTP code to a login identity. Delivery failures
// are reported as errors but never abort the request that issued the
// challenge.
type Notifier interface {
	SendOTP(ctx context.Context, identity *domain.LoginIdentity, code, purpose string) error
}

// ChannelNotifier routes delivery to the channel matching the identity
// type.
type ChannelNotifier struct {
	email *EmailNotifier
	sms   *SMSNotifier
}

func NewChannelNotifier(email *EmailNotifier, sms *SMSNotifier) *ChannelNotifier {
	return &ChannelNotifier{email: email, sms: sms}
}

func (n *ChannelNotifier) SendOTP(ctx context.Context, identity *domain.LoginIdentity, code, purpose string) error {
	switch identity.Type {
	case constant.IdentityTypeEmail:
		return n.email.SendOTP(ctx, identity, code, purpose)
	case constant.IdentityTypePhone:
		return n.sms.SendOTP(ctx, identity, code, purpose)
	default:
		return fmt.Errorf("unknown identity type %q", identity.Type)
	}
}

type EmailNotifier struct {
	cfg       config.SMTPConfig
	expiryMin int
}

func NewEmailNotifier(cfg config.SMTPConfig, expiryMin int) *EmailNotifier {
	return &EmailNotifier{cfg: cfg, expiryMin: expiryMin}
}

func (n *EmailNotifier) SendOTP(_ context.Context, identity *domain.LoginIdentity, code, purpose string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", identity.Value)

	subject := "Your Hummingbirds Login Code"
	if purpose == constant.PurposeVerifyIdentity {
		subject = "Verify Your Hummingbirds Account"
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", fmt.Sprintf(
		"Your verification code is: %s\n\nThis code will expire in %d minutes.\n\nIf you didn't request this code, please ignore this email.",
		code, n.expiryMin))

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.Username, n.cfg.Password)

	return d.DialAndSend(m)
}

// SMSNotifier delivers codes through the provider's HTTP API.
type SMSNotifier struct {
	cfg       config.SMSConfig
	expiryMin int
	client    *http.Client
	log       *zap.Logger
}

func NewSMSNotifier(cfg config.SMSConfig, expiryMin int, log *zap.Logger) *SMSNotifier {
	return &SMSNotifier{
		cfg:       cfg,
		expiryMin: expiryMin,
		client:    &http.Client{Timeout: 10 * time.Second},
		log:       log,
	}
}

type smsRequest struct {
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
}

type smsResponse struct {
	StatusCode int    `json:"statusCode"`
	Status     string `json:"status"`
}

func (n *SMSNotifier) SendOTP(ctx context.Context, identity *domain.LoginIdentity, code, _ string) error {
	if n.cfg.APIURL == "" || n.cfg.APIKey == "" {
		return fmt.Errorf("sms delivery not configured")
	}

	body, err := json.Marshal(smsRequest{
		PhoneNumber: identity.Value,
		Message: fmt.Sprintf("Your Hummingbirds verification code is: %s. Valid for %d minutes.",
			code, n.expiryMin),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", n.cfg.APIKey)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms request failed: %w", err)
	}
	defer resp.Body.Close()

	var out smsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		out = smsResponse{StatusCode: resp.StatusCode}
	}

	// Provider contract: statusCode 100 or status "success" means sent.
	if out.StatusCode == 100 || out.Status == "success" {
		return nil
	}

	n.log.Warn("sms delivery rejected",
		zap.Int("status_code", out.StatusCode),
		zap.String("status", out.Status))

	return fmt.Errorf("sms delivery failed with status %q", out.Status)
}
