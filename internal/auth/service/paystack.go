package service

//go:generate mockgen -destination=../../mocks/mock_payment_initializer.go -package=mocks github.com/catherinekimani/Hummingbirds/internal/auth/service PaymentInitializer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/catherinekimani/Hummingbirds/config"
	autherror "github.com/catherinekimani/Hummingbirds/internal/errors"
)

// PaymentInitializer starts a transaction with the payment provider.
type PaymentInitializer interface {
	InitializeTransaction(ctx context.Context, email string, amountMajor int, reference string) (*InitializeResult, error)
}

type InitializeResult struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// PaystackClient calls the Paystack REST API. Amounts are converted to
// subunits on the wire.
type PaystackClient struct {
	cfg    config.PaystackConfig
	client *http.Client
}

func NewPaystackClient(cfg config.PaystackConfig) *PaystackClient {
	return &PaystackClient{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type paystackInitRequest struct {
	Email     string `json:"email"`
	Amount    int    `json:"amount"`
	Reference string `json:"reference"`
}

type paystackInitResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

func (c *PaystackClient) InitializeTransaction(ctx context.Context, email string, amountMajor int, reference string) (*InitializeResult, error) {
	body, err := json.Marshal(paystackInitRequest{
		Email:     email,
		Amount:    amountMajor * 100,
		Reference: reference,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrPaymentProvider, err)
	}
	defer resp.Body.Close()

	var out paystackInitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: malformed response", autherror.ErrPaymentProvider)
	}
	if !out.Status {
		return nil, fmt.Errorf("%w: %s", autherror.ErrPaymentProvider, out.Message)
	}

	return &InitializeResult{
		AuthorizationURL: out.Data.AuthorizationURL,
		AccessCode:       out.Data.AccessCode,
		Reference:        out.Data.Reference,
	}, nil
}
