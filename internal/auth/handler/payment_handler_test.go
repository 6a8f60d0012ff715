package handler_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catherinekimani/Hummingbirds/internal/auth/domain"
	"github.com/catherinekimani/Hummingbirds/internal/auth/service"
	autherror "github.com/catherinekimani/Hummingbirds/internal/errors"
	"github.com/catherinekimani/Hummingbirds/pkg/constant"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestPaymentHandler_Donate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("initialized", func(t *testing.T) {
		env := newTestEnv(t, ctrl)
		env.identities.EXPECT().GetIdentityByValue(gomock.Any(), constant.IdentityTypePhone, "+254712345678").
			Return(nil, nil)
		env.payments.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Return(nil)
		env.initialize.EXPECT().InitializeTransaction(gomock.Any(), gomock.Any(), 100, gomock.Any()).
			Return(&service.InitializeResult{
				AuthorizationURL: "https://checkout.paystack.com/abc",
				Reference:        "ref-1",
			}, nil)

		resp, err := env.app.Test(jsonRequest(t, http.MethodPost, "/api/v1/donate", fiber.Map{
			"phone":  "0712345678",
			"amount": 100,
		}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		data := decodeBody(t, resp)["data"].(map[string]any)
		assert.Equal(t, "https://checkout.paystack.com/abc", data["authorization_url"])
		assert.Equal(t, "ref-1", data["reference"])
	})

	t.Run("invalid amount", func(t *testing.T) {
		env := newTestEnv(t, ctrl)

		resp, err := env.app.Test(jsonRequest(t, http.MethodPost, "/api/v1/donate", fiber.Map{
			"phone":  "0712345678",
			"amount": 0,
		}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("provider failure", func(t *testing.T) {
		env := newTestEnv(t, ctrl)
		env.identities.EXPECT().GetIdentityByValue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		env.payments.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Return(nil)
		env.initialize.EXPECT().InitializeTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, autherror.ErrPaymentProvider)

		resp, err := env.app.Test(jsonRequest(t, http.MethodPost, "/api/v1/donate", fiber.Map{
			"phone":  "0712345678",
			"amount": 100,
		}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	})
}

func TestPaymentHandler_Webhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := []byte(`{"event":"charge.success","data":{"reference":"ref-1","amount":10000,"status":"success"}}`)

	t.Run("settles signed payload", func(t *testing.T) {
		env := newTestEnv(t, ctrl)
		env.payments.EXPECT().Settle(gomock.Any(), "ref-1", 5, "donation received").
			Return(&domain.Donation{Reference: "ref-1"}, true, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/paystack/webhook", bytes.NewReader(body))
		req.Header.Set(constant.PaystackSignatureHeader, sign(env.cfg.Paystack.SecretKey, body))

		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("rejects missing signature", func(t *testing.T) {
		env := newTestEnv(t, ctrl)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/paystack/webhook", bytes.NewReader(body))

		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects wrong signature", func(t *testing.T) {
		env := newTestEnv(t, ctrl)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/paystack/webhook", bytes.NewReader(body))
		req.Header.Set(constant.PaystackSignatureHeader, sign("wrong-secret", body))

		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestPaymentHandler_Points(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("requires auth", func(t *testing.T) {
		env := newTestEnv(t, ctrl)

		resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/points", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("returns balance and breakdown", func(t *testing.T) {
		env := newTestEnv(t, ctrl)
		env.points.EXPECT().SumByUserID(gomock.Any(), "user-123").Return(15, nil)
		env.points.EXPECT().SumBySourceType(gomock.Any(), "user-123").
			Return([]domain.SourceTotal{{SourceType: constant.SourceTypeDonation, Total: 15}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/points", nil)
		req.Header.Set(fiber.HeaderAuthorization, bearer(t, env, "user-123"))

		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		data := decodeBody(t, resp)["data"].(map[string]any)
		assert.Equal(t, float64(15), data["balance"])
		sources := data["sources"].([]any)
		require.Len(t, sources, 1)
		assert.Equal(t, constant.SourceTypeDonation, sources[0].(map[string]any)["source_type"])
	})
}
