package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catherinekimani/Hummingbirds/internal/auth/dto"
	"github.com/catherinekimani/Hummingbirds/internal/auth/service"
	"github.com/catherinekimani/Hummingbirds/pkg/constant"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
	pointsService  *service.PointsService
}

func NewPaymentHandler(paymentService *service.PaymentService, pointsService *service.PointsService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, pointsService: pointsService}
}

func (h *PaymentHandler) Donate(c *fiber.Ctx) error {
	var input dto.DonateInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid input")
	}

	result, err := h.paymentService.Donate(c.Context(), input)
	if err != nil {
		return failErr(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"error":   false,
		"message": "Donation initialized",
		"data":    result,
	})
}

// Points returns the authenticated user's ledger balance with a
// per-source breakdown.
func (h *PaymentHandler) Points(c *fiber.Ctx) error {
	userID, _ := c.Locals(localsUserID).(string)

	balance, err := h.pointsService.Balance(c.Context(), userID)
	if err != nil {
		return failErr(c, err)
	}

	breakdown, err := h.pointsService.Breakdown(c.Context(), userID)
	if err != nil {
		return failErr(c, err)
	}

	sources := make([]fiber.Map, 0, len(breakdown))
	for _, total := range breakdown {
		sources = append(sources, fiber.Map{
			"source_type": total.SourceType,
			"points":      total.Total,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"error":   false,
		"message": "Points retrieved",
		"data": fiber.Map{
			"balance": balance,
			"sources": sources,
		},
	})
}

// Webhook receives provider callbacks. The signature is verified over
// the exact raw body before anything is parsed; authenticated payloads
// are always acknowledged so the provider stops retrying.
func (h *PaymentHandler) Webhook(c *fiber.Ctx) error {
	signature := c.Get(constant.PaystackSignatureHeader)

	if err := h.paymentService.HandleWebhook(c.Context(), c.Body(), signature); err != nil {
		return failErr(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"error":   false,
		"message": "ok",
	})
}
