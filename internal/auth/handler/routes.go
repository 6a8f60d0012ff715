package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, a *AuthHandler, p *PaymentHandler) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")
	v1.Post("/register", a.Register)
	v1.Post("/login", a.Login)
	v1.Post("/verify-otp", a.VerifyOTP)
	v1.Post("/resend-otp", a.ResendOTP)
	v1.Post("/refresh", a.Refresh)
	v1.Post("/logout", a.RequireAuth(), a.Logout)
	v1.Get("/me", a.RequireAuth(), a.Me)

	v1.Post("/donate", p.Donate)
	v1.Get("/points", a.RequireAuth(), p.Points)
	v1.Post("/paystack/webhook", p.Webhook)
}
