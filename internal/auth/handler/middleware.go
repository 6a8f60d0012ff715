package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const localsUserID = "user_id"

// RequireAuth validates the bearer access token and stores the caller's
// user id in the request locals.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return fail(c, fiber.StatusUnauthorized, "missing or malformed authorization header")
		}

		claims, err := h.tokenService.VerifyAccessToken(parts[1])
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "invalid or expired access token")
		}

		c.Locals(localsUserID, claims.UserID)

		return c.Next()
	}
}
