package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/catherinekimani/Hummingbirds/config"
	"github.com/catherinekimani/Hummingbirds/internal/auth/dto"
	"github.com/catherinekimani/Hummingbirds/internal/auth/service"
	autherror "github.com/catherinekimani/Hummingbirds/internal/errors"
)

type AuthHandler struct {
	userService  *service.UserService
	tokenService service.TokenGenerator
	cfg          *config.Config
}

func NewAuthHandler(userService *service.UserService, tokenService service.TokenGenerator, cfg *config.Config) *AuthHandler {
	return &AuthHandler{userService: userService, tokenService: tokenService, cfg: cfg}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid input")
	}

	result, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return failErr(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"error":   false,
		"message": "OTP sent to your " + result.IdentityType,
		"data":    result,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid input")
	}

	result, err := h.userService.RequestLogin(c.Context(), input)
	if err != nil {
		return failErr(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"error":   false,
		"message": "OTP sent to your " + result.IdentityType,
		"data":    result,
	})
}

func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var input dto.VerifyOTPInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.IdentityID == "" || input.OTP == "" {
		return fail(c, fiber.StatusBadRequest, "identity_id and otp are required")
	}

	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	result, err := h.userService.VerifyOTP(c.Context(), input)
	if err != nil {
		return failErr(c, err)
	}

	h.setRefreshCookie(c, result.RefreshToken)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"error":   false,
		"message": "Login successful",
		"data":    result,
	})
}

func (h *AuthHandler) ResendOTP(c *fiber.Ctx) error {
	var input dto.ResendOTPInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.IdentityID == "" {
		return fail(c, fiber.StatusBadRequest, "identity_id is required")
	}

	result, err := h.userService.Resend(c.Context(), input)
	if err != nil {
		return failErr(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"error":   false,
		"message": "New OTP sent to your " + result.IdentityType,
		"data":    result,
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil && len(c.Body()) > 0 {
		return fail(c, fiber.StatusBadRequest, "invalid input")
	}

	if input.RefreshToken == "" {
		input.RefreshToken = c.Cookies(h.cfg.RefreshCookieName)
	}
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	tokens, err := h.userService.Refresh(c.Context(), input)
	if err != nil {
		return failErr(c, err)
	}

	if tokens.RefreshToken != "" {
		h.setRefreshCookie(c, tokens.RefreshToken)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"error":   false,
		"message": "Token refreshed",
		"data":    tokens,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals(localsUserID).(string)

	var input dto.LogoutInput
	if err := c.BodyParser(&input); err != nil && len(c.Body()) > 0 {
		return fail(c, fiber.StatusBadRequest, "invalid input")
	}

	if input.RefreshToken == "" {
		input.RefreshToken = c.Cookies(h.cfg.RefreshCookieName)
	}

	if err := h.userService.Logout(c.Context(), userID, input); err != nil {
		return failErr(c, err)
	}

	h.clearRefreshCookie(c)

	message := "Logged out successfully"
	if input.AllDevices {
		message = "Logged out from all devices"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"error":   false,
		"message": message,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals(localsUserID).(string)

	profile, err := h.userService.Profile(c.Context(), userID)
	if err != nil {
		return failErr(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"error":   false,
		"message": "User profile retrieved",
		"data":    profile,
	})
}

func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.RefreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenService.GetRefreshTokenExpiry().Seconds()),
		HTTPOnly: true,
		Secure:   h.cfg.RefreshCookieSecure,
		SameSite: h.cfg.RefreshCookieSameSite,
	})
}

func (h *AuthHandler) clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.RefreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cfg.RefreshCookieSecure,
		SameSite: h.cfg.RefreshCookieSameSite,
	})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}

// failErr maps service errors onto HTTP statuses. Session failures stay
// opaque: revoked, expired and forged tokens all produce the same 401.
func failErr(c *fiber.Ctx, err error) error {
	var wrongOTP *autherror.WrongOTPError
	if errors.As(err, &wrongOTP) {
		return fail(c, fiber.StatusBadRequest, wrongOTP.Error())
	}

	switch {
	case errors.Is(err, autherror.ErrInvalidInput),
		errors.Is(err, autherror.ErrIdentityInUse),
		errors.Is(err, autherror.ErrNoActiveOTP),
		errors.Is(err, autherror.ErrOTPAttemptsExceeded),
		errors.Is(err, autherror.ErrMissingRefreshToken),
		errors.Is(err, autherror.ErrInvalidSignature):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, autherror.ErrIdentityNotFound),
		errors.Is(err, autherror.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, autherror.ErrAccountInactive):
		return fail(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, autherror.ErrInvalidSession):
		return fail(c, fiber.StatusUnauthorized, autherror.ErrInvalidSession.Error())
	case errors.Is(err, autherror.ErrPaymentProvider):
		return fail(c, fiber.StatusBadGateway, err.Error())
	default:
		return fail(c, fiber.StatusInternalServerError, "internal server error")
	}
}
