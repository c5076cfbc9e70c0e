package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/vee-grants/vee-api/services"
	"github.com/vee-grants/vee-api/utils/response"
)

// LoginRequest represents a user login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login handles user login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, fiber.StatusUnprocessableEntity, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	token, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if errors.Is(err, services.ErrIncorrectCredentials) {
		h.bruteForceProtection.RecordFailedAttempt(c)
		return response.BadRequest(c, err.Error())
	}
	if err != nil {
		log.Errorw("Login failed", "error", err)
		return response.InternalServerError(c, "")
	}

	h.bruteForceProtection.RecordSuccessfulAttempt(c)

	return response.Success(c, LoginResponse{AccessToken: token})
}
