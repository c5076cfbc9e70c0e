package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/vee-grants/vee-api/services"
	"github.com/vee-grants/vee-api/utils/response"
	"github.com/vee-grants/vee-api/utils/validation"
)

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles user registration. It does not log the user in.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, fiber.StatusUnprocessableEntity, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	err := h.authService.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if errors.Is(err, services.ErrEmailExists) {
		return response.BadRequest(c, err.Error())
	}
	if err != nil {
		log.Errorw("Registration failed", "error", err)
		return response.InternalServerError(c, "")
	}

	return response.Message(c, "User created successfully")
}
