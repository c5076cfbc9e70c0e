package response

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vee-grants/vee-api/utils/validation"
)

// ErrorResponse is the body of every failed REST call
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is the body of REST calls that only acknowledge
type MessageResponse struct {
	Message string `json:"message"`
}

// Success returns a 200 response with data as the body
func Success(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// Message returns a 200 response carrying only a message
func Message(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: message})
}

// Error returns an error response with the given status
func Error(c *fiber.Ctx, statusCode int, detail string) error {
	return c.Status(statusCode).JSON(ErrorResponse{Detail: detail})
}

// BadRequest returns a 400 Bad Request response
func BadRequest(c *fiber.Ctx, detail string) error {
	return Error(c, fiber.StatusBadRequest, detail)
}

// TooManyRequests returns a 429 Too Many Requests response
func TooManyRequests(c *fiber.Ctx, detail string) error {
	if detail == "" {
		detail = "Too many requests"
	}
	return Error(c, fiber.StatusTooManyRequests, detail)
}

// ValidationError returns a 422 response describing the invalid fields
func ValidationError(c *fiber.Ctx, err error) error {
	return Error(c, fiber.StatusUnprocessableEntity, validation.Message(err))
}

// InternalServerError returns a 500 Internal Server Error response
func InternalServerError(c *fiber.Ctx, detail string) error {
	if detail == "" {
		detail = "Internal server error"
	}
	return Error(c, fiber.StatusInternalServerError, detail)
}

// ServiceUnavailable returns a 503 Service Unavailable response
func ServiceUnavailable(c *fiber.Ctx, detail string) error {
	if detail == "" {
		detail = "Service temporarily unavailable"
	}
	return Error(c, fiber.StatusServiceUnavailable, detail)
}
