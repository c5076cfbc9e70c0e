package utils

import (
	fiber "github.com/gofiber/fiber/v2"
	"github.com/vee-grants/vee-api/database"
	"github.com/vee-grants/vee-api/utils/response"
)

// MakeHTTPHandleFunc binds store to a handler; returned errors become a 500 detail response.
func MakeHTTPHandleFunc(handler func(c *fiber.Ctx, store database.Storage) error, store database.Storage) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		if err := handler(c, store); err != nil {
			return response.InternalServerError(c, err.Error())
		}
		return nil
	}
}
