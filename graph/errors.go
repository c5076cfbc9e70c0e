package graph

import (
	"errors"

	"github.com/gofiber/fiber/v2/log"
	"github.com/vee-grants/vee-api/services"
	"github.com/vee-grants/vee-api/utils/validation"
)

var ErrNotAuthenticated = errors.New("User is not Authenticated")

const internalErrorMessage = "Internal server error"

// publicError keeps domain errors readable and hides everything else.
func publicError(err error) error {
	switch {
	case errors.Is(err, ErrNotAuthenticated),
		errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrConflict):
		return err
	case validation.IsValidationError(err):
		return errors.New(validation.Message(err))
	}

	log.Errorw("GraphQL resolver failed", "error", err)
	return errors.New(internalErrorMessage)
}
