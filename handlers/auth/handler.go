package auth

import (
	"github.com/vee-grants/vee-api/services"
	"github.com/vee-grants/vee-api/utils/middleware"
	"github.com/vee-grants/vee-api/utils/validation"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService          *services.AuthService
	validator            *validation.Validator
	bruteForceProtection *middleware.BruteForceProtection
}

// NewAuthHandler creates a new auth handler. bruteForceProtection may be nil.
func NewAuthHandler(authService *services.AuthService, bruteForceProtection *middleware.BruteForceProtection) *AuthHandler {
	return &AuthHandler{
		authService:          authService,
		validator:            validation.NewValidator(),
		bruteForceProtection: bruteForceProtection,
	}
}
