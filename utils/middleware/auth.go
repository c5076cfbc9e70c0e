package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/vee-grants/vee-api/utils/auth"
)

const userIDKey = "user_id"

// AuthMiddleware resolves the bearer token into a user identity
type AuthMiddleware struct {
	tokens *auth.TokenManager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokens *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Identify attaches the caller's user id to the request when a valid
// bearer token is present. Requests without one pass through anonymously;
// rejecting them is left to the handlers.
func (m *AuthMiddleware) Identify() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Next()
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		userID, err := m.tokens.Verify(tokenString)
		if err != nil {
			return c.Next()
		}

		c.Locals(userIDKey, userID)
		c.SetUserContext(auth.WithUserID(c.UserContext(), userID))

		return c.Next()
	}
}

// GetUserID extracts user ID from context
func GetUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(userIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}
