package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vee-grants/vee-api/utils/auth"
)

func newIdentifyApp(t *testing.T) (*fiber.App, *auth.TokenManager) {
	t.Helper()
	tokens, err := auth.NewTokenManager(auth.TokenConfig{Secret: "VEE_SECRET", Algorithm: "HS256", TTL: 30 * time.Minute})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(NewAuthMiddleware(tokens).Identify())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		local, ok := GetUserID(c)
		fromCtx, ctxOK := auth.UserIDFromContext(c.UserContext())
		if !ok || !ctxOK || local != fromCtx {
			return c.SendString("anonymous")
		}
		return c.SendString(local.String())
	})
	return app, tokens
}

func whoami(t *testing.T, app *fiber.App, authorization string) string {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestIdentify(t *testing.T) {
	app, tokens := newIdentifyApp(t)
	userID := uuid.New()
	token, err := tokens.Issue(userID)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), whoami(t, app, "Bearer "+token))
	assert.Equal(t, "anonymous", whoami(t, app, ""))
	assert.Equal(t, "anonymous", whoami(t, app, "Bearer not-a-token"))
	assert.Equal(t, "anonymous", whoami(t, app, "Basic dXNlcjpwYXNz"))
}
