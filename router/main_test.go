package router

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vee-grants/vee-api/config"
	"github.com/vee-grants/vee-api/database/dbtest"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	err := SetupRoutes(app, Dependencies{
		Store: dbtest.New(t),
		Env: &config.EnvironmentVariable{
			SECRET_KEY:                  "VEE_SECRET",
			ALGORITHM:                   "HS256",
			ACCESS_TOKEN_EXPIRE_MINUTES: 30,
			BCRYPT_COST:                 4,
			ALLOWED_ORIGINS:             "http://localhost:3000",
		},
	})
	require.NoError(t, err)
	return app
}

func post(t *testing.T, app *fiber.App, path, token string, body interface{}) map[string]interface{} {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRegisterLoginAndQuery(t *testing.T) {
	app := newTestApp(t)

	post(t, app, "/auth/register", "", map[string]string{"name": "A", "email": "a@x.io", "password": "p"})
	login := post(t, app, "/auth/login", "", map[string]string{"email": "a@x.io", "password": "p"})
	token, ok := login["access_token"].(string)
	require.True(t, ok)

	out := post(t, app, "/graphql", token, map[string]string{
		"query": `mutation { createFoundation(foundationInput: { name: "Acme" }) { name grants { id } } }`,
	})
	assert.Nil(t, out["errors"])
	assert.Equal(t, map[string]interface{}{
		"createFoundation": map[string]interface{}{"name": "Acme", "grants": []interface{}{}},
	}, out["data"])

	out = post(t, app, "/graphql", "", map[string]string{"query": `query { foundations { total } }`})
	assert.Equal(t, map[string]interface{}{"foundations": nil}, out["data"])
}

func TestPing(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
