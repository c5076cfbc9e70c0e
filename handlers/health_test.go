package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vee-grants/vee-api/database/dbtest"
	"github.com/vee-grants/vee-api/utils"
)

func TestHandleCheckHealth(t *testing.T) {
	store := dbtest.New(t)
	app := fiber.New()
	app.Get("/ping", utils.MakeHTTPHandleFunc(HandleCheckHealth, store))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, store.Close())
	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
