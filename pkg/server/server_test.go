//go:build unit

package server

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-api/pkg/config"
)

type stubHandler struct {
	registered bool
}

func (h *stubHandler) RegisterRoutes(app *fiber.App) {
	h.registered = true
	app.Get("/stub", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
}

func TestNewServer(t *testing.T) {
	cfg := &config.Config{
		ServerPort: "8080",
	}

	testServer := NewServer(cfg, nil)

	assert.Implements(t, (*Server)(nil), testServer)
	assert.NotNil(t, testServer.GetFiberInstance())
}

func TestServer_RegisterRoutes(t *testing.T) {
	cfg := &config.Config{
		ServerPort: "8080",
	}
	handler := &stubHandler{}

	testServer := NewServer(cfg, []Handler{handler})
	testServer.RegisterRoutes()

	assert.True(t, handler.registered)

	resp, err := testServer.GetFiberInstance().Test(httptest.NewRequest(fiber.MethodGet, "/stub", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestServer_StartAndShutdown(t *testing.T) {
	cfg := &config.Config{
		ServerPort: "8080",
	}

	testServer := NewServer(cfg, nil)

	go func() {
		err := testServer.Start()
		assert.NoError(t, err)
	}()

	err := testServer.Shutdown()
	assert.NoError(t, err)
}
