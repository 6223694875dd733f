//go:build unit

package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMiddleware(t *testing.T) {
	logProd, err := zap.NewProduction()
	require.NoError(t, err)
	log := logProd.Sugar()

	app := fiber.New()
	app.Use(Middleware(log))
	app.Get("/", func(ctx *fiber.Ctx) error {
		logFromContext := FromContext(ctx.Context())
		assert.NotNil(t, logFromContext)
		return ctx.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestFromContext(t *testing.T) {
	t.Run("when context has logger should return it", func(t *testing.T) {
		logProd, err := zap.NewProduction()
		require.NoError(t, err)
		log := logProd.Sugar()

		ctx := InjectContext(context.Background(), log)
		logFromContext := FromContext(ctx)

		assert.Equal(t, log, logFromContext)
	})

	t.Run("when context has no logger should return fallback logger", func(t *testing.T) {
		logFromContext := FromContext(context.Background())

		assert.NotNil(t, logFromContext)
	})
}
