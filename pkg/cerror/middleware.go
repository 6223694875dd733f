package cerror

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"user-api/pkg/logger"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success   bool      `json:"success"`
	Error     ErrorBody `json:"error"`
	Timestamp string    `json:"timestamp"`
}

// Middleware is the fiber error handler. Every error that reaches the boundary
// becomes the stable envelope; unexpected errors are logged with full context
// and surface only as a generic internal error.
func Middleware(ctx *fiber.Ctx, err error) error {
	var cerr *CustomError
	isCerror := errors.As(err, &cerr)
	if !isCerror {
		cerr = NewError(
			fiber.StatusInternalServerError,
			"unexpected error",
			zap.Error(err),
		)
	}

	log := logger.FromContext(ctx.Context()).Desugar()
	for _, field := range cerr.LogFields {
		log = log.With(field)
	}
	log.Log(cerr.LogSeverity, cerr.LogMessage)

	return ctx.
		Status(cerr.HttpStatusCode).
		JSON(&ErrorResponse{
			Success: false,
			Error: ErrorBody{
				Code:    cerr.Code,
				Message: cerr.Message,
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
}
