package cerror

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zapcore"
)

const (
	CodeBadRequest              = "BAD_REQUEST"
	CodeUnauthorized            = "UNAUTHORIZED"
	CodeAccountDeactivated      = "ACCOUNT_DEACTIVATED"
	CodeAuthenticationError     = "AUTHENTICATION_ERROR"
	CodeInsufficientPermissions = "INSUFFICIENT_PERMISSIONS"
	CodeUserAlreadyExists       = "USER_ALREADY_EXISTS"
	CodeNotFound                = "NOT_FOUND"
	CodeInternalError           = "INTERNAL_ERROR"
)

var (
	ErrorBadRequest = &CustomError{
		HttpStatusCode: fiber.StatusBadRequest,
		Code:           CodeBadRequest,
		Message:        "malformed request body or query parameter",
		LogMessage:     "malformed request body or query parameter",
		LogSeverity:    zapcore.WarnLevel,
	}

	// Unknown email and wrong password share this error on purpose so the
	// caller cannot probe which emails are registered.
	ErrorInvalidCredentials = &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		Code:           CodeUnauthorized,
		Message:        "invalid email or password",
		LogMessage:     "login attempt failed",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorAccountDeactivated = &CustomError{
		HttpStatusCode: fiber.StatusForbidden,
		Code:           CodeAccountDeactivated,
		Message:        "account is deactivated",
		LogMessage:     "login attempt against deactivated account",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorAuthenticationRequired = &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		Code:           CodeAuthenticationError,
		Message:        "no token provided",
		LogMessage:     "request without bearer token",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorInvalidToken = &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		Code:           CodeAuthenticationError,
		Message:        "invalid token",
		LogMessage:     "request with invalid bearer token",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorTokenExpired = &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		Code:           CodeAuthenticationError,
		Message:        "token expired",
		LogMessage:     "request with expired bearer token",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorInsufficientPermissions = &CustomError{
		HttpStatusCode: fiber.StatusForbidden,
		Code:           CodeInsufficientPermissions,
		Message:        "insufficient permissions",
		LogMessage:     "authenticated user lacks required role",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorUserAlreadyExists = &CustomError{
		HttpStatusCode: fiber.StatusConflict,
		Code:           CodeUserAlreadyExists,
		Message:        "user already exists",
		LogMessage:     "user already exists",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorUserNotFound = &CustomError{
		HttpStatusCode: fiber.StatusNotFound,
		Code:           CodeNotFound,
		Message:        "user not found",
		LogMessage:     "user not found",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorGenerateAccessToken = &CustomError{
		HttpStatusCode: fiber.StatusInternalServerError,
		Code:           CodeInternalError,
		Message:        "internal server error",
		LogMessage:     "error occurred while generate access token",
		LogSeverity:    zapcore.ErrorLevel,
	}

	ErrorGenerateRefreshToken = &CustomError{
		HttpStatusCode: fiber.StatusInternalServerError,
		Code:           CodeInternalError,
		Message:        "internal server error",
		LogMessage:     "error occurred while generate refresh token",
		LogSeverity:    zapcore.ErrorLevel,
	}
)
