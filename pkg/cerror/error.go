package cerror

import (
	"go.uber.org/zap/zapcore"
)

// CustomError carries the HTTP status and the stable code/message pair returned
// to the caller, alongside the message, severity and fields used for logging.
// The log side never reaches the client.
type CustomError struct {
	HttpStatusCode int             `json:"-"`
	Code           string          `json:"code"`
	Message        string          `json:"message"`
	LogMessage     string          `json:"-"`
	LogSeverity    zapcore.Level   `json:"-"`
	LogFields      []zapcore.Field `json:"-"`
}

func NewError(httpStatusCode int, logMessage string, logFields ...zapcore.Field) *CustomError {
	return &CustomError{
		HttpStatusCode: httpStatusCode,
		Code:           CodeInternalError,
		Message:        "internal server error",
		LogMessage:     logMessage,
		LogSeverity:    zapcore.ErrorLevel,
		LogFields:      logFields,
	}
}

func (cerr *CustomError) Error() string {
	return cerr.LogMessage
}

func (cerr *CustomError) SetSeverity(severity zapcore.Level) *CustomError {
	cerr.LogSeverity = severity
	return cerr
}

func (cerr *CustomError) SetCode(code, message string) *CustomError {
	cerr.Code = code
	cerr.Message = message
	return cerr
}

// WithFields returns a copy so the predefined errors stay immutable.
func (cerr *CustomError) WithFields(logFields ...zapcore.Field) *CustomError {
	clone := *cerr
	clone.LogFields = logFields
	return &clone
}
