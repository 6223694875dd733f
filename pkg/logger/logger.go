package logger

import (
	"go.uber.org/zap"
)

// NewLogger builds the process-wide production sugared logger. The caller
// owns flushing; Sync is deferred in main, not here, so buffered entries
// survive until shutdown.
func NewLogger() (*zap.SugaredLogger, error) {
	log, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	return log.Sugar(), nil
}
