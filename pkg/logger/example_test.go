package logger_test

import (
	"errors"

	"github.com/dinotradez/backend/pkg/config"
	"github.com/dinotradez/backend/pkg/logger"
)

// Example_withFields demonstrates structured logging with fields
func Example_withFields() {
	cfg := &config.Config{
		Env:       "production",
		LogLevel:  "info",
		LogFormat: "json",
	}

	log := logger.New(cfg)

	featureLog := log.WithFields(map[string]interface{}{
		"feature": "dark_pool",
		"symbols": 20,
	})
	featureLog.Info("Feature request started")

	err := errors.New("context deadline exceeded")
	featureLog.WithError(err).WithField("symbol", "NVDA").Warn("Insider lookup failed, continuing without signal")
}
