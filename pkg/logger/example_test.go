package logger_test

import (
	"errors"

	"github.com/wonny/govdash/pkg/config"
	"github.com/wonny/govdash/pkg/logger"
)

// Example_withFields demonstrates structured logging with fields
func Example_withFields() {
	cfg := &config.Config{
		Env:       "production",
		LogLevel:  "info",
		LogFormat: "json",
	}

	log := logger.New(cfg).Component("dataset")

	log.WithFields(map[string]interface{}{
		"path": "FinalDataGovernance.csv",
		"rows": 412,
	}).Info("Dataset loaded")

	log.WithError(errors.New("missing column \"Ticker\"")).Error("Dataset reload failed")
}
