// Package logger builds the process-wide zap logger.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New initializes the zap logger. Dev mode gets a colored console
// encoder; production logs JSON.
func New(devMode bool) (*zap.Logger, error) {
	var zapCfg zap.Config

	if devMode {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	log, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}
