package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.Logger

// New builds a logger for the given environment and level.
// "production" produces JSON output, anything else a coloured console encoder.
// An unknown level keeps the environment's default level.
func New(environment, level string) (*zap.Logger, error) {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if l, err := zapcore.ParseLevel(level); err == nil {
		config.Level = zap.NewAtomicLevelAt(l)
	}

	return config.Build(zap.Fields(zap.String("service", "elite-store")))
}

// Init builds the process-wide logger.
func Init(environment, level string) error {
	l, err := New(environment, level)
	if err != nil {
		return err
	}

	globalLogger = l
	return nil
}

// Get returns the global logger instance.
// Before Init it returns a no-op logger so packages can log unconditionally.
func Get() *zap.Logger {
	if globalLogger == nil {
		return zap.NewNop()
	}
	return globalLogger
}

// Session returns the global logger annotated with a storefront session id.
func Session(sessionID string) *zap.Logger {
	return Get().With(zap.String("session_id", sessionID))
}

// Sync flushes any buffered log entries.
func Sync() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}
