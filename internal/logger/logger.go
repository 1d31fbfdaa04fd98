package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize sets up the global logger with the given log level.
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = logger.Sugar()
	return nil
}

// LevelForEnvironment returns the default log level for a deployment mode.
// Development logs everything, production only warnings and errors,
// and test runs stay quiet unless something fails.
func LevelForEnvironment(environment string) string {
	switch environment {
	case "production":
		return zapcore.WarnLevel.String()
	case "test":
		return zapcore.ErrorLevel.String()
	default:
		return zapcore.DebugLevel.String()
	}
}
