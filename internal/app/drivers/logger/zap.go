package logger

import (
	"giya-service/internal/app/config"
	"giya-service/internal/pkg/constvars"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger builds the application logger. Every entry carries the
// service name and environment so BFF logs can be told apart from the
// backend's in a shared sink.
func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	outputPaths, errorOutputPaths := outputPaths(driverConfig, internalConfig.App.Env)

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(driverConfig.Logger.Level)),
		Development:      internalConfig.App.Env == constvars.AppEnvDevelopment,
		Encoding:         "json",
		EncoderConfig:    encoderConfig(),
		OutputPaths:      outputPaths,
		ErrorOutputPaths: errorOutputPaths,
		InitialFields: map[string]interface{}{
			"service": constvars.AppServiceName,
			"env":     internalConfig.App.Env,
		},
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	return zapLogger
}

// parseLevel falls back to info for an empty or unknown LOGGER_LEVEL.
func parseLevel(level string) zapcore.Level {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return zap.InfoLevel
	}
	return parsed
}

// outputPaths writes to the console in development and to the configured
// log files everywhere else. Errors always reach stderr too.
func outputPaths(driverConfig *config.DriverConfig, env string) ([]string, []string) {
	if env == constvars.AppEnvDevelopment || env == "" {
		return []string{"stdout"}, []string{"stderr"}
	}
	return []string{driverConfig.Logger.OutputFileName},
		[]string{"stderr", driverConfig.Logger.OutputErrorFileName}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}
