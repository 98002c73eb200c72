package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger: console encoding on stderr, named
// after the service, at info level. Checksum results go to stdout, so
// keeping all logging on stderr leaves stdout clean for scripting.
func New(service string) *zap.SugaredLogger {
	return NewWithLevel(service, zapcore.InfoLevel)
}

// NewWithLevel builds the application logger at an explicit level.
func NewWithLevel(service string, level zapcore.Level) *zap.SugaredLogger {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.DisableStacktrace = true
	return zap.Must(config.Build()).Named(service).Sugar()
}

// ParseLevel converts a level name such as "debug" or "warn" into a
// zapcore.Level. An empty name selects info.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(name)
}
