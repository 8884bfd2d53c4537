// Package logging provides structured logging configuration.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logging configuration options.
type Config struct {
	Level  string // debug|info|warn|error
	Format string // json|console
}

// New creates a new configured zap logger.
func New(cfg Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
			return nil, err
		}
	}

	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = "console"
	}

	var zcfg zap.Config
	if format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.EncoderConfig.LevelKey = "level"
	zcfg.EncoderConfig.MessageKey = "msg"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("service", "guestbookctl")), nil
}

// Sync flushes any buffered log entries.
func Sync(logger *zap.Logger) {
	_ = logger.Sync()
}

// Err returns a zap field for an error.
func Err(err error) zap.Field { return zap.Error(err) }

// Key returns a zap field for an entry key.
func Key(key string) zap.Field { return zap.String("key", key) }

// Cursor returns a zap field for a pagination cursor.
func Cursor(cursor string) zap.Field { return zap.String("cursor", cursor) }

// Count returns a zap field for an entry count.
func Count(n int) zap.Field { return zap.Int("count", n) }

// Origin returns a zap field for the API origin.
func Origin(origin string) zap.Field { return zap.String("origin", origin) }

// Action returns a zap field for a moderation action name.
func Action(action string) zap.Field { return zap.String("action", action) }

// Status returns a zap field for an HTTP status code.
func Status(code int) zap.Field { return zap.Int("status", code) }
