// Package logs builds zap loggers from the configuration.
package logs

import (
	"fmt"
	"io"

	"github.com/tradeledger/asset-transfer/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New constructs logger writing into w. When cfg.File is set, entries are
// also written as JSON into the rotated file.
func New(cfg config.Logger, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var enc zapcore.Encoder

	switch cfg.Encoding {
	case "json":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "console", "":
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		return nil, fmt.Errorf("unsupported log encoding '%s'", cfg.Encoding)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)

	if cfg.File != "" {
		core = zapcore.NewTee(core, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAgeDays,
			}),
			lvl,
		))
	}

	return zap.New(core), nil
}
