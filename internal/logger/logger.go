// Package logger builds the process logger. Logs go to stderr as JSON; when
// a file path is configured they are written there with rotation instead.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func New(debug bool, file string) (*zap.Logger, error) {
	if file != "" {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		level := zapcore.InfoLevel
		if debug {
			level = zapcore.DebugLevel
		}
		sink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
		core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, level)
		return zap.New(core), nil
	}
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
