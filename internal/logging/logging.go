// Package logging builds the zap logger used by the rawcolor command.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Default log file rotation values.
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 7
)

// Options configure New.
type Options struct {
	// Verbose enables debug level output.
	Verbose bool

	// Console receives human readable output; nothing is written if nil.
	Console io.Writer

	// File is the path of a JSON log file, rotated by size. Empty disables it.
	File string
}

// New returns a logger teeing to the console and, optionally, a file.
func New(opts Options) *zap.Logger {
	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	var cores []zapcore.Core
	if opts.Console != nil {
		config := zap.NewDevelopmentEncoderConfig()
		config.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.00")
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(config),
			zapcore.AddSync(opts.Console),
			level,
		))
	}
	if opts.File != "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			NewFileWriter(opts.File),
			level,
		))
	}
	if len(cores) == 0 {
		return zap.NewNop()
	}
	return zap.New(zapcore.NewTee(cores...))
}

// NewFileWriter returns a writer appending to path, rotating it by size.
func NewFileWriter(path string) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAgeDays,
		Compress:   true,
	})
}
