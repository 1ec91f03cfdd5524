package log

import (
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global atomic.Pointer[zap.SugaredLogger]

func init() {
	ReplaceLogger(nil)
}

// Level is the name of a log level, as written in configs.
type Level string

// Levels.
const (
	NopLevel   Level = "nop"
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// ZapNopLevel is above every level zap logs at.
const ZapNopLevel = zapcore.FatalLevel + 1

// ToZapLevel converts l to a zap level. Unknown levels log nothing.
func (l Level) ToZapLevel() zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	}
	return ZapNopLevel
}

// UnmarshalText implements encoding.TextUnmarshaler, so a misspelled level in
// a config is an error instead of a silent logger. Case is ignored.
func (l *Level) UnmarshalText(text []byte) error {
	switch lvl := Level(strings.ToLower(strings.TrimSpace(string(text)))); lvl {
	case NopLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
		*l = lvl
		return nil
	}
	return fmt.Errorf("log: unknown level %q", text)
}

// InitLogger replaces the global logger with one writing the console format
// to stderr.
func InitLogger(level Level) {
	initLogger(level, false)
}

// InitLoggerJSON replaces the global logger with one writing JSON lines to
// stderr.
func InitLoggerJSON(level Level) {
	initLogger(level, true)
}

func initLogger(level Level, json bool) {
	if level == NopLevel {
		ReplaceLogger(nil)
		return
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level.ToZapLevel())
	cfg.Encoding = "console"
	if json {
		cfg.Encoding = "json"
	}
	cfg.EncoderConfig = encoderConfig(json)

	l, err := cfg.Build()
	if err != nil {
		// Only an invalid encoding or output path gets here.
		panic(err)
	}
	ReplaceLogger(l)
}

// ReplaceLogger replaces the global logger.
//
// It's mainly useful in tests, together with zaptest/observer, to assert on
// what was logged. Passing nil resets the global logger to a nop logger.
// It is safe to call while other goroutines log.
func ReplaceLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	global.Store(l.WithOptions(zap.AddCallerSkip(1)).Sugar())
}

// DebugEnabled reports whether the global logger would emit debug entries.
//
// Use it to skip building expensive debug output.
func DebugEnabled() bool {
	return global.Load().Desugar().Core().Enabled(zapcore.DebugLevel)
}

// Debugf logs a templated message at debug level.
func Debugf(template string, args ...interface{}) {
	global.Load().Debugf(template, args...)
}

// Debugw logs a message with key-value pairs at debug level.
//
// When debug-level logging is disabled, this is much faster than building
// the message yourself.
func Debugw(msg string, keysAndValues ...interface{}) {
	global.Load().Debugw(msg, keysAndValues...)
}

// Infow logs a message with key-value pairs at info level.
func Infow(msg string, keysAndValues ...interface{}) {
	global.Load().Infow(msg, keysAndValues...)
}

// Warnw logs a message with key-value pairs at warn level.
func Warnw(msg string, keysAndValues ...interface{}) {
	global.Load().Warnw(msg, keysAndValues...)
}

// Errorw logs a message with key-value pairs at error level.
func Errorw(msg string, keysAndValues ...interface{}) {
	global.Load().Errorw(msg, keysAndValues...)
}
