package log

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// consoleTimeLayout is the microsecond UTC layout of console timestamps.
const consoleTimeLayout = "2006-01-02T15:04:05.000000Z"

// encoderConfig returns the encoder config of the console or JSON format.
//
// Console lines are tab separated key=value fields for grep, JSON lines use
// "timestamp" and "message" keys.
func encoderConfig(json bool) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	if json {
		cfg.MessageKey = "message"
		cfg.TimeKey = "timestamp"
		cfg.EncodeTime = utcTime("", time.RFC3339Nano)
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.EncodeCaller = zapcore.ShortCallerEncoder
		return cfg
	}
	cfg.EncodeTime = utcTime("ts=", consoleTimeLayout)
	cfg.EncodeLevel = func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("level=" + l.CapitalString())
	}
	cfg.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("caller=" + caller.TrimmedPath())
	}
	return cfg
}

func utcTime(prefix, layout string) zapcore.TimeEncoder {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(prefix + t.UTC().Format(layout))
	}
}
