package logging

import (
	"fmt"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap.Logger onto the go-kit log.Logger interface.  The MessageKey value
// becomes the zap message, the go-kit level becomes the zap level, and every other key/value
// pair becomes a zap field.
type ZapLogger struct {
	*zap.Logger
}

var _ log.Logger = ZapLogger{}

// NewZapLogger wraps l as a go-kit logger.  A nil l produces a logger that discards everything.
func NewZapLogger(l *zap.Logger) log.Logger {
	if l == nil {
		l = zap.NewNop()
	}

	return ZapLogger{Logger: l}
}

func zapLevel(v interface{}) zapcore.Level {
	switch fmt.Sprint(v) {
	case level.DebugValue().String():
		return zapcore.DebugLevel
	case level.WarnValue().String():
		return zapcore.WarnLevel
	case level.ErrorValue().String():
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l ZapLogger) Log(keyvals ...interface{}) error {
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, log.ErrMissingValue)
	}

	var (
		message string
		lvl     = zapcore.InfoLevel
		fields  = make([]zap.Field, 0, len(keyvals)/2)
	)

	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		switch {
		case keyvals[i] == level.Key():
			lvl = zapLevel(keyvals[i+1])
		case keyvals[i] == MessageKey():
			message = fmt.Sprint(keyvals[i+1])
		default:
			fields = append(fields, zap.Any(key, keyvals[i+1]))
		}
	}

	if ce := l.Logger.Check(lvl, message); ce != nil {
		ce.Write(fields...)
	}

	return nil
}
