package logging

import (
	"context"

	"github.com/go-kit/kit/log"
	"github.com/xmidt-org/sallust"
)

type contextKey uint32

const loggerKey contextKey = 1

// WithLogger adds the given Logger to the context so that it can be retrieved with GetLogger
func WithLogger(parent context.Context, logger log.Logger) context.Context {
	return context.WithValue(parent, loggerKey, logger)
}

// GetLogger retrieves the go-kit logger associated with the context.  When the context has no
// go-kit logger, the zap logger carried by sallust is adapted with NewZapLogger.  That is
// sallust.Default() if the context carries neither.
func GetLogger(ctx context.Context) log.Logger {
	if logger, ok := ctx.Value(loggerKey).(log.Logger); ok {
		return logger
	}

	return NewZapLogger(sallust.Get(ctx))
}
