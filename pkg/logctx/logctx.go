package logctx

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys shared with the middleware chain.
const (
	LoggerKey  = "logger"
	TraceIDKey = "traceID"
	UserIDKey  = "user_id"
)

// FromGin returns the request-scoped logger attached by the middleware
// chain, falling back to context enrichment and finally to base.
func FromGin(c *gin.Context, base *zap.SugaredLogger) *zap.SugaredLogger {
	if c == nil {
		return base
	}
	if lg, ok := c.Get(LoggerKey); ok {
		if l, ok := lg.(*zap.SugaredLogger); ok && l != nil {
			return l
		}
	}
	return FromCtx(c.Request.Context(), base)
}

// FromCtx returns the logger stored in ctx if any. Otherwise it enriches
// base with whichever of trace_id and user_id the context carries.
func FromCtx(ctx context.Context, base *zap.SugaredLogger) *zap.SugaredLogger {
	if ctx == nil {
		return base
	}
	if l, ok := ctx.Value(LoggerKey).(*zap.SugaredLogger); ok && l != nil {
		return l
	}

	out := base
	if tid, ok := ctx.Value(TraceIDKey).(string); ok && tid != "" {
		out = out.With("trace_id", tid)
	}
	if uid, ok := ctx.Value(UserIDKey).(string); ok && uid != "" {
		out = out.With("user_id", uid)
	}
	return out
}
