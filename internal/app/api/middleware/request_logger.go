package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/renascerfit/coach/pkg/logctx"
)

// RequestLoggerMiddleware attaches a request-scoped logger, enriched with
// the trace ID, to both gin.Context and the request context. Handlers and
// services retrieve it through logctx.
func RequestLoggerMiddleware(base *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLogger := base
		if tid := c.GetString(logctx.TraceIDKey); tid != "" {
			reqLogger = base.With("trace_id", tid)
		}

		c.Set(logctx.LoggerKey, reqLogger)
		ctx := context.WithValue(c.Request.Context(), logctx.LoggerKey, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
