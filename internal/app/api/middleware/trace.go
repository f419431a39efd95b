package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/renascerfit/coach/pkg/logctx"
	"github.com/renascerfit/coach/pkg/tool"
)

// TraceMiddleware assigns every request a trace ID, honoring X-Request-ID
// when the client sends one. The ID is stored in gin.Context and the
// request context, and echoed back in the response header.
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Request-ID")
		if traceID == "" {
			traceID = tool.GenerateUUIDV7()
		}

		c.Set(logctx.TraceIDKey, traceID)
		ctx := context.WithValue(c.Request.Context(), logctx.TraceIDKey, traceID)
		c.Request = c.Request.WithContext(ctx)

		c.Writer.Header().Set("X-Request-ID", traceID)

		c.Next()
	}
}
