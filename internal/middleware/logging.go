package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"privfinos/internal/logger"
)

// RequestIDKey is the context key under which the per-request ID is stored.
const RequestIDKey = "requestId"

// RequestLogging tags each request with an ID, echoes it in the X-Request-ID
// response header, and writes one access-log line when the handler chain
// finishes. Server errors log at error level so they stand out.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := uuid.New().String()
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"requestId", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", status,
			"durationMs", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
		}

		log := logger.Get()
		if status >= 500 {
			log.Errorw("http request failed", fields...)
			return
		}
		log.Infow("http request", fields...)
	}
}
