// =============================================================================
// FILE: internal/middleware/middleware.go
// PURPOSE: Request ID assignment and structured request logging
// =============================================================================

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the gin context key under which the request id is stored
const RequestIDKey = "request_id"

// requestIDHeader is echoed back so clients and upstream proxies can
// correlate logs with responses
const requestIDHeader = "X-Request-ID"

// RequestID assigns a UUID to each request, unless the client already sent
// one in the X-Request-ID header
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}

		// Store in context for handlers and the error body to use
		c.Set(RequestIDKey, rid)
		c.Writer.Header().Set(requestIDHeader, rid)

		c.Next()
	}
}

// RequestLogger logs one line per completed request with method, path,
// status, duration, and the request id
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
			"ip":         c.ClientIP(),
			"request_id": c.GetString(RequestIDKey),
		}).Info("Request completed")
	}
}
