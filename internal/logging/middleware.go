package logging

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lithammer/shortuuid/v3"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// RequestID assigns a correlation id to every request, reusing the client's
// X-Request-ID when present, and attaches a request-scoped logger to the context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = "req_" + shortuuid.New()
		}

		ctx := ContextWithCorrelationID(c.Request.Context(), id)
		ctx = ToContext(ctx, logrus.WithField("request_id", id))
		c.Request = c.Request.WithContext(ctx)

		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs one line per request. It must run after RequestID.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := FromContext(c.Request.Context()).WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
		})

		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request failed")
		case c.Writer.Status() >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request handled")
		}
	}
}
