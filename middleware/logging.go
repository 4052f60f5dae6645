package middleware

import (
	"net/http"
	"time"

	"github.com/annazecevic/band-service/logger"
	"github.com/gin-gonic/gin"
)

// RequestLogger writes one HTTP_REQUEST entry per request once the handler chain returns.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := logger.Fields(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
			"request_id", GetRequestID(c),
		)
		if len(c.Errors) > 0 {
			fields["error"] = c.Errors.String()
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error(logger.EventHTTPRequest, "Request failed", fields)
		case status >= http.StatusBadRequest:
			logger.Warn(logger.EventHTTPRequest, "Request rejected", fields)
		default:
			logger.Info(logger.EventHTTPRequest, "Request served", fields)
		}
	}
}
