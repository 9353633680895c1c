package middleware

import (
	"time"

	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Logger middleware logs incoming requests and their responses
func Logger(logger coreport.Logger, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		ip := c.ClientIP()

		c.Next()

		latency := timeProvider.Since(start).Std()
		statusCode := c.Writer.Status()

		fields := map[string]any{
			"method":      method,
			"path":        path,
			"status":      statusCode,
			"latency_ms":  latency.Milliseconds(),
			"ip":          ip,
			"request_id":  coreport.TraceID(c.Request.Context()),
			"user_agent":  c.Request.UserAgent(),
			"bytes_in":    c.Request.ContentLength,
			"status_text": statusText(statusCode),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		switch {
		case statusCode >= 500:
			logger.Error("Request failed", fields)
		case statusCode >= 400 || latency > slowRequestThreshold:
			logger.Warn("Request processed", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}

// slowRequestThreshold promotes successful but slow requests to warnings
const slowRequestThreshold = 5 * time.Second

// statusText returns the text for the HTTP status code
func statusText(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "Informational"
	case code >= 200 && code < 300:
		return "Success"
	case code >= 300 && code < 400:
		return "Redirect"
	case code >= 400 && code < 500:
		return "Client Error"
	default:
		return "Server Error"
	}
}
