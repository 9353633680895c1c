package middleware

import (
	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the trace id in both directions
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength caps client-supplied ids before they reach the logs
const maxRequestIDLength = 64

// RequestID propagates the caller's request id, or a fresh one, into the request context
// so database and use-case logs can be correlated with the access log
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(coreport.WithTraceID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
