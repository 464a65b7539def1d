package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDKey is the gin context key the handler helpers read when tagging
// log lines for a request.
const requestIDKey = "request_id"

// RequestIDMiddleware assigns every request a correlation ID so a session
// submission can be traced through to the insights it recomputes. A
// caller-supplied X-Request-ID is honored; otherwise one is generated. The ID
// is echoed on the response and stamped on handler log lines.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(requestIDKey, reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)
		c.Next()
	}
}
