package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeaderKey  = "X-Request-ID"
	RequestIDContextKey = "request_id"
)

// RequestIDMiddleware assigns each request a UUID, reusing the caller's
// X-Request-ID when one is supplied. The id is echoed on the response so
// clients can correlate logs.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeaderKey)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDContextKey, id)
		c.Writer.Header().Set(RequestIDHeaderKey, id)

		c.Next()
	}
}

// GetRequestID retrieves the request id from context
func GetRequestID(c *gin.Context) string {
	id, _ := c.Get(RequestIDContextKey)
	s, _ := id.(string)
	return s
}
