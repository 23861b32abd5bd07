package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDContextKey is a gin context key for the request identifier.
	RequestIDContextKey = "requestID"
	requestIDHeader     = "X-Request-ID"
)

// RequestID assigns every request an identifier, honoring one supplied by
// the client, and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDContextKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// CurrentRequestID extracts the request identifier from context.
func CurrentRequestID(c *gin.Context) string {
	val, ok := c.Get(RequestIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}
