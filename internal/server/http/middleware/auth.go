package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/primedecor/backend/internal/pkg/auth"
)

// AdminRequired ensures the request carries a valid admin token before
// accessing back-office handlers.
func AdminRequired(gate pkgAuth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if err := gate.Authorize(token); err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
