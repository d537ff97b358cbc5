package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole denies the request unless the JWT carried the given role.
// Must run after ValidateToken.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists || roleVal != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied for this role"})
			c.Abort()
			return
		}
		c.Next()
	}
}
