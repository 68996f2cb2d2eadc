package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireStaff blocks clients (the self-registration role) from mutating the
// roster. The app has exactly one role distinction: staff edits, clients
// look.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if ident.IsClient() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "read-only access"})
			return
		}
		c.Next()
	}
}
