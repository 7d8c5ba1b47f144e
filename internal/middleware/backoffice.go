package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BackofficeKeyMiddleware guards operational routes with a shared key
// sent in the X-Backoffice-Key header. An empty configured key disables
// the routes entirely.
func BackofficeKeyMiddleware(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" || c.GetHeader("X-Backoffice-Key") != key {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid backoffice key"})
			return
		}
		c.Next()
	}
}
