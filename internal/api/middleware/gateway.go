package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const anonymousUser = "anonymous"

// GatewayAuth trusts user info from gateway headers (X-User-ID, X-User-Email).
// The gateway validates credentials; this service only scopes stored
// compositions by the forwarded id.
//
// When AUTH_MODE=gateway, the API trusts these headers unconditionally.
// This should ONLY be used behind the gateway with proper network isolation.
func GatewayAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Authentication required",
				"message": "Missing X-User-ID header from gateway",
			})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("user_email", c.GetHeader("X-User-Email"))
		c.Next()
	}
}

// GetUserIDFromGateway retrieves the user ID set by the auth middleware
// Returns the string ID and a boolean indicating if it was found
func GetUserIDFromGateway(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return anonymousUser, false
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		return anonymousUser, false
	}
	return id, true
}
