package auth

import "github.com/gin-gonic/gin"

const (
	userIDKey   = "userID"
	usernameKey = "username"
)

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	if v, ok := c.Get(userIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetUsername returns the authenticated user's name or empty string.
func GetUsername(c *gin.Context) string {
	if v, ok := c.Get(usernameKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
