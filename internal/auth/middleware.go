package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/hotel-booking-backend/internal/logging"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
)

// AuthRequired is a Gin middleware that validates JWT from Authorization: Bearer <token>.
// Requests without a valid principal are rejected with the login destination.
func AuthRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthenticated(c)
			return
		}

		claims, err := jwtManager.ParseAndValidate(strings.TrimSpace(parts[1]))
		if err != nil {
			logging.FromContext(c.Request.Context()).WithError(err).Debug("rejected token")
			response.Unauthenticated(c)
			return
		}

		// Store user info into Gin context for later handlers.
		c.Set(userIDKey, claims.Subject)
		c.Set(usernameKey, claims.Username)

		entry := logging.FromContext(c.Request.Context()).WithField("user_id", claims.Subject)
		c.Request = c.Request.WithContext(logging.ToContext(c.Request.Context(), entry))

		c.Next()
	}
}
