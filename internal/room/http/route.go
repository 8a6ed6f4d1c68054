package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers public room routes.
// Booking a room lives in the booking package under the same prefix.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/rooms/:id", h.Get)
}
