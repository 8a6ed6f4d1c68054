package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	bookings := g.Group("/bookings")
	bookings.Use(authMiddleware)
	{
		bookings.POST("/:id/pay", h.Pay)
		bookings.GET("/:id/demo-pay", h.DemoPayScreen)
		bookings.POST("/:id/demo-pay", h.DemoPay)
	}

	payments := g.Group("/payments")
	payments.Use(authMiddleware)
	{
		payments.GET("/success", h.Success)
		payments.GET("/cancel", h.Cancel)
	}
}
