package request

import (
	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
)

// ByIDRequest binds the :id path parameter of hotel, room and booking routes.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// BindID reads a UUID :id from the path. On failure it has already written a 400.
func BindID(c *gin.Context) (string, bool) {
	var req ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid id", err)
		return "", false
	}
	return req.ID, true
}
