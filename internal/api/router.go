package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/hotel-booking-backend/internal/booking/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/hotel"
	hotelHttp "github.com/nekogravitycat/hotel-booking-backend/internal/hotel/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/logging"
	"github.com/nekogravitycat/hotel-booking-backend/internal/payment"
	paymentHttp "github.com/nekogravitycat/hotel-booking-backend/internal/payment/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
	roomHttp "github.com/nekogravitycat/hotel-booking-backend/internal/room/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/user"
	userHttp "github.com/nekogravitycat/hotel-booking-backend/internal/user/http"
)

type Config struct {
	IsProduction bool
	ProdOrigins  []string

	UserService    user.Service
	HotelService   hotel.Service
	RoomService    room.Service
	BookingService booking.Service
	PaymentService payment.Service
	JWTManager     *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (request id, logging, CORS, auth) and registering routes for each module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware:
	// - RequestID: Correlation id and request-scoped logger.
	// - RequestLogger: One structured line per request.
	// - Recovery: Captures panics and returns a 500 error.
	r.Use(logging.RequestID(), logging.RequestLogger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = cfg.ProdOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", logging.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{logging.RequestIDHeader}
	if !corsConfig.AllowAllOrigins && len(corsConfig.AllowOrigins) == 0 {
		// cors.New panics on an empty origin list.
		corsConfig.AllowOrigins = []string{"http://localhost"}
	}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	hotelHandler := hotelHttp.NewHandler(cfg.HotelService, cfg.RoomService)
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	paymentHandler := paymentHttp.NewHandler(cfg.PaymentService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		hotelHttp.RegisterRoutes(v1, hotelHandler)
		roomHttp.RegisterRoutes(v1, roomHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		paymentHttp.RegisterRoutes(v1, paymentHandler, authMiddleware)
	}

	return r
}
