package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tomhotel/booking-backend/internal/auth"
	"github.com/tomhotel/booking-backend/internal/booking"
	bookingHttp "github.com/tomhotel/booking-backend/internal/booking/http"
	"github.com/tomhotel/booking-backend/internal/room"
	roomHttp "github.com/tomhotel/booking-backend/internal/room/http"
	"github.com/tomhotel/booking-backend/internal/user"
	userHttp "github.com/tomhotel/booking-backend/internal/user/http"
	"github.com/tomhotel/booking-backend/internal/wizard"
	wizardHttp "github.com/tomhotel/booking-backend/internal/wizard/http"
)

// Config holds everything the router needs to assemble the API surface.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService    user.Service
	RoomService    room.Service
	BookingService booking.Service
	WizardService  wizard.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine: global middleware
// (logging, recovery, CORS) and the per-module route registration.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://localhost:8081"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware validates the JWT; adminMiddleware additionally
	// requires the admin role carried in the verified claims.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := auth.AdminRequired()

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	wizardHandler := wizardHttp.NewHandler(cfg.WizardService, cfg.UserService)
	adminHandler := NewAdminHandler(cfg.BookingService, cfg.RoomService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)
		wizardHttp.RegisterRoutes(v1, wizardHandler, authMiddleware)

		adminGroup := v1.Group("/admin")
		adminGroup.Use(authMiddleware, adminMiddleware)
		{
			adminGroup.GET("/stats", adminHandler.Stats)
		}
	}

	return r
}
