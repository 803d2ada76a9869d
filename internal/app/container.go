package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tomhotel/booking-backend/internal/api"
	"github.com/tomhotel/booking-backend/internal/auth"
	"github.com/tomhotel/booking-backend/internal/booking"
	"github.com/tomhotel/booking-backend/internal/pkg/storage"
	"github.com/tomhotel/booking-backend/internal/room"
	"github.com/tomhotel/booking-backend/internal/user"
	"github.com/tomhotel/booking-backend/internal/wizard"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	PropertyCode string
	StoragePath  string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	DraftStore *wizard.Store
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	photoStorage, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init photo storage: %w", err)
	}

	// Profile Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Room Module
	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo, photoStorage)

	// Booking Module
	refGen := booking.NewReferenceGenerator(cfg.PropertyCode)
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, roomService, refGen)

	// Wizard Module
	draftStore := wizard.NewStore()
	wizardService := wizard.NewService(draftStore, roomService, bookingService)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UserService:    userService,
		RoomService:    roomService,
		BookingService: bookingService,
		WizardService:  wizardService,
		JWTManager:     jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		DraftStore: draftStore,
	}, nil
}
