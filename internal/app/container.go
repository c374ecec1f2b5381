package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"shareit/internal/api"
	"shareit/internal/booking"
	"shareit/internal/item"
	"shareit/internal/request"
	"shareit/internal/user"
)

// Config holds the dependencies required to assemble the application.
type Config struct {
	DBPool *pgxpool.Pool
}

// Container holds the initialized components needed externally.
type Container struct {
	Router *gin.Engine

	UserService    user.Service
	ItemService    item.Service
	BookingService booking.Service
	RequestService request.Service
}

// NewContainer wires repositories and services and returns the assembled
// application. The booking repository doubles as the item module's view
// of bookings, so it is created before both services.
func NewContainer(cfg Config) *Container {
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo)

	itemRepo := item.NewPgxRepository(cfg.DBPool)
	commentRepo := item.NewPgxCommentRepository(cfg.DBPool)
	requestRepo := request.NewPgxRepository(cfg.DBPool)
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)

	itemService := item.NewService(itemRepo, commentRepo, userService, requestRepo, bookingRepo)
	bookingService := booking.NewService(bookingRepo, itemService, userService)
	requestService := request.NewService(requestRepo, userService, itemRepo)

	router := api.NewRouter(api.Config{
		UserService:    userService,
		ItemService:    itemService,
		BookingService: bookingService,
		RequestService: requestService,
	})

	return &Container{
		Router:         router,
		UserService:    userService,
		ItemService:    itemService,
		BookingService: bookingService,
		RequestService: requestService,
	}
}
