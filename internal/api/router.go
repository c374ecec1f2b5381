package api

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/booking"
	bookingHttp "shareit/internal/booking/http"
	"shareit/internal/item"
	itemHttp "shareit/internal/item/http"
	"shareit/internal/pkg/metrics"
	"shareit/internal/request"
	requestHttp "shareit/internal/request/http"
	"shareit/internal/user"
	userHttp "shareit/internal/user/http"
)

// Config carries the services the router exposes.
type Config struct {
	UserService    user.Service
	ItemService    item.Service
	BookingService booking.Service
	RequestService request.Service
}

// NewRouter assembles the backend HTTP router: global middleware, the
// metrics endpoint, and one route group per module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), metrics.Middleware("server"))

	r.GET("/metrics", metrics.Handler())

	userHandler := userHttp.NewHandler(cfg.UserService)
	itemHandler := itemHttp.NewHandler(cfg.ItemService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	requestHandler := requestHttp.NewHandler(cfg.RequestService)

	root := r.Group("")
	{
		userHttp.RegisterRoutes(root, userHandler)
		itemHttp.RegisterRoutes(root, itemHandler)
		bookingHttp.RegisterRoutes(root, bookingHandler)
		requestHttp.RegisterRoutes(root, requestHandler)
	}

	return r
}
