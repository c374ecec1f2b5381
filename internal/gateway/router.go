package gateway

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shareit/internal/pkg/metrics"
)

// NewRouter assembles the gateway: CORS, request ids, metrics, and the
// same route surface as the backend, each route validating before it
// forwards.
func NewRouter(h *Handler, allowedOrigins string) *gin.Engine {
	RegisterValidations()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), RequestID(), metrics.Middleware("gateway"))

	config := cors.DefaultConfig()
	if allowedOrigins != "" {
		config.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "X-Sharer-User-Id", "X-Request-Id"}
	r.Use(cors.New(config))

	r.GET("/metrics", metrics.Handler())

	users := r.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.GET("/:userId", h.GetUser)
		users.PATCH("/:userId", h.UpdateUser)
		users.DELETE("/:userId", h.DeleteUser)
	}

	items := r.Group("/items")
	{
		items.POST("", h.CreateItem)
		items.GET("", h.ListOwnItems)
		items.GET("/search", h.SearchItems)
		items.GET("/:itemId", h.GetItem)
		items.PATCH("/:itemId", h.UpdateItem)
		items.POST("/:itemId/comment", h.AddComment)
	}

	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/owner", h.ListOwnerBookings)
		bookings.GET("/:bookingId", h.GetBooking)
		bookings.PATCH("/:bookingId", h.UpdateBooking)
	}

	requests := r.Group("/requests")
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.ListOwnRequests)
		requests.GET("/all", h.ListAllRequests)
		requests.GET("/:requestId", h.GetRequest)
	}

	return r
}
