package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/booking"
	"shareit/internal/pkg/apperror"
	"shareit/internal/pkg/identity"
	"shareit/internal/pkg/response"
)

var (
	errBadBookingID = apperror.New(http.StatusBadRequest, "bookingId must be a positive integer")
	errBadApproved  = apperror.New(http.StatusBadRequest, "approved must be true or false")
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func pathBookingID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadBookingID
	}
	return id, nil
}

func (h *Handler) Create(c *gin.Context) {
	bookerID, err := identity.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		ItemID:   body.ItemID,
		BookerID: bookerID,
		Start:    body.Start.Time,
		End:      body.End.Time,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Update(c *gin.Context) {
	actorID, err := identity.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	bookingID, err := pathBookingID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.Error(c, errBadApproved)
		return
	}

	b, err := h.service.Update(c.Request.Context(), bookingID, approved, actorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	actorID, err := identity.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	bookingID, err := pathBookingID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), bookingID, actorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) ListForBooker(c *gin.Context) {
	h.list(c, h.service.ListForBooker)
}

func (h *Handler) ListForOwner(c *gin.Context) {
	h.list(c, h.service.ListForOwner)
}

func (h *Handler) list(c *gin.Context, query func(ctx context.Context, userID int64, state booking.State) ([]*booking.Booking, error)) {
	userID, err := identity.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	state, err := booking.ParseState(c.Query("state"))
	if err != nil {
		response.Error(c, err)
		return
	}

	bookings, err := query(c.Request.Context(), userID, state)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, NewBookingResponse(b))
	}
	c.JSON(http.StatusOK, resp)
}
