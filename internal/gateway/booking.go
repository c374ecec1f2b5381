package gateway

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shareit/internal/booking"
	"shareit/internal/pkg/apperror"
	"shareit/internal/pkg/response"
)

var errBadApproved = apperror.New(http.StatusBadRequest, "approved must be true or false")

func (h *Handler) CreateBooking(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}
	var body CreateBookingBody
	if !h.bindJSON(c, &body) {
		return
	}
	if err := body.Validate(time.Now()); err != nil {
		response.Error(c, err)
		return
	}
	h.forward(c, http.MethodPost, "/bookings", nil, userID, body)
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}
	bookingID, ok := h.pathID(c, "bookingId")
	if !ok {
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.Error(c, errBadApproved)
		return
	}

	query := url.Values{"approved": {strconv.FormatBool(approved)}}
	h.forward(c, http.MethodPatch, fmt.Sprintf("/bookings/%d", bookingID), query, userID, nil)
}

func (h *Handler) GetBooking(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}
	bookingID, ok := h.pathID(c, "bookingId")
	if !ok {
		return
	}
	h.forward(c, http.MethodGet, fmt.Sprintf("/bookings/%d", bookingID), nil, userID, nil)
}

func (h *Handler) ListBookings(c *gin.Context) {
	h.listBookings(c, "/bookings")
}

func (h *Handler) ListOwnerBookings(c *gin.Context) {
	h.listBookings(c, "/bookings/owner")
}

// listBookings rejects malformed state values at the edge so the backend
// only ever sees valid tokens.
func (h *Handler) listBookings(c *gin.Context, path string) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	state, err := booking.ParseState(c.Query("state"))
	if err != nil {
		response.Error(c, err)
		return
	}

	query := url.Values{"state": {string(state)}}
	h.forward(c, http.MethodGet, path, query, userID, nil)
}
