package http

import (
	"shareit/internal/booking"
	"shareit/internal/pkg/datetime"
	userHttp "shareit/internal/user/http"
)

// ItemTag is the minimal item summary embedded in booking responses.
type ItemTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingResponse is the wire shape for a booking.
type BookingResponse struct {
	ID     int64                  `json:"id"`
	Start  datetime.LocalDateTime `json:"start"`
	End    datetime.LocalDateTime `json:"end"`
	Status string                 `json:"status"`
	Item   ItemTag                `json:"item"`
	Booker userHttp.UserTag       `json:"booker"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  datetime.New(b.Start),
		End:    datetime.New(b.End),
		Status: string(b.Status),
		Item:   ItemTag{ID: b.ItemID, Name: b.ItemName},
		Booker: userHttp.UserTag{ID: b.BookerID, Name: b.BookerName},
	}
}

// CreateBookingBody is the POST /bookings payload.
type CreateBookingBody struct {
	ItemID int64                  `json:"itemId"`
	Start  datetime.LocalDateTime `json:"start"`
	End    datetime.LocalDateTime `json:"end"`
}
