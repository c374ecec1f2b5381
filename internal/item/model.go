package item

import (
	"context"
	"net/http"
	"time"

	"shareit/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "item not found")
	ErrRequestNotFound   = apperror.New(http.StatusNotFound, "request not found")
	ErrNotOwner          = apperror.New(http.StatusForbidden, "only the owner can modify the item")
	ErrNeverRented       = apperror.New(http.StatusConflict, "user has never rented this item")
	ErrRentalNotFinished = apperror.New(http.StatusConflict, "rental is not finished yet")
)

// Item represents a thing offered for sharing.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64 // set when the item was created to answer a request
}

// Comment is feedback left by a user who rented the item.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

// BookingRef is the minimal booking info shown on the owner's item view.
type BookingRef struct {
	ID       int64
	BookerID int64
}

// Details is the full item view: comments for everyone, the adjacent
// bookings only for the owner.
type Details struct {
	Item
	Comments    []*Comment
	LastBooking *BookingRef
	NextBooking *BookingRef
}

// Bookings is the slice of booking storage this module needs. Implemented
// by the booking repository; declared here so the dependency points one
// way only.
type Bookings interface {
	HasApprovedRental(ctx context.Context, itemID, userID int64) (bool, error)
	HasFinishedRental(ctx context.Context, itemID, userID int64, before time.Time) (bool, error)
	LastForItem(ctx context.Context, itemID int64, now time.Time) (*BookingRef, error)
	NextForItem(ctx context.Context, itemID int64, now time.Time) (*BookingRef, error)
}

// Requests checks that a referenced item request exists. Implemented by
// the request repository.
type Requests interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
