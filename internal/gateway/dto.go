package gateway

import (
	"net/http"
	"time"

	"shareit/internal/pkg/apperror"
	"shareit/internal/pkg/datetime"
)

var (
	errStartRequired    = apperror.New(http.StatusBadRequest, "start is required")
	errEndRequired      = apperror.New(http.StatusBadRequest, "end is required")
	errStartInPast      = apperror.New(http.StatusBadRequest, "start must not be in the past")
	errEndNotAfterStart = apperror.New(http.StatusBadRequest, "end must be after start")
)

// CreateUserBody validates POST /users.
type CreateUserBody struct {
	Name  string `json:"name" binding:"required,notblank"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateUserBody validates PATCH /users/:userId.
type UpdateUserBody struct {
	Name  *string `json:"name" binding:"omitempty,notblank"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// CreateItemBody validates POST /items.
type CreateItemBody struct {
	Name        string `json:"name" binding:"required,notblank"`
	Description string `json:"description" binding:"required,notblank"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId" binding:"omitempty,gt=0"`
}

// UpdateItemBody validates PATCH /items/:itemId.
type UpdateItemBody struct {
	Name        *string `json:"name" binding:"omitempty,notblank"`
	Description *string `json:"description" binding:"omitempty,notblank"`
	Available   *bool   `json:"available"`
}

// CreateCommentBody validates POST /items/:itemId/comment.
type CreateCommentBody struct {
	Text string `json:"text" binding:"required,notblank"`
}

// CreateBookingBody validates POST /bookings.
type CreateBookingBody struct {
	ItemID int64                  `json:"itemId" binding:"required,gt=0"`
	Start  datetime.LocalDateTime `json:"start"`
	End    datetime.LocalDateTime `json:"end"`
}

// Validate checks the date range: both ends present, start not in the
// past, end strictly after start.
func (b *CreateBookingBody) Validate(now time.Time) error {
	if b.Start.IsZero() {
		return errStartRequired
	}
	if b.End.IsZero() {
		return errEndRequired
	}
	if b.Start.Time.Before(now.Truncate(time.Second)) {
		return errStartInPast
	}
	if !b.End.Time.After(b.Start.Time) {
		return errEndNotAfterStart
	}
	return nil
}

// CreateRequestBody validates POST /requests.
type CreateRequestBody struct {
	Description string `json:"description" binding:"required,notblank"`
}
