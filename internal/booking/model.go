package booking

import (
	"net/http"
	"strings"
	"time"

	"shareit/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrItemUnavailable  = apperror.New(http.StatusConflict, "item unavailable")
	ErrOwnItem          = apperror.New(http.StatusConflict, "cannot book own item")
	ErrAlreadyProcessed = apperror.New(http.StatusConflict, "booking already processed")
	ErrNotItemOwner     = apperror.New(http.StatusForbidden, "only the item owner can decide the booking")
	ErrAccessDenied     = apperror.New(http.StatusForbidden, "access to booking denied")
)

// Status is the booking lifecycle state. WAITING transitions exactly once
// to APPROVED or REJECTED; both are terminal.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// State is the query-time partition of a user's bookings.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState maps the query parameter to a State. An absent parameter
// means ALL; an unrecognized value is rejected rather than silently
// treated as ALL.
func ParseState(raw string) (State, error) {
	if strings.TrimSpace(raw) == "" {
		return StateAll, nil
	}
	switch State(strings.ToUpper(strings.TrimSpace(raw))) {
	case StateAll:
		return StateAll, nil
	case StateCurrent:
		return StateCurrent, nil
	case StatePast:
		return StatePast, nil
	case StateFuture:
		return StateFuture, nil
	case StateWaiting:
		return StateWaiting, nil
	case StateRejected:
		return StateRejected, nil
	default:
		return "", apperror.New(http.StatusBadRequest, "unknown state: "+raw)
	}
}

// Booking is a reservation of an item for a date range. Item and booker
// summaries are denormalized from the join so responses need no extra
// lookups.
type Booking struct {
	ID          int64
	Start       time.Time
	End         time.Time
	Status      Status
	ItemID      int64
	ItemName    string
	ItemOwnerID int64
	BookerID    int64
	BookerName  string
}
