package request

import (
	"net/http"
	"time"

	"shareit/internal/item"
	"shareit/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "request not found")

// Request is a user's ask for an item that nobody offers yet.
type Request struct {
	ID          int64
	Description string
	RequestorID int64
	Created     time.Time
}

// Details is a request together with the items created to answer it.
type Details struct {
	Request
	Items []*item.Item
}
