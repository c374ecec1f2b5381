// Package identity extracts the calling user from the X-Sharer-User-Id
// header. The service trusts the header as-is: there is no credential or
// token layer in this system, identification is part of the API contract.
package identity

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/pkg/apperror"
)

// Header names the identity header shared by the gateway and the server.
const Header = "X-Sharer-User-Id"

var (
	ErrMissing = apperror.New(http.StatusBadRequest, "X-Sharer-User-Id header is required")
	ErrInvalid = apperror.New(http.StatusBadRequest, "X-Sharer-User-Id header must be a positive integer")
)

// UserID returns the caller id from the identity header.
func UserID(c *gin.Context) (int64, error) {
	raw := c.GetHeader(Header)
	if raw == "" {
		return 0, ErrMissing
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalid
	}
	return id, nil
}
