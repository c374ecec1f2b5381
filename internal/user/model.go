package user

import (
	"net/http"

	"shareit/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed = apperror.New(http.StatusConflict, "email already used")
)

// User represents a registered user.
type User struct {
	ID    int64
	Name  string
	Email string
}
