package http

import (
	"shareit/internal/user"
)

// UserResponse is the wire shape for a user.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// UserTag is the minimal user summary embedded in other responses.
type UserTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateUserBody is the POST /users payload. Field-level validation
// happens at the gateway; the server only needs the shape.
type CreateUserBody struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserBody is the PATCH /users/:userId payload. Nil means "leave
// unchanged".
type UpdateUserBody struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
