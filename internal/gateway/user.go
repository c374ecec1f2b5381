package gateway

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateUser(c *gin.Context) {
	var body CreateUserBody
	if !h.bindJSON(c, &body) {
		return
	}
	h.forward(c, http.MethodPost, "/users", nil, 0, body)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	userID, ok := h.pathID(c, "userId")
	if !ok {
		return
	}
	var body UpdateUserBody
	if !h.bindJSON(c, &body) {
		return
	}
	h.forward(c, http.MethodPatch, fmt.Sprintf("/users/%d", userID), nil, 0, body)
}

func (h *Handler) GetUser(c *gin.Context) {
	userID, ok := h.pathID(c, "userId")
	if !ok {
		return
	}
	h.forward(c, http.MethodGet, fmt.Sprintf("/users/%d", userID), nil, 0, nil)
}

func (h *Handler) ListUsers(c *gin.Context) {
	h.forward(c, http.MethodGet, "/users", nil, 0, nil)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	userID, ok := h.pathID(c, "userId")
	if !ok {
		return
	}
	h.forward(c, http.MethodDelete, fmt.Sprintf("/users/%d", userID), nil, 0, nil)
}
