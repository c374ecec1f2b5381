package gateway

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/pkg/apperror"
	"shareit/internal/pkg/identity"
	"shareit/internal/pkg/response"
)

// Handler validates incoming requests and forwards the valid ones to the
// backend. No domain logic lives here: the backend's answer is relayed
// byte for byte.
type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// forward proxies the request and relays the backend response.
func (h *Handler) forward(c *gin.Context, method, path string, query url.Values, userID int64, body any) {
	resp, err := h.client.Do(c.Request.Context(), method, path, query, userID, body, requestIDFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	if len(resp.Body) == 0 {
		c.Status(resp.Status)
		return
	}
	c.Data(resp.Status, "application/json", resp.Body)
}

// requireUserID extracts the identity header or writes a 400.
func (h *Handler) requireUserID(c *gin.Context) (int64, bool) {
	userID, err := identity.UserID(c)
	if err != nil {
		response.Error(c, err)
		return 0, false
	}
	return userID, true
}

// bindJSON decodes and validates the body or writes a 400.
func (h *Handler) bindJSON(c *gin.Context, body any) bool {
	if err := c.ShouldBindJSON(body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body: "+err.Error()))
		return false
	}
	return true
}

// pathID parses a positive integer path parameter or writes a 400.
func (h *Handler) pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, apperror.New(http.StatusBadRequest, name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}
