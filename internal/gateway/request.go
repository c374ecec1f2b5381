package gateway

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/pkg/apperror"
	"shareit/internal/pkg/response"
)

var errBadPagination = apperror.New(http.StatusBadRequest, "from must be >= 0 and size must be > 0")

func (h *Handler) CreateRequest(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}
	var body CreateRequestBody
	if !h.bindJSON(c, &body) {
		return
	}
	h.forward(c, http.MethodPost, "/requests", nil, userID, body)
}

func (h *Handler) GetRequest(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}
	requestID, ok := h.pathID(c, "requestId")
	if !ok {
		return
	}
	h.forward(c, http.MethodGet, fmt.Sprintf("/requests/%d", requestID), nil, userID, nil)
}

func (h *Handler) ListOwnRequests(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}
	h.forward(c, http.MethodGet, "/requests", nil, userID, nil)
}

func (h *Handler) ListAllRequests(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	from, errFrom := strconv.Atoi(c.DefaultQuery("from", "0"))
	size, errSize := strconv.Atoi(c.DefaultQuery("size", "10"))
	if errFrom != nil || errSize != nil || from < 0 || size < 1 {
		response.Error(c, errBadPagination)
		return
	}

	query := url.Values{
		"from": {strconv.Itoa(from)},
		"size": {strconv.Itoa(size)},
	}
	h.forward(c, http.MethodGet, "/requests/all", query, userID, nil)
}
