package gateway

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateItem(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}
	var body CreateItemBody
	if !h.bindJSON(c, &body) {
		return
	}
	h.forward(c, http.MethodPost, "/items", nil, userID, body)
}

func (h *Handler) UpdateItem(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}
	itemID, ok := h.pathID(c, "itemId")
	if !ok {
		return
	}
	var body UpdateItemBody
	if !h.bindJSON(c, &body) {
		return
	}
	h.forward(c, http.MethodPatch, fmt.Sprintf("/items/%d", itemID), nil, userID, body)
}

func (h *Handler) GetItem(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}
	itemID, ok := h.pathID(c, "itemId")
	if !ok {
		return
	}
	h.forward(c, http.MethodGet, fmt.Sprintf("/items/%d", itemID), nil, userID, nil)
}

func (h *Handler) ListOwnItems(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}
	h.forward(c, http.MethodGet, "/items", nil, userID, nil)
}

func (h *Handler) SearchItems(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}
	query := url.Values{"text": {c.Query("text")}}
	h.forward(c, http.MethodGet, "/items/search", query, userID, nil)
}

func (h *Handler) AddComment(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}
	itemID, ok := h.pathID(c, "itemId")
	if !ok {
		return
	}
	var body CreateCommentBody
	if !h.bindJSON(c, &body) {
		return
	}
	h.forward(c, http.MethodPost, fmt.Sprintf("/items/%d/comment", itemID), nil, userID, body)
}
