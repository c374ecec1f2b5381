package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/item"
	"shareit/internal/pkg/apperror"
	"shareit/internal/pkg/identity"
	"shareit/internal/pkg/response"
)

var errBadItemID = apperror.New(http.StatusBadRequest, "itemId must be a positive integer")

type Handler struct {
	service item.Service
}

func NewHandler(service item.Service) *Handler {
	return &Handler{service: service}
}

func pathItemID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadItemID
	}
	return id, nil
}

func (h *Handler) Create(c *gin.Context) {
	ownerID, err := identity.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var body CreateItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	available := false
	if body.Available != nil {
		available = *body.Available
	}

	it, err := h.service.Create(c.Request.Context(), item.CreateRequest{
		OwnerID:     ownerID,
		Name:        body.Name,
		Description: body.Description,
		Available:   available,
		RequestID:   body.RequestID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewItemResponse(it))
}

func (h *Handler) Update(c *gin.Context) {
	ownerID, err := identity.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	itemID, err := pathItemID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var body UpdateItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	it, err := h.service.Update(c.Request.Context(), itemID, ownerID, item.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
		Available:   body.Available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemResponse(it))
}

func (h *Handler) Get(c *gin.Context) {
	viewerID, err := identity.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	itemID, err := pathItemID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	details, err := h.service.GetDetails(c.Request.Context(), itemID, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemDetailsResponse(details))
}

func (h *Handler) ListOwn(c *gin.Context) {
	ownerID, err := identity.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.service.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, NewItemResponse(it))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Search(c *gin.Context) {
	if _, err := identity.UserID(c); err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.service.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, NewItemResponse(it))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddComment(c *gin.Context) {
	authorID, err := identity.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	itemID, err := pathItemID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var body CreateCommentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	cm, err := h.service.AddComment(c.Request.Context(), itemID, authorID, body.Text)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCommentResponse(cm))
}
