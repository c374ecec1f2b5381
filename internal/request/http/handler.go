package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/pkg/apperror"
	"shareit/internal/pkg/identity"
	"shareit/internal/pkg/response"
	"shareit/internal/request"
)

var errBadRequestID = apperror.New(http.StatusBadRequest, "requestId must be a positive integer")

type Handler struct {
	service request.Service
}

func NewHandler(service request.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	userID, err := identity.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var body CreateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	req, err := h.service.Create(c.Request.Context(), userID, body.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewRequestResponse(req))
}

func (h *Handler) Get(c *gin.Context) {
	userID, err := identity.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	requestID, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil || requestID <= 0 {
		response.Error(c, errBadRequestID)
		return
	}

	details, err := h.service.GetByID(c.Request.Context(), requestID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRequestDetailsResponse(details))
}

func (h *Handler) ListOwn(c *gin.Context) {
	userID, err := identity.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	details, err := h.service.ListOwn(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]RequestDetailsResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, NewRequestDetailsResponse(d))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListAll(c *gin.Context) {
	userID, err := identity.UserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	from, _ := strconv.Atoi(c.DefaultQuery("from", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	requests, err := h.service.ListAll(c.Request.Context(), userID, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]RequestResponse, 0, len(requests))
	for _, req := range requests {
		resp = append(resp, NewRequestResponse(req))
	}
	c.JSON(http.StatusOK, resp)
}
