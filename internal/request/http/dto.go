package http

import (
	itemHttp "shareit/internal/item/http"
	"shareit/internal/pkg/datetime"
	"shareit/internal/request"
)

// RequestResponse is the wire shape for an item request.
type RequestResponse struct {
	ID          int64                  `json:"id"`
	Description string                 `json:"description"`
	Created     datetime.LocalDateTime `json:"created"`
}

func NewRequestResponse(req *request.Request) RequestResponse {
	return RequestResponse{
		ID:          req.ID,
		Description: req.Description,
		Created:     datetime.New(req.Created),
	}
}

// RequestDetailsResponse adds the items created to answer the request.
type RequestDetailsResponse struct {
	RequestResponse
	Items []itemHttp.ItemResponse `json:"items"`
}

func NewRequestDetailsResponse(d *request.Details) RequestDetailsResponse {
	resp := RequestDetailsResponse{
		RequestResponse: NewRequestResponse(&d.Request),
		Items:           make([]itemHttp.ItemResponse, 0, len(d.Items)),
	}
	for _, it := range d.Items {
		resp.Items = append(resp.Items, itemHttp.NewItemResponse(it))
	}
	return resp
}

// CreateRequestBody is the POST /requests payload.
type CreateRequestBody struct {
	Description string `json:"description"`
}
