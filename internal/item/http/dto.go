package http

import (
	"shareit/internal/item"
	"shareit/internal/pkg/datetime"
)

// ItemResponse is the wire shape for an item.
type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

func NewItemResponse(it *item.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

// BookingRefResponse is the booking summary on the owner's item view.
type BookingRefResponse struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// CommentResponse is the wire shape for a comment.
type CommentResponse struct {
	ID         int64                  `json:"id"`
	Text       string                 `json:"text"`
	AuthorName string                 `json:"authorName"`
	Created    datetime.LocalDateTime `json:"created"`
}

func NewCommentResponse(cm *item.Comment) CommentResponse {
	return CommentResponse{
		ID:         cm.ID,
		Text:       cm.Text,
		AuthorName: cm.AuthorName,
		Created:    datetime.New(cm.Created),
	}
}

// ItemDetailsResponse is the GET /items/:itemId view.
type ItemDetailsResponse struct {
	ItemResponse
	Comments    []CommentResponse   `json:"comments"`
	LastBooking *BookingRefResponse `json:"lastBooking"`
	NextBooking *BookingRefResponse `json:"nextBooking"`
}

func NewItemDetailsResponse(d *item.Details) ItemDetailsResponse {
	resp := ItemDetailsResponse{
		ItemResponse: NewItemResponse(&d.Item),
		Comments:     make([]CommentResponse, 0, len(d.Comments)),
	}
	for _, cm := range d.Comments {
		resp.Comments = append(resp.Comments, NewCommentResponse(cm))
	}
	if d.LastBooking != nil {
		resp.LastBooking = &BookingRefResponse{ID: d.LastBooking.ID, BookerID: d.LastBooking.BookerID}
	}
	if d.NextBooking != nil {
		resp.NextBooking = &BookingRefResponse{ID: d.NextBooking.ID, BookerID: d.NextBooking.BookerID}
	}
	return resp
}

// CreateItemBody is the POST /items payload.
type CreateItemBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

// UpdateItemBody is the PATCH /items/:itemId payload.
type UpdateItemBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// CreateCommentBody is the POST /items/:itemId/comment payload.
type CreateCommentBody struct {
	Text string `json:"text"`
}
