package item

import (
	"context"
	"strings"
	"time"

	"shareit/internal/user"
)

// CreateRequest carries a new item's fields.
type CreateRequest struct {
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// UpdateRequest carries a partial item update. Nil fields are left
// unchanged.
type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

// Service defines business logic related to items and their comments.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Item, error)
	Update(ctx context.Context, itemID, ownerID int64, req UpdateRequest) (*Item, error)
	GetByID(ctx context.Context, id int64) (*Item, error)
	GetDetails(ctx context.Context, itemID, viewerID int64) (*Details, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*Item, error)
	Search(ctx context.Context, text string) ([]*Item, error)
	AddComment(ctx context.Context, itemID, authorID int64, text string) (*Comment, error)
}

type service struct {
	repo     Repository
	comments CommentRepository
	users    user.Service
	requests Requests
	bookings Bookings
}

// NewService creates a new item Service.
func NewService(repo Repository, comments CommentRepository, users user.Service, requests Requests, bookings Bookings) Service {
	return &service{
		repo:     repo,
		comments: comments,
		users:    users,
		requests: requests,
		bookings: bookings,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Item, error) {
	if _, err := s.users.GetByID(ctx, req.OwnerID); err != nil {
		return nil, err
	}

	if req.RequestID != nil {
		ok, err := s.requests.Exists(ctx, *req.RequestID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrRequestNotFound
		}
	}

	it := &Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		OwnerID:     req.OwnerID,
		RequestID:   req.RequestID,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Update(ctx context.Context, itemID, ownerID int64, req UpdateRequest) (*Item, error) {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Description != nil {
		it.Description = *req.Description
	}
	if req.Available != nil {
		it.Available = *req.Available
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetDetails(ctx context.Context, itemID, viewerID int64) (*Details, error) {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	details := &Details{
		Item:     *it,
		Comments: comments,
	}

	// The adjacent bookings are owner-only information.
	if it.OwnerID == viewerID {
		now := time.Now()
		if details.LastBooking, err = s.bookings.LastForItem(ctx, itemID, now); err != nil {
			return nil, err
		}
		if details.NextBooking, err = s.bookings.NextForItem(ctx, itemID, now); err != nil {
			return nil, err
		}
	}

	return details, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64) ([]*Item, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *service) Search(ctx context.Context, text string) ([]*Item, error) {
	// Blank search means an empty result, not "everything".
	if strings.TrimSpace(text) == "" {
		return []*Item{}, nil
	}
	return s.repo.Search(ctx, text)
}

func (s *service) AddComment(ctx context.Context, itemID, authorID int64, text string) (*Comment, error) {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	rented, err := s.bookings.HasApprovedRental(ctx, it.ID, author.ID)
	if err != nil {
		return nil, err
	}
	if !rented {
		return nil, ErrNeverRented
	}

	finished, err := s.bookings.HasFinishedRental(ctx, it.ID, author.ID, now)
	if err != nil {
		return nil, err
	}
	if !finished {
		return nil, ErrRentalNotFinished
	}

	cm := &Comment{
		Text:       text,
		ItemID:     it.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Created:    now,
	}
	if err := s.comments.Create(ctx, cm); err != nil {
		return nil, err
	}
	return cm, nil
}
