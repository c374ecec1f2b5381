package booking

import (
	"context"
	"time"

	"shareit/internal/item"
	"shareit/internal/user"
)

// CreateRequest carries a new booking's fields.
type CreateRequest struct {
	ItemID   int64
	BookerID int64
	Start    time.Time
	End      time.Time
}

// Service is the booking lifecycle manager: creation with availability and
// ownership checks, the one-shot status decision, and the state-windowed
// queries.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)

	// Update decides a WAITING booking. Only the item owner may call it,
	// and only once per booking.
	Update(ctx context.Context, bookingID int64, approved bool, actorID int64) (*Booking, error)

	// GetByID returns the booking to its booker or the item owner only.
	GetByID(ctx context.Context, bookingID, actorID int64) (*Booking, error)

	ListForBooker(ctx context.Context, userID int64, state State) ([]*Booking, error)
	ListForOwner(ctx context.Context, userID int64, state State) ([]*Booking, error)
}

type service struct {
	repo  Repository
	items item.Service
	users user.Service
}

// NewService creates a new booking Service.
func NewService(repo Repository, items item.Service, users user.Service) Service {
	return &service{
		repo:  repo,
		items: items,
		users: users,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	it, err := s.items.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !it.Available {
		return nil, ErrItemUnavailable
	}

	booker, err := s.users.GetByID(ctx, req.BookerID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID == booker.ID {
		return nil, ErrOwnItem
	}

	// No overlap check against existing bookings of the item: concurrent
	// date ranges are allowed, matching observed product behavior.
	b := &Booking{
		Start:       req.Start,
		End:         req.End,
		Status:      StatusWaiting,
		ItemID:      it.ID,
		ItemName:    it.Name,
		ItemOwnerID: it.OwnerID,
		BookerID:    booker.ID,
		BookerName:  booker.Name,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, bookingID int64, approved bool, actorID int64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.ItemOwnerID != actorID {
		return nil, ErrNotItemOwner
	}
	if b.Status != StatusWaiting {
		return nil, ErrAlreadyProcessed
	}

	status := StatusRejected
	if approved {
		status = StatusApproved
	}

	// The conditional update re-checks WAITING, so two racing decisions
	// cannot both take effect.
	if err := s.repo.UpdateStatus(ctx, b.ID, status); err != nil {
		return nil, err
	}
	b.Status = status
	return b, nil
}

func (s *service) GetByID(ctx context.Context, bookingID, actorID int64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.BookerID != actorID && b.ItemOwnerID != actorID {
		return nil, ErrAccessDenied
	}
	return b, nil
}

func (s *service) ListForBooker(ctx context.Context, userID int64, state State) ([]*Booking, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListForBooker(ctx, userID, state, time.Now())
}

func (s *service) ListForOwner(ctx context.Context, userID int64, state State) ([]*Booking, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListForOwner(ctx, userID, state, time.Now())
}
