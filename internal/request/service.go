package request

import (
	"context"
	"time"

	"shareit/internal/item"
	"shareit/internal/user"
)

// Service defines business logic related to item requests.
type Service interface {
	Create(ctx context.Context, userID int64, description string) (*Request, error)
	GetByID(ctx context.Context, requestID, userID int64) (*Details, error)
	ListOwn(ctx context.Context, userID int64) ([]*Details, error)
	ListAll(ctx context.Context, userID int64, from, size int) ([]*Request, error)
}

type service struct {
	repo  Repository
	users user.Service
	items item.Repository
}

// NewService creates a new request Service.
func NewService(repo Repository, users user.Service, items item.Repository) Service {
	return &service{
		repo:  repo,
		users: users,
		items: items,
	}
}

func (s *service) Create(ctx context.Context, userID int64, description string) (*Request, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	req := &Request{
		Description: description,
		RequestorID: userID,
		Created:     time.Now(),
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) GetByID(ctx context.Context, requestID, userID int64) (*Details, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	items, err := s.items.ListByRequest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &Details{Request: *req, Items: items}, nil
}

func (s *service) ListOwn(ctx context.Context, userID int64) ([]*Details, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListByRequestor(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := make([]*Details, 0, len(requests))
	for _, req := range requests {
		items, err := s.items.ListByRequest(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, &Details{Request: *req, Items: items})
	}
	return details, nil
}

func (s *service) ListAll(ctx context.Context, userID int64, from, size int) ([]*Request, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if from < 0 {
		from = 0
	}
	if size < 1 {
		size = 10
	}
	return s.repo.ListOthers(ctx, userID, from, size)
}
