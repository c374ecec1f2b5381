package request

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines storage access for item requests.
type Repository interface {
	Create(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, id int64) (*Request, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ListByRequestor(ctx context.Context, requestorID int64) ([]*Request, error)

	// ListOthers returns requests from everyone except the given user,
	// newest first, with offset/limit pagination.
	ListOthers(ctx context.Context, requestorID int64, offset, limit int) ([]*Request, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a Repository backed by pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, req *Request) error {
	const query = `
		INSERT INTO requests (description, requestor_id, created)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := r.pool.QueryRow(ctx, query,
		req.Description, req.RequestorID, req.Created,
	).Scan(&req.ID); err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Request, error) {
	const query = `
		SELECT id, description, requestor_id, created
		FROM requests
		WHERE id = $1
	`

	var req Request
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.Description, &req.RequestorID, &req.Created,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get request failed: %w", err)
	}
	return &req, nil
}

func (r *pgxRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM requests WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check request failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) ListByRequestor(ctx context.Context, requestorID int64) ([]*Request, error) {
	const query = `
		SELECT id, description, requestor_id, created
		FROM requests
		WHERE requestor_id = $1
		ORDER BY created DESC
	`

	rows, err := r.pool.Query(ctx, query, requestorID)
	if err != nil {
		return nil, fmt.Errorf("list own requests failed: %w", err)
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *pgxRepository) ListOthers(ctx context.Context, requestorID int64, offset, limit int) ([]*Request, error) {
	const query = `
		SELECT id, description, requestor_id, created
		FROM requests
		WHERE requestor_id <> $1
		ORDER BY created DESC
		OFFSET $2 LIMIT $3
	`

	rows, err := r.pool.Query(ctx, query, requestorID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list other requests failed: %w", err)
	}
	defer rows.Close()
	return scanRequests(rows)
}

func scanRequests(rows pgx.Rows) ([]*Request, error) {
	var requests []*Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created); err != nil {
			return nil, fmt.Errorf("scan request failed: %w", err)
		}
		requests = append(requests, &req)
	}
	return requests, rows.Err()
}
