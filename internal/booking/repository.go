package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shareit/internal/item"
)

// Repository defines storage access for bookings. It also serves the item
// module's view of bookings (comment eligibility, adjacent bookings).
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)

	// UpdateStatus performs the one-shot WAITING -> terminal transition.
	// It returns ErrAlreadyProcessed when the booking is no longer
	// WAITING, so a lost race surfaces the same way as a late call.
	UpdateStatus(ctx context.Context, id int64, status Status) error

	ListForBooker(ctx context.Context, bookerID int64, state State, now time.Time) ([]*Booking, error)
	ListForOwner(ctx context.Context, ownerID int64, state State, now time.Time) ([]*Booking, error)

	item.Bookings
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a Repository backed by pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	const query = `
		INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	if err := r.pool.QueryRow(ctx, query,
		b.Start, b.End, b.ItemID, b.BookerID, b.Status,
	).Scan(&b.ID); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	const query = `
		SELECT b.id, b.start_date, b.end_date, b.status,
		       b.item_id, i.name, i.owner_id,
		       b.booker_id, u.name
		FROM bookings b
		JOIN items i ON b.item_id = i.id
		JOIN users u ON b.booker_id = u.id
		WHERE b.id = $1
	`

	var b Booking
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Start, &b.End, &b.Status,
		&b.ItemID, &b.ItemName, &b.ItemOwnerID,
		&b.BookerID, &b.BookerName,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	const query = `
		UPDATE bookings
		SET status = $1
		WHERE id = $2 AND status = 'WAITING'
	`

	ct, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrAlreadyProcessed
	}
	return nil
}

func (r *pgxRepository) ListForBooker(ctx context.Context, bookerID int64, state State, now time.Time) ([]*Booking, error) {
	query := listQuery().Where(squirrel.Eq{"b.booker_id": bookerID})
	return r.list(ctx, applyState(query, state, now))
}

func (r *pgxRepository) ListForOwner(ctx context.Context, ownerID int64, state State, now time.Time) ([]*Booking, error) {
	query := listQuery().Where(squirrel.Eq{"i.owner_id": ownerID})
	return r.list(ctx, applyState(query, state, now))
}

func listQuery() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"b.id", "b.start_date", "b.end_date", "b.status",
		"b.item_id", "i.name", "i.owner_id",
		"b.booker_id", "u.name",
	).
		From("bookings b").
		Join("items i ON b.item_id = i.id").
		Join("users u ON b.booker_id = u.id").
		OrderBy("b.start_date DESC")
}

// applyState translates the query-time partition into WHERE clauses.
// CURRENT, PAST and FUTURE split the timeline against "now"; WAITING and
// REJECTED filter by status regardless of dates.
func applyState(query squirrel.SelectBuilder, state State, now time.Time) squirrel.SelectBuilder {
	switch state {
	case StateCurrent:
		return query.
			Where(squirrel.LtOrEq{"b.start_date": now}).
			Where(squirrel.GtOrEq{"b.end_date": now})
	case StatePast:
		return query.Where(squirrel.Lt{"b.end_date": now})
	case StateFuture:
		return query.Where(squirrel.Gt{"b.start_date": now})
	case StateWaiting:
		return query.Where(squirrel.Eq{"b.status": StatusWaiting})
	case StateRejected:
		return query.Where(squirrel.Eq{"b.status": StatusRejected})
	default:
		return query
	}
}

func (r *pgxRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*Booking, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.Start, &b.End, &b.Status,
			&b.ItemID, &b.ItemName, &b.ItemOwnerID,
			&b.BookerID, &b.BookerName,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, rows.Err()
}

func (r *pgxRepository) HasApprovedRental(ctx context.Context, itemID, userID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE item_id = $1 AND booker_id = $2 AND status = 'APPROVED'
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, itemID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check approved rental failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) HasFinishedRental(ctx context.Context, itemID, userID int64, before time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE item_id = $1 AND booker_id = $2 AND status = 'APPROVED' AND end_date < $3
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, itemID, userID, before).Scan(&exists); err != nil {
		return false, fmt.Errorf("check finished rental failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) LastForItem(ctx context.Context, itemID int64, now time.Time) (*item.BookingRef, error) {
	const query = `
		SELECT id, booker_id FROM bookings
		WHERE item_id = $1 AND start_date <= $2 AND status <> 'REJECTED'
		ORDER BY start_date DESC
		LIMIT 1
	`
	return r.bookingRef(ctx, query, itemID, now)
}

func (r *pgxRepository) NextForItem(ctx context.Context, itemID int64, now time.Time) (*item.BookingRef, error) {
	const query = `
		SELECT id, booker_id FROM bookings
		WHERE item_id = $1 AND start_date > $2 AND status <> 'REJECTED'
		ORDER BY start_date ASC
		LIMIT 1
	`
	return r.bookingRef(ctx, query, itemID, now)
}

func (r *pgxRepository) bookingRef(ctx context.Context, query string, itemID int64, now time.Time) (*item.BookingRef, error) {
	var ref item.BookingRef
	if err := r.pool.QueryRow(ctx, query, itemID, now).Scan(&ref.ID, &ref.BookerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get adjacent booking failed: %w", err)
	}
	return &ref, nil
}
