package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines storage access for items.
type Repository interface {
	Create(ctx context.Context, it *Item) error
	GetByID(ctx context.Context, id int64) (*Item, error)
	Update(ctx context.Context, it *Item) error
	ListByOwner(ctx context.Context, ownerID int64) ([]*Item, error)
	ListByRequest(ctx context.Context, requestID int64) ([]*Item, error)
	Search(ctx context.Context, text string) ([]*Item, error)
}

// CommentRepository defines storage access for item comments.
type CommentRepository interface {
	Create(ctx context.Context, cm *Comment) error
	ListByItem(ctx context.Context, itemID int64) ([]*Comment, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a Repository backed by pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, it *Item) error {
	const query = `
		INSERT INTO items (name, description, available, owner_id, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	if err := r.pool.QueryRow(ctx, query,
		it.Name, it.Description, it.Available, it.OwnerID, it.RequestID,
	).Scan(&it.ID); err != nil {
		return fmt.Errorf("create item failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Item, error) {
	const query = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE id = $1
	`

	var it Item
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item failed: %w", err)
	}
	return &it, nil
}

func (r *pgxRepository) Update(ctx context.Context, it *Item) error {
	const query = `
		UPDATE items
		SET name = $1, description = $2, available = $3
		WHERE id = $4
	`

	ct, err := r.pool.Exec(ctx, query, it.Name, it.Description, it.Available, it.ID)
	if err != nil {
		return fmt.Errorf("update item failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*Item, error) {
	const query = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE owner_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list items by owner failed: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *pgxRepository) ListByRequest(ctx context.Context, requestID int64) ([]*Item, error) {
	const query = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE request_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("list items by request failed: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *pgxRepository) Search(ctx context.Context, text string) ([]*Item, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	pattern := "%" + text + "%"

	query, args, err := psql.Select("id", "name", "description", "available", "owner_id", "request_id").
		From("items").
		Where(squirrel.Eq{"available": true}).
		Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search items failed: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func scanItems(rows pgx.Rows) ([]*Item, error) {
	var items []*Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID,
		); err != nil {
			return nil, fmt.Errorf("scan item failed: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

type pgxCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCommentRepository creates a CommentRepository backed by pgxpool.
func NewPgxCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &pgxCommentRepository{pool: pool}
}

func (r *pgxCommentRepository) Create(ctx context.Context, cm *Comment) error {
	const query = `
		INSERT INTO comments (text, item_id, author_id, created)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := r.pool.QueryRow(ctx, query,
		cm.Text, cm.ItemID, cm.AuthorID, cm.Created,
	).Scan(&cm.ID); err != nil {
		return fmt.Errorf("create comment failed: %w", err)
	}
	return nil
}

func (r *pgxCommentRepository) ListByItem(ctx context.Context, itemID int64) ([]*Comment, error) {
	const query = `
		SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created
		FROM comments c
		JOIN users u ON c.author_id = u.id
		WHERE c.item_id = $1
		ORDER BY c.created DESC
	`

	rows, err := r.pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list comments failed: %w", err)
	}
	defer rows.Close()

	var comments []*Comment
	for rows.Next() {
		var cm Comment
		if err := rows.Scan(
			&cm.ID, &cm.Text, &cm.ItemID, &cm.AuthorID, &cm.AuthorName, &cm.Created,
		); err != nil {
			return nil, fmt.Errorf("scan comment failed: %w", err)
		}
		comments = append(comments, &cm)
	}
	return comments, rows.Err()
}
