package room

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, rm *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, rm *Room) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, rm *Room) error {
	const query = `
		INSERT INTO public.rooms (name, type, price, capacity, description, amenities, image_url, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(
		ctx,
		query,
		rm.Name,
		rm.Type,
		rm.Price,
		rm.Capacity,
		rm.Description,
		rm.Amenities,
		rm.ImageURL,
		rm.Available,
	).Scan(&rm.ID, &rm.CreatedAt)
	if err != nil {
		return fmt.Errorf("create room failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	const query = `
		SELECT id, name, type, price, capacity, description, amenities, image_url, photo_path, available, created_at
		FROM public.rooms
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var rm Room
	if err := row.Scan(
		&rm.ID, &rm.Name, &rm.Type, &rm.Price, &rm.Capacity,
		&rm.Description, &rm.Amenities, &rm.ImageURL, &rm.PhotoPath, &rm.Available, &rm.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}
	return &rm, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "name", "type", "price", "capacity", "description",
		"amenities", "image_url", "photo_path", "available", "created_at",
		"count(*) OVER() as total_count",
	).From("public.rooms")

	if filter.Available != nil {
		query = query.Where(squirrel.Eq{"available": *filter.Available})
	}
	if filter.Type != "" {
		query = query.Where(squirrel.Eq{"type": filter.Type})
	}

	// Catalog and booking screens show cheapest rooms first.
	query = query.OrderBy("price ASC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	var total int

	for rows.Next() {
		var rm Room
		if err := rows.Scan(
			&rm.ID, &rm.Name, &rm.Type, &rm.Price, &rm.Capacity,
			&rm.Description, &rm.Amenities, &rm.ImageURL, &rm.PhotoPath, &rm.Available, &rm.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan room failed: %w", err)
		}
		rooms = append(rooms, &rm)
	}

	return rooms, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, rm *Room) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.rooms").
		Set("name", rm.Name).
		Set("type", rm.Type).
		Set("price", rm.Price).
		Set("capacity", rm.Capacity).
		Set("description", rm.Description).
		Set("amenities", rm.Amenities).
		Set("image_url", rm.ImageURL).
		Set("photo_path", rm.PhotoPath).
		Set("available", rm.Available).
		Where(squirrel.Eq{"id": rm.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update room query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
