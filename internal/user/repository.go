package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing profile data from storage.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	GetByID(ctx context.Context, id string) (*Profile, error)
	Create(ctx context.Context, p *Profile) error
	List(ctx context.Context, filter Filter) ([]*Profile, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a Repository implementation backed by pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByEmail(ctx context.Context, email string) (*Profile, error) {
	const query = `
		SELECT id, email, password_hash, full_name, phone, role, created_at
		FROM public.profiles
		WHERE email = $1
	`

	row := r.pool.QueryRow(ctx, query, email)

	var p Profile
	if err := row.Scan(&p.ID, &p.Email, &p.PasswordHash, &p.FullName, &p.Phone, &p.Role, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile by email failed: %w", err)
	}

	return &p, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Profile, error) {
	const query = `
		SELECT id, email, password_hash, full_name, phone, role, created_at
		FROM public.profiles
		WHERE id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)

	var p Profile
	if err := row.Scan(&p.ID, &p.Email, &p.PasswordHash, &p.FullName, &p.Phone, &p.Role, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile by id failed: %w", err)
	}

	return &p, nil
}

func (r *pgxRepository) Create(ctx context.Context, p *Profile) error {
	const query = `
		INSERT INTO public.profiles (email, password_hash, full_name, phone, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	if err := r.pool.QueryRow(
		ctx,
		query,
		p.Email,
		p.PasswordHash,
		p.FullName,
		p.Phone,
		p.Role,
	).Scan(&p.ID, &p.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrEmailAlreadyUsed
		}
		return fmt.Errorf("create profile failed: %w", err)
	}

	return nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Profile, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "email", "password_hash", "full_name", "phone", "role", "created_at",
		"count(*) OVER() AS total_count",
	).From("public.profiles")

	if filter.Email != "" {
		query = query.Where(squirrel.ILike{"email": "%" + filter.Email + "%"})
	}
	if filter.Role != "" {
		query = query.Where(squirrel.Eq{"role": filter.Role})
	}

	// Newest profiles first, matching the admin dashboard view.
	query = query.OrderBy("created_at DESC")

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
		return nil, 0, fmt.Errorf("build list profiles query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list profiles failed: %w", err)
	}
	defer rows.Close()

	var profiles []*Profile
	var total int

	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.PasswordHash, &p.FullName, &p.Phone, &p.Role, &p.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan profile failed: %w", err)
		}
		profiles = append(profiles, &p)
	}

	return profiles, total, nil
}
