package booking

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

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	GetByReference(ctx context.Context, reference string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Stats(ctx context.Context) (*Stats, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = `
	b.id, b.user_id, b.room_id, r.name, r.type,
	b.guest_name, b.guest_email, b.guest_phone,
	b.check_in, b.check_out, b.guests, b.total_cost,
	b.status, b.special_requests, b.booking_reference, b.payment_method, b.created_at
`

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.UserID, &b.RoomID, &b.RoomName, &b.RoomType,
		&b.GuestName, &b.GuestEmail, &b.GuestPhone,
		&b.CheckIn, &b.CheckOut, &b.Guests, &b.TotalCost,
		&b.Status, &b.SpecialRequests, &b.Reference, &b.PaymentMethod, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns(
			"user_id", "room_id", "guest_name", "guest_email", "guest_phone",
			"check_in", "check_out", "guests", "total_cost",
			"status", "special_requests", "booking_reference", "payment_method",
		).
		Values(
			b.UserID, b.RoomID, b.GuestName, b.GuestEmail, b.GuestPhone,
			b.CheckIn, b.CheckOut, b.Guests, b.TotalCost,
			b.Status, b.SpecialRequests, b.Reference, b.PaymentMethod,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrReferenceTaken
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM public.bookings b
		JOIN public.rooms r ON b.room_id = r.id
		WHERE b.id = $1
	`

	b, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) GetByReference(ctx context.Context, reference string) (*Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM public.bookings b
		JOIN public.rooms r ON b.room_id = r.id
		WHERE b.booking_reference = $1
	`

	b, err := scanBooking(r.pool.QueryRow(ctx, query, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking by reference failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.user_id", "b.room_id", "r.name", "r.type",
		"b.guest_name", "b.guest_email", "b.guest_phone",
		"b.check_in", "b.check_out", "b.guests", "b.total_cost",
		"b.status", "b.special_requests", "b.booking_reference", "b.payment_method", "b.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.bookings b").
		Join("public.rooms r ON b.room_id = r.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.RoomID != "" {
		query = query.Where(squirrel.Eq{"b.room_id": filter.RoomID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}

	// Booking history and the admin dashboard show newest first.
	query = query.OrderBy("b.created_at DESC")

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
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.RoomID, &b.RoomName, &b.RoomType,
			&b.GuestName, &b.GuestEmail, &b.GuestPhone,
			&b.CheckIn, &b.CheckOut, &b.Guests, &b.TotalCost,
			&b.Status, &b.SpecialRequests, &b.Reference, &b.PaymentMethod, &b.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Stats(ctx context.Context) (*Stats, error) {
	const query = `
		SELECT
			count(*),
			count(*) FILTER (WHERE status = 'pending'),
			count(*) FILTER (WHERE status = 'confirmed'),
			count(*) FILTER (WHERE status = 'cancelled'),
			COALESCE(sum(total_cost) FILTER (WHERE status = 'confirmed'), 0)
		FROM public.bookings
	`

	var s Stats
	if err := r.pool.QueryRow(ctx, query).Scan(
		&s.TotalBookings,
		&s.PendingBookings,
		&s.ConfirmedBookings,
		&s.CancelledBookings,
		&s.Revenue,
	); err != nil {
		return nil, fmt.Errorf("booking stats failed: %w", err)
	}
	return &s, nil
}
