package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Surendar2005/BookMyShow/internal/data/entity"
	"github.com/Surendar2005/BookMyShow/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	Count(ctx context.Context) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, movie_id, movie_title, showtime, seats, total,
		                      user_name, user_email, user_phone,
		                      payment_method, payment_details, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	paymentDetails, err := json.Marshal(booking.PaymentDetails)
	if err != nil {
		return fmt.Errorf("marshal payment details: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		booking.ID,
		booking.MovieID,
		booking.MovieTitle,
		booking.Showtime,
		booking.Seats,
		booking.Total,
		booking.User.Name,
		booking.User.Email,
		booking.User.Phone,
		booking.PaymentMethod,
		paymentDetails,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("movie_title", booking.MovieTitle),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, movie_id, movie_title, showtime, seats, total,
		       user_name, user_email, user_phone,
		       payment_method, payment_details, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT id, movie_id, movie_title, showtime, seats, total,
		       user_name, user_email, user_phone,
		       payment_method, payment_details, status, created_at, updated_at
		FROM bookings
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

// scanBooking reads one booking row, decoding the redacted payment details
// out of the JSONB column
func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	var paymentDetails []byte

	err := row.Scan(
		&booking.ID,
		&booking.MovieID,
		&booking.MovieTitle,
		&booking.Showtime,
		&booking.Seats,
		&booking.Total,
		&booking.User.Name,
		&booking.User.Email,
		&booking.User.Phone,
		&booking.PaymentMethod,
		&paymentDetails,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(paymentDetails) > 0 {
		if err := json.Unmarshal(paymentDetails, &booking.PaymentDetails); err != nil {
			return nil, fmt.Errorf("unmarshal payment details: %w", err)
		}
	}

	return &booking, nil
}
