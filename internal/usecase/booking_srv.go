package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Surendar2005/BookMyShow/internal/data/entity"
	"github.com/Surendar2005/BookMyShow/internal/data/repository"
	"github.com/Surendar2005/BookMyShow/internal/dto/request"
	"github.com/Surendar2005/BookMyShow/internal/dto/response"
	"github.com/Surendar2005/BookMyShow/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingSummary, error)
	ListBookings(ctx context.Context) ([]response.BookingRecord, error)
	TicketQR(ctx context.Context, bookingID string) ([]byte, error)
}

type bookingService struct {
	repo repository.BookingRepository
	log  *zap.Logger
}

func NewBookingService(repo repository.BookingRepository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingSummary, error) {
	if err := validateBooking(req); err != nil {
		s.log.Warn("Booking submission rejected", zap.String("reason", err.Error()))
		return nil, err
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID:        req.MovieID,
		MovieTitle:     req.MovieTitle,
		Showtime:       req.Showtime,
		Seats:          req.Seats,
		Total:          req.Total,
		User:           *req.User,
		PaymentMethod:  entity.PaymentMethod(req.PaymentMethod),
		PaymentDetails: redactPayment(entity.PaymentMethod(req.PaymentMethod), req.PaymentDetails),
		Status:         entity.BookingStatusConfirmed,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("movie_title", req.MovieTitle),
			zap.String("user_email", req.User.Email),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("movie_title", booking.MovieTitle),
		zap.String("showtime", booking.Showtime),
		zap.Int("seat_count", len(booking.Seats)),
		zap.Float64("total", booking.Total),
		zap.String("payment_method", string(booking.PaymentMethod)),
	)

	summary := response.BookingToSummary(booking)
	return &summary, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]response.BookingRecord, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	// An empty store lists as an empty array, never null
	records := make([]response.BookingRecord, 0, len(bookings))
	for _, booking := range bookings {
		records = append(records, response.BookingToRecord(booking))
	}

	s.log.Info("Bookings listed", zap.Int("count", len(records)))
	return records, nil
}

func (s *bookingService) TicketQR(ctx context.Context, bookingID string) ([]byte, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("Invalid booking ID %s", bookingID))
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load booking for ticket", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
	}

	content := fmt.Sprintf("BOOKING:%s|%s|%s|%s|%.2f",
		booking.ID.String(),
		booking.MovieTitle,
		booking.Showtime,
		strings.Join(booking.Seats, ","),
		booking.Total,
	)

	png, err := utils.GenerateQRCode(content, 256)
	if err != nil {
		s.log.Error("Failed to render ticket QR", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("render ticket QR for %s: %w", bookingID, err)
	}

	return png, nil
}

// validateBooking applies the submission checks in their contract order; the
// first failure wins and nothing is persisted.
func validateBooking(req *request.CreateBookingRequest) error {
	// A zero movieId is rejected together with a missing one, matching the
	// wire behavior bookers rely on (catalog identifiers start at 1).
	if req.MovieID == 0 || req.Showtime == "" || len(req.Seats) == 0 {
		return NewValidationError("Invalid booking data: missing required fields")
	}

	if req.User == nil || len(utils.ValidateStruct(req.User)) > 0 {
		return NewValidationError("Invalid booking data: user details required")
	}

	if req.PaymentMethod == "" {
		return NewValidationError("Invalid booking data: payment method required")
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return NewValidationError(fmt.Sprintf("Invalid booking data: %s", utils.FormatValidationErrors(errs)))
	}

	if req.MovieTitle == "" {
		return NewValidationError("Movie title is required")
	}

	return nil
}
