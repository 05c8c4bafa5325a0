package response

import (
	"time"

	"github.com/Surendar2005/BookMyShow/internal/data/entity"
)

// BookingSummary is the confirmation payload returned on creation
type BookingSummary struct {
	ID            string               `json:"id"`
	MovieTitle    string               `json:"movieTitle"`
	Showtime      string               `json:"showtime"`
	Seats         []string             `json:"seats"`
	Total         float64              `json:"total"`
	BookingStatus entity.BookingStatus `json:"bookingStatus"`
	CreatedAt     time.Time            `json:"createdAt"`
}

type CreateBookingResponse struct {
	Message string         `json:"message"`
	Booking BookingSummary `json:"booking"`
}

// BookingRecord is the full stored shape served by the listing endpoint
type BookingRecord struct {
	ID             string                `json:"id"`
	MovieID        int                   `json:"movieId"`
	MovieTitle     string                `json:"movieTitle"`
	Showtime       string                `json:"showtime"`
	Seats          []string              `json:"seats"`
	Total          float64               `json:"total"`
	User           entity.ContactDetails `json:"user"`
	PaymentMethod  entity.PaymentMethod  `json:"paymentMethod"`
	PaymentDetails entity.PaymentSummary `json:"paymentDetails"`
	BookingStatus  entity.BookingStatus  `json:"bookingStatus"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// Helper converters
func BookingToSummary(booking *entity.Booking) BookingSummary {
	return BookingSummary{
		ID:            booking.ID.String(),
		MovieTitle:    booking.MovieTitle,
		Showtime:      booking.Showtime,
		Seats:         booking.Seats,
		Total:         booking.Total,
		BookingStatus: booking.Status,
		CreatedAt:     booking.CreatedAt,
	}
}

func BookingToRecord(booking *entity.Booking) BookingRecord {
	return BookingRecord{
		ID:             booking.ID.String(),
		MovieID:        booking.MovieID,
		MovieTitle:     booking.MovieTitle,
		Showtime:       booking.Showtime,
		Seats:          booking.Seats,
		Total:          booking.Total,
		User:           booking.User,
		PaymentMethod:  booking.PaymentMethod,
		PaymentDetails: booking.PaymentDetails,
		BookingStatus:  booking.Status,
		CreatedAt:      booking.CreatedAt,
		UpdatedAt:      booking.UpdatedAt,
	}
}
