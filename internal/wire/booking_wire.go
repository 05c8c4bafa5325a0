package wire

import (
	"github.com/Surendar2005/BookMyShow/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/bookings - Submit a booking
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// GET /api/bookings - List all bookings, newest first. No auth; this is
	// a demo service without accounts.
	r.Get("/api/bookings", bookingHandler.ListBookings)

	// GET /api/bookings/{id}/ticket - Booking confirmation as a QR code PNG
	r.Get("/api/bookings/{id}/ticket", bookingHandler.GetTicket)
}
