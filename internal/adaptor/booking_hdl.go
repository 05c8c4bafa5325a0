package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Surendar2005/BookMyShow/internal/dto/request"
	"github.com/Surendar2005/BookMyShow/internal/dto/response"
	"github.com/Surendar2005/BookMyShow/internal/usecase"
	"github.com/Surendar2005/BookMyShow/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
	debug   bool
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger, debug bool) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
		debug:   debug,
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		var vErr *usecase.ValidationError
		if errors.As(err, &vErr) {
			utils.ResponseBadRequest(w, vErr.Error())
			return
		}

		h.log.Error("Failed to create booking", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to create booking", err, h.debug)
		return
	}

	utils.ResponseCreated(w, response.CreateBookingResponse{
		Message: "Booking created successfully",
		Booking: *booking,
	})
}

// ListBookings handles GET /api/bookings
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListBookings(r.Context())
	if err != nil {
		h.log.Error("Failed to fetch bookings", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to fetch bookings", err, h.debug)
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// GetTicket handles GET /api/bookings/{id}/ticket and serves the booking
// confirmation as a PNG QR code
func (h *BookingHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	png, err := h.service.TicketQR(r.Context(), bookingID)
	if err != nil {
		var vErr *usecase.ValidationError
		switch {
		case errors.As(err, &vErr):
			utils.ResponseBadRequest(w, vErr.Error())
		case errors.Is(err, usecase.ErrNotFound):
			utils.ResponseNotFound(w, "Booking not found")
		default:
			h.log.Error("Failed to render ticket", zap.Error(err), zap.String("booking_id", bookingID))
			utils.ResponseInternalError(w, "Failed to render ticket", err, h.debug)
		}
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
