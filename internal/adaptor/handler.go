package adaptor

import (
	"github.com/Surendar2005/BookMyShow/internal/usecase"
	"github.com/Surendar2005/BookMyShow/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking *BookingHandler
	Movie   *MovieHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Booking: NewBookingHandler(service.Booking, log, config.App.Debug),
		Movie:   NewMovieHandler(service.Movie, log),
	}
}
