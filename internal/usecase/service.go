package usecase

import (
	"github.com/Surendar2005/BookMyShow/internal/data/catalog"
	"github.com/Surendar2005/BookMyShow/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Movie   MovieService
}

func NewService(repo *repository.Repository, store *catalog.Store, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo.Booking, log),
		Movie:   NewMovieService(store, log),
	}
}
