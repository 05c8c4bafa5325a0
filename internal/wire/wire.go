package wire

import (
	"net/http"

	"github.com/Surendar2005/BookMyShow/internal/adaptor"
	"github.com/Surendar2005/BookMyShow/internal/data/catalog"
	"github.com/Surendar2005/BookMyShow/internal/data/repository"
	"github.com/Surendar2005/BookMyShow/internal/usecase"
	"github.com/Surendar2005/BookMyShow/pkg/middleware"
	"github.com/Surendar2005/BookMyShow/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the composed application
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, store *catalog.Store, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, store, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireBooking(r, handler.Booking)
	wireMovie(r, handler.Movie)

	// Liveness endpoints
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("BookMyShow backend is running"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
