package adaptor

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Surendar2005/BookMyShow/internal/usecase"
	"github.com/Surendar2005/BookMyShow/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies with an optional ?search= filter
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	movies, err := h.service.GetMovies(r.Context(), search)
	if err != nil {
		h.log.Error("Failed to list movies", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to list movies", err, false)
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie ID")
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			utils.ResponseNotFound(w, "Movie not found")
			return
		}

		h.log.Error("Failed to get movie", zap.Error(err), zap.Int("movie_id", id))
		utils.ResponseInternalError(w, "Failed to get movie", err, false)
		return
	}

	utils.ResponseSuccess(w, movie)
}
