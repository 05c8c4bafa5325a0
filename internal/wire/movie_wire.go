package wire

import (
	"github.com/Surendar2005/BookMyShow/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /api/movies - Catalog listing with optional ?search= filter
	r.Get("/api/movies", movieHandler.GetMovies)

	// GET /api/movies/{id} - Movie details
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)
}
