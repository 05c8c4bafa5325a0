package adaptor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Surendar2005/BookMyShow/internal/data/catalog"
	"github.com/Surendar2005/BookMyShow/internal/dto/response"
	"github.com/Surendar2005/BookMyShow/internal/usecase"
	"github.com/Surendar2005/BookMyShow/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// The movie endpoints read a static catalog, so they are tested end to end
// against the real service rather than a mock.
func setupMovieRouter(t *testing.T) *chi.Mux {
	t.Helper()

	service := usecase.NewMovieService(catalog.NewStore(), zap.NewNop())
	handler := NewMovieHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/movies", handler.GetMovies)
	r.Get("/api/movies/{id}", handler.GetMovieByID)
	return r
}

func TestMovieHandler_GetMovies(t *testing.T) {
	router := setupMovieRouter(t)

	t.Run("lists the full catalog", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var movies []response.MovieResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&movies))
		require.NotEmpty(t, movies)
		assert.NotEmpty(t, movies[0].Title)
		assert.NotEmpty(t, movies[0].Showtimes)
	})

	t.Run("filters with the search parameter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/movies?search=jawan", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var movies []response.MovieResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&movies))
		require.Len(t, movies, 1)
		assert.Equal(t, "Jawan", movies[0].Title)
	})
}

func TestMovieHandler_GetMovieByID(t *testing.T) {
	router := setupMovieRouter(t)

	t.Run("returns the detail view", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/movies/1", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var movie response.MovieDetailResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&movie))
		assert.Equal(t, 1, movie.ID)
		assert.NotEmpty(t, movie.ShowtimePreview)
	})

	t.Run("unknown movie returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/movies/999", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var apiErr utils.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
		assert.Equal(t, "Movie not found", apiErr.Message)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/movies/abc", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
