package usecase

import (
	"context"
	"fmt"

	"github.com/Surendar2005/BookMyShow/internal/data/catalog"
	"github.com/Surendar2005/BookMyShow/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, search string) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, id int) (*response.MovieDetailResponse, error)
}

type movieService struct {
	store *catalog.Store
	log   *zap.Logger
}

func NewMovieService(store *catalog.Store, log *zap.Logger) MovieService {
	return &movieService{
		store: store,
		log:   log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, search string) ([]response.MovieResponse, error) {
	movies := s.store.Search(search)

	results := make([]response.MovieResponse, 0, len(movies))
	for i := range movies {
		results = append(results, response.MovieToResponse(&movies[i]))
	}

	s.log.Debug("Movies listed",
		zap.String("search", search),
		zap.Int("count", len(results)),
	)

	return results, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id int) (*response.MovieDetailResponse, error) {
	movie := s.store.FindByID(id)
	if movie == nil {
		return nil, fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}

	detail := response.MovieToDetailResponse(movie)
	return &detail, nil
}
