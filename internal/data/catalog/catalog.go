package catalog

import (
	"strings"

	"github.com/Surendar2005/BookMyShow/internal/data/entity"
)

// Store is the read-only movie catalog. All lookups are over the static
// dataset loaded at construction time.
type Store struct {
	movies []entity.Movie
	byID   map[int]*entity.Movie
}

func NewStore() *Store {
	movies := defaultMovies()

	byID := make(map[int]*entity.Movie, len(movies))
	for i := range movies {
		byID[movies[i].ID] = &movies[i]
	}

	return &Store{
		movies: movies,
		byID:   byID,
	}
}

// All returns every movie in catalog order
func (s *Store) All() []entity.Movie {
	return s.movies
}

// FindByID returns the movie with the given identifier, or nil
func (s *Store) FindByID(id int) *entity.Movie {
	return s.byID[id]
}

// Search filters the catalog with a case-insensitive substring match against
// title or genre. An empty term returns the full catalog.
func (s *Store) Search(term string) []entity.Movie {
	if term == "" {
		return s.movies
	}

	needle := strings.ToLower(term)

	var matches []entity.Movie
	for _, movie := range s.movies {
		if strings.Contains(strings.ToLower(movie.Title), needle) ||
			strings.Contains(strings.ToLower(movie.Genre), needle) {
			matches = append(matches, movie)
		}
	}

	return matches
}
