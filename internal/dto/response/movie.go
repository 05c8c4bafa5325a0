package response

import (
	"fmt"

	"github.com/Surendar2005/BookMyShow/internal/data/entity"
)

type MovieResponse struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	Duration    string   `json:"duration"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Language    string   `json:"language"`
	ReleaseDate string   `json:"releaseDate"`
	PosterURL   string   `json:"posterUrl"`
	Showtimes   []string `json:"showtimes"`
}

type MovieDetailResponse struct {
	MovieResponse
	Director        string   `json:"director"`
	Cast            string   `json:"cast"`
	Description     string   `json:"description"`
	BackdropURL     string   `json:"backdropUrl"`
	ShowtimePreview []string `json:"showtimePreview"`
}

// showtimePreviewLimit caps how many showtime badges the detail view shows
// before collapsing the rest into a "+N more" marker
const showtimePreviewLimit = 3

// ShowtimePreview truncates a showtime list to the badge limit, appending
// "+N more" when entries were cut off.
func ShowtimePreview(showtimes []string) []string {
	if len(showtimes) <= showtimePreviewLimit {
		return showtimes
	}

	preview := make([]string, 0, showtimePreviewLimit+1)
	preview = append(preview, showtimes[:showtimePreviewLimit]...)
	preview = append(preview, fmt.Sprintf("+%d more", len(showtimes)-showtimePreviewLimit))
	return preview
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Genre:       movie.Genre,
		Duration:    movie.Duration,
		Price:       movie.Price,
		Rating:      movie.Rating,
		Language:    movie.Language,
		ReleaseDate: movie.ReleaseDate,
		PosterURL:   movie.PosterURL,
		Showtimes:   movie.Showtimes,
	}
}

func MovieToDetailResponse(movie *entity.Movie) MovieDetailResponse {
	return MovieDetailResponse{
		MovieResponse:   MovieToResponse(movie),
		Director:        movie.Director,
		Cast:            movie.Cast,
		Description:     movie.Description,
		BackdropURL:     movie.BackdropURL,
		ShowtimePreview: ShowtimePreview(movie.Showtimes),
	}
}
