package response

import (
	"testing"

	"github.com/Surendar2005/BookMyShow/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestShowtimePreview(t *testing.T) {
	tests := []struct {
		name      string
		showtimes []string
		want      []string
	}{
		{
			name:      "short lists are untouched",
			showtimes: []string{"10:00 AM", "1:30 PM"},
			want:      []string{"10:00 AM", "1:30 PM"},
		},
		{
			name:      "exactly three badges are untouched",
			showtimes: []string{"10:00 AM", "1:30 PM", "5:00 PM"},
			want:      []string{"10:00 AM", "1:30 PM", "5:00 PM"},
		},
		{
			name:      "longer lists collapse into a +N more badge",
			showtimes: []string{"10:00 AM", "1:30 PM", "5:00 PM", "8:30 PM", "11:00 PM"},
			want:      []string{"10:00 AM", "1:30 PM", "5:00 PM", "+2 more"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShowtimePreview(tt.showtimes))
		})
	}
}

func TestMovieToDetailResponse(t *testing.T) {
	movie := &entity.Movie{
		ID:        1,
		Title:     "X",
		Genre:     "Drama",
		Price:     300,
		Director:  "Someone",
		Showtimes: []string{"10:00 AM", "1:30 PM", "5:00 PM", "8:30 PM"},
	}

	detail := MovieToDetailResponse(movie)

	assert.Equal(t, 1, detail.ID)
	assert.Equal(t, "Someone", detail.Director)
	assert.Equal(t, movie.Showtimes, detail.Showtimes)
	assert.Equal(t, []string{"10:00 AM", "1:30 PM", "5:00 PM", "+1 more"}, detail.ShowtimePreview)
}
