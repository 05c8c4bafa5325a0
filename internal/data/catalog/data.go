package catalog

import (
	"github.com/Surendar2005/BookMyShow/internal/data/entity"
)

// defaultMovies is the static "now showing" dataset. Prices are the base
// per-seat price in rupees; premium seats add a surcharge on top.
func defaultMovies() []entity.Movie {
	return []entity.Movie{
		{
			ID:          1,
			Title:       "Kalki 2898 AD",
			Genre:       "Sci-Fi, Action",
			Duration:    "3h 1m",
			Price:       350,
			Rating:      8.2,
			Language:    "Telugu",
			ReleaseDate: "2024-06-27",
			Director:    "Nag Ashwin",
			Cast:        "Prabhas, Deepika Padukone, Amitabh Bachchan",
			Description: "In a dystopian future, a bounty hunter is drawn into a war between the forces of darkness and the prophesied return of a savior.",
			PosterURL:   "/images/kalki-poster.jpg",
			BackdropURL: "/images/kalki-backdrop.jpg",
			Showtimes:   []string{"10:00 AM", "1:30 PM", "5:00 PM", "8:30 PM", "11:00 PM"},
		},
		{
			ID:          2,
			Title:       "Jawan",
			Genre:       "Action, Thriller",
			Duration:    "2h 49m",
			Price:       300,
			Rating:      7.8,
			Language:    "Hindi",
			ReleaseDate: "2023-09-07",
			Director:    "Atlee",
			Cast:        "Shah Rukh Khan, Nayanthara, Vijay Sethupathi",
			Description: "A man driven by a personal vendetta rights societal wrongs while crossing paths with a ruthless arms dealer from his past.",
			PosterURL:   "/images/jawan-poster.jpg",
			BackdropURL: "/images/jawan-backdrop.jpg",
			Showtimes:   []string{"9:30 AM", "12:45 PM", "4:15 PM", "7:45 PM"},
		},
		{
			ID:          3,
			Title:       "Oppenheimer",
			Genre:       "Drama, History",
			Duration:    "3h 0m",
			Price:       400,
			Rating:      8.4,
			Language:    "English",
			ReleaseDate: "2023-07-21",
			Director:    "Christopher Nolan",
			Cast:        "Cillian Murphy, Emily Blunt, Robert Downey Jr.",
			Description: "The story of J. Robert Oppenheimer and his role in the development of the atomic bomb.",
			PosterURL:   "/images/oppenheimer-poster.jpg",
			BackdropURL: "/images/oppenheimer-backdrop.jpg",
			Showtimes:   []string{"11:00 AM", "2:45 PM", "6:30 PM", "10:15 PM"},
		},
		{
			ID:          4,
			Title:       "Manjummel Boys",
			Genre:       "Survival, Thriller",
			Duration:    "2h 15m",
			Price:       250,
			Rating:      8.1,
			Language:    "Malayalam",
			ReleaseDate: "2024-02-22",
			Director:    "Chidambaram",
			Cast:        "Soubin Shahir, Sreenath Bhasi, Balu Varghese",
			Description: "A group of friends from Manjummel set out on a trip to Kodaikanal, where a daring rescue unfolds in the Guna caves.",
			PosterURL:   "/images/manjummel-poster.jpg",
			BackdropURL: "/images/manjummel-backdrop.jpg",
			Showtimes:   []string{"10:15 AM", "1:00 PM", "6:00 PM"},
		},
		{
			ID:          5,
			Title:       "Dune: Part Two",
			Genre:       "Sci-Fi, Adventure",
			Duration:    "2h 46m",
			Price:       380,
			Rating:      8.5,
			Language:    "English",
			ReleaseDate: "2024-03-01",
			Director:    "Denis Villeneuve",
			Cast:        "Timothee Chalamet, Zendaya, Rebecca Ferguson",
			Description: "Paul Atreides unites with the Fremen to wage war against House Harkonnen while facing a choice between love and the fate of the universe.",
			PosterURL:   "/images/dune2-poster.jpg",
			BackdropURL: "/images/dune2-backdrop.jpg",
			Showtimes:   []string{"9:00 AM", "12:30 PM", "4:00 PM", "7:30 PM", "10:45 PM"},
		},
		{
			ID:          6,
			Title:       "3 Idiots",
			Genre:       "Comedy, Drama",
			Duration:    "2h 50m",
			Price:       200,
			Rating:      8.4,
			Language:    "Hindi",
			ReleaseDate: "2009-12-25",
			Director:    "Rajkumar Hirani",
			Cast:        "Aamir Khan, R. Madhavan, Sharman Joshi",
			Description: "Two friends search for their long-lost college companion, revisiting the days that redefined what success means.",
			PosterURL:   "/images/3idiots-poster.jpg",
			BackdropURL: "/images/3idiots-backdrop.jpg",
			Showtimes:   []string{"11:30 AM", "3:15 PM", "8:00 PM"},
		},
	}
}
