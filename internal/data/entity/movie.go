package entity

// Movie is a catalog entry. The catalog is loaded once at startup from the
// static dataset and stays immutable for the lifetime of the process.
type Movie struct {
	ID          int
	Title       string
	Genre       string
	Duration    string
	Price       float64
	Rating      float64
	Language    string
	ReleaseDate string
	Director    string
	Cast        string
	Description string
	PosterURL   string
	BackdropURL string
	Showtimes   []string
}
