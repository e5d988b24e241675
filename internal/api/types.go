package api

import "time"

// MovieView is the JSON shape served for one movie.
type MovieView struct {
	ID                  int64   `json:"id"`
	TitleEN             string  `json:"title_en"`
	TitleZH             string  `json:"title_zh,omitempty"`
	Director            string  `json:"director,omitempty"`
	DirectorZH          string  `json:"director_zh,omitempty"`
	Year                int     `json:"year,omitempty"`
	Duration            string  `json:"duration,omitempty"`
	Language            string  `json:"language,omitempty"`
	OverviewEN          string  `json:"overview_en,omitempty"`
	OverviewZH          string  `json:"overview_zh,omitempty"`
	Rating              float64 `json:"rating,omitempty"`
	TMDBID              int64   `json:"tmdb_id,omitempty"`
	IMDbID              string  `json:"imdb_id,omitempty"`
	ImageURL            string  `json:"image_url,omitempty"`
	TrailerURL          string  `json:"trailer_url,omitempty"`
	Cinema              string  `json:"cinema,omitempty"`
	HasQA               bool    `json:"has_qa,omitempty"`
	QADetails           string  `json:"qa_details,omitempty"`
	HasIntroduction     bool    `json:"has_introduction,omitempty"`
	IntroductionDetails string  `json:"introduction_details,omitempty"`
	DoubanSearchURL     string  `json:"douban_search_url,omitempty"`
	LetterboxdURL       string  `json:"letterboxd_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScreeningView is the JSON shape served for one screening.
type ScreeningView struct {
	ID        int64  `json:"id"`
	MovieID   int64  `json:"movie_id"`
	TitleEN   string `json:"title_en"`
	Cinema    string `json:"cinema"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	TicketURL string `json:"ticket_url,omitempty"`
	SoldOut   bool   `json:"sold_out"`
}

// MovieListResponse wraps a paginated movie listing.
type MovieListResponse struct {
	Movies []MovieView `json:"movies"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// ScreeningListResponse wraps a paginated screening listing.
type ScreeningListResponse struct {
	Screenings []ScreeningView `json:"screenings"`
	Total      int             `json:"total"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

// HealthResponse reports liveness and the database location.
type HealthResponse struct {
	Status       string `json:"status"`
	DatabasePath string `json:"database_path"`
}
