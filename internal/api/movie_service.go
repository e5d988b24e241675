package api

import (
	"context"
	"errors"

	"marquee/internal/store"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// MovieService provides read access to movies and screenings in view form.
type MovieService struct {
	store *store.Store
}

// NewMovieService constructs the read service over a store.
func NewMovieService(st *store.Store) *MovieService {
	return &MovieService{store: st}
}

// ListOptions filter and paginate a listing.
type ListOptions struct {
	Cinema   string
	Days     int
	MovieID  int64
	FromDate string
	ToDate   string
	Limit    int
	Offset   int
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ListMovies returns a page of movies with view fields filled in.
func (s *MovieService) ListMovies(ctx context.Context, opts ListOptions) (MovieListResponse, error) {
	limit, offset := clampPage(opts.Limit, opts.Offset)
	movies, total, err := s.store.ListMovies(ctx, store.ListMoviesOptions{
		Cinema: opts.Cinema,
		Days:   opts.Days,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return MovieListResponse{}, err
	}
	views := make([]MovieView, 0, len(movies))
	for i := range movies {
		views = append(views, movieView(&movies[i]))
	}
	return MovieListResponse{Movies: views, Total: total, Limit: limit, Offset: offset}, nil
}

// GetMovie returns one movie view, or nil when the id is unknown.
func (s *MovieService) GetMovie(ctx context.Context, id int64) (*MovieView, error) {
	if id <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	movie, err := s.store.GetMovieByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, nil
	}
	view := movieView(movie)
	return &view, nil
}

// ListScreenings returns a page of screenings.
func (s *MovieService) ListScreenings(ctx context.Context, opts ListOptions) (ScreeningListResponse, error) {
	limit, offset := clampPage(opts.Limit, opts.Offset)
	screenings, total, err := s.store.ListScreenings(ctx, store.ListScreeningsOptions{
		MovieID:  opts.MovieID,
		Cinema:   opts.Cinema,
		FromDate: opts.FromDate,
		ToDate:   opts.ToDate,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return ScreeningListResponse{}, err
	}
	views := make([]ScreeningView, 0, len(screenings))
	for i := range screenings {
		views = append(views, screeningView(&screenings[i]))
	}
	return ScreeningListResponse{Screenings: views, Total: total, Limit: limit, Offset: offset}, nil
}

func movieView(m *store.Movie) MovieView {
	return MovieView{
		ID:                  m.ID,
		TitleEN:             m.TitleEN,
		TitleZH:             m.TitleZH,
		Director:            m.Director,
		DirectorZH:          m.DirectorZH,
		Year:                m.Year,
		Duration:            m.Duration,
		Language:            m.Language,
		OverviewEN:          m.OverviewEN,
		OverviewZH:          m.OverviewZH,
		Rating:              m.Rating,
		TMDBID:              m.TMDBID,
		IMDbID:              m.IMDbID,
		ImageURL:            m.ImageURL,
		TrailerURL:          m.TrailerURL,
		Cinema:              m.Cinema,
		HasQA:               m.HasQA,
		QADetails:           m.QADetails,
		HasIntroduction:     m.HasIntroduction,
		IntroductionDetails: m.IntroductionDetails,
		DoubanSearchURL:     DoubanSearchURL(m.TitleZH, m.TitleEN, m.Year),
		LetterboxdURL:       LetterboxdURL(m.IMDbID, m.TitleEN, m.Year),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func screeningView(s *store.Screening) ScreeningView {
	return ScreeningView{
		ID:        s.ID,
		MovieID:   s.MovieID,
		TitleEN:   s.TitleEN,
		Cinema:    s.Cinema,
		Date:      s.Date,
		Time:      s.Time,
		TicketURL: s.TicketURL,
		SoldOut:   s.SoldOut,
	}
}
