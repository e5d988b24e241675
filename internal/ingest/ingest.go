package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"marquee/internal/logging"
	"marquee/internal/store"
	"marquee/internal/titles"
)

// Stats aggregates the outcome of one import batch.
type Stats struct {
	Movies           int
	Created          int
	Updated          int
	Screenings       int
	SkippedMovies    int
	SkippedShowtimes int
}

// Importer writes scraped batches into the store.
type Importer struct {
	store  *store.Store
	logger *slog.Logger
}

// NewImporter constructs an Importer. A nil logger falls back to a no-op
// logger.
func NewImporter(st *store.Store, logger *slog.Logger) (*Importer, error) {
	if st == nil {
		return nil, errors.New("store is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Importer{store: st, logger: logger.With(logging.String("component", "ingest"))}, nil
}

// ImportBatch upserts one cinema's scraped movies and replaces their
// screenings. A movie without a title and a showtime without a date or time
// are skipped, not fatal; the batch keeps going.
func (im *Importer) ImportBatch(ctx context.Context, cinema string, movies []RawMovie) (Stats, error) {
	var stats Stats
	cinema = strings.TrimSpace(cinema)
	if cinema == "" {
		return stats, errors.New("cinema is required")
	}

	for i := range movies {
		raw := &movies[i]
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		title := titles.CleanForDisplay(raw.TitleEN)
		if title == "" {
			stats.SkippedMovies++
			im.logger.Warn("skipping movie without title", logging.Int("index", i))
			continue
		}

		movie := rawToMovie(raw, title, cinema)
		created, err := im.store.UpsertMovie(ctx, movie)
		if err != nil {
			return stats, fmt.Errorf("upsert %q: %w", title, err)
		}
		stats.Movies++
		if created {
			stats.Created++
		} else {
			stats.Updated++
		}

		screenings := collectScreenings(raw, movie, cinema, &stats)
		// A scrape without a show_dates key says nothing about the schedule;
		// one that carried it replaces the stored set even when empty.
		if !raw.ShowDates.Present && len(raw.ShowDates.Dates) == 0 {
			continue
		}
		if err := im.store.ReplaceScreenings(ctx, movie.ID, cinema, screenings); err != nil {
			return stats, fmt.Errorf("replace screenings for %q: %w", title, err)
		}
		stats.Screenings += len(screenings)
	}

	im.logger.Info("import batch finished",
		logging.String("cinema", cinema),
		logging.Int("movies", stats.Movies),
		logging.Int("created", stats.Created),
		logging.Int("screenings", stats.Screenings),
		logging.Int("skipped_movies", stats.SkippedMovies),
		logging.Int("skipped_showtimes", stats.SkippedShowtimes))
	return stats, nil
}

func rawToMovie(raw *RawMovie, title, cinema string) *store.Movie {
	return &store.Movie{
		TitleEN:             title,
		TitleZH:             titles.CleanForDisplay(raw.TitleZH),
		Director:            strings.TrimSpace(raw.Director),
		Year:                titles.ExtractYear(raw.Year),
		Duration:            titles.NormalizeDuration(raw.Duration),
		Language:            strings.TrimSpace(raw.Language),
		OverviewEN:          strings.TrimSpace(raw.OverviewEN),
		OverviewZH:          strings.TrimSpace(raw.OverviewZH),
		TMDBID:              raw.TMDBID,
		IMDbID:              strings.TrimSpace(raw.IMDbID),
		ImageURL:            strings.TrimSpace(raw.ImageURL),
		TrailerURL:          strings.TrimSpace(raw.TrailerURL),
		Cinema:              cinema,
		HasQA:               raw.HasQA,
		QADetails:           strings.TrimSpace(raw.QADetails),
		HasIntroduction:     raw.HasIntroduction,
		IntroductionDetails: strings.TrimSpace(raw.IntroductionDetails),
	}
}

func collectScreenings(raw *RawMovie, movie *store.Movie, cinema string, stats *Stats) []store.Screening {
	var screenings []store.Screening
	for _, showDate := range raw.ShowDates.Dates {
		date := strings.TrimSpace(showDate.Date)
		if date == "" {
			stats.SkippedShowtimes += len(showDate.Times)
			continue
		}
		for _, showtime := range showDate.Times {
			clock := strings.TrimSpace(showtime.Time)
			if clock == "" {
				stats.SkippedShowtimes++
				continue
			}
			screenings = append(screenings, store.Screening{
				MovieID:   movie.ID,
				TitleEN:   movie.TitleEN,
				Cinema:    cinema,
				Date:      date,
				Time:      clock,
				TicketURL: strings.TrimSpace(showtime.TicketURL),
				SoldOut:   showtime.SoldOut,
			})
		}
	}
	return screenings
}
