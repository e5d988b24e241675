package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"marquee/internal/catalog/omdb"
	"marquee/internal/catalog/tmdb"
	"marquee/internal/config"
	"marquee/internal/identify"
	"marquee/internal/language"
	"marquee/internal/logging"
	"marquee/internal/reconcile"
	"marquee/internal/store"
	"marquee/internal/titles"
)

// localizedOverviewFallbacks are the language tags tried, in order, when the
// primary localized detail request comes back without a synopsis. Regional
// Chinese variants often carry one the mainland tag lacks.
var localizedOverviewFallbacks = []string{"zh-TW", "zh-HK", "zh"}

// Stats aggregates the outcome of one enrichment run.
type Stats struct {
	Processed  int
	Resolved   int
	Enriched   int
	Supplement int
	Skipped    int
	Failures   int
}

// RunOptions controls which movies an enrichment run visits.
type RunOptions struct {
	// Days restricts the run to movies created within the window; zero uses
	// the configured default.
	Days int
	// MovieID restricts the run to a single movie when positive.
	MovieID int64
	// Force visits movies even when no metadata gap is detected.
	Force bool
}

// Enricher orchestrates catalog enrichment over the movie store.
type Enricher struct {
	store    *store.Store
	searcher tmdb.Searcher
	lookuper omdb.Lookuper
	resolver *identify.Resolver
	logger   *slog.Logger

	localizedLanguage string
	originalLanguage  string
	throttle          time.Duration
	defaultDays       int
}

// New constructs an Enricher from configuration. The OMDb client is created
// only when the secondary catalog is enabled.
func New(cfg *config.Config, st *store.Store, logger *slog.Logger) (*Enricher, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	timeout := time.Duration(cfg.Enrichment.RequestTimeoutSeconds) * time.Second
	searcher, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language, tmdb.WithTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("build tmdb client: %w", err)
	}
	var lookuper omdb.Lookuper
	if cfg.OMDb.Enabled {
		client, err := omdb.New(cfg.OMDb.APIKey, cfg.OMDb.BaseURL, omdb.WithTimeout(timeout))
		if err != nil {
			return nil, fmt.Errorf("build omdb client: %w", err)
		}
		lookuper = client
	}
	return NewWithClients(cfg, st, searcher, lookuper, logger)
}

// NewWithClients allows injecting catalog clients (used in tests). lookuper
// may be nil to disable the secondary catalog.
func NewWithClients(cfg *config.Config, st *store.Store, searcher tmdb.Searcher, lookuper omdb.Lookuper, logger *slog.Logger) (*Enricher, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if st == nil {
		return nil, errors.New("store is required")
	}
	if searcher == nil {
		return nil, errors.New("tmdb searcher is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.String("component", "enrich"))
	resolver, err := identify.NewResolver(searcher, logger)
	if err != nil {
		return nil, err
	}
	return &Enricher{
		store:             st,
		searcher:          searcher,
		lookuper:          lookuper,
		resolver:          resolver,
		logger:            logger,
		localizedLanguage: cfg.TMDB.Language,
		originalLanguage:  cfg.TMDB.OriginalLanguage,
		throttle:          time.Duration(cfg.Enrichment.ThrottleMillis) * time.Millisecond,
		defaultDays:       cfg.Enrichment.RecentDays,
	}, nil
}

// Run enriches every movie the options select. Per-movie failures are counted
// and logged but do not abort the batch; the error return is reserved for the
// store being unusable or the context ending.
func (e *Enricher) Run(ctx context.Context, opts RunOptions) (Stats, error) {
	var stats Stats
	runID := uuid.NewString()
	logger := e.logger.With(logging.String("run_id", runID))

	movies, err := e.selectMovies(ctx, opts)
	if err != nil {
		return stats, err
	}
	logger.Info("enrichment run starting",
		logging.Int("candidates", len(movies)),
		logging.Bool("force", opts.Force))

	for i := range movies {
		movie := &movies[i]
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if !opts.Force && !needsEnrichment(movie) {
			stats.Skipped++
			continue
		}
		stats.Processed++
		if stats.Processed > 1 {
			if err := e.pause(ctx); err != nil {
				return stats, err
			}
		}
		if err := e.enrichMovie(ctx, logger, movie, &stats); err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			stats.Failures++
			logger.Warn("movie enrichment failed",
				logging.Int64("movie_id", movie.ID),
				logging.String("title", movie.TitleEN),
				logging.Error(err))
		}
	}

	logger.Info("enrichment run finished",
		logging.Int("processed", stats.Processed),
		logging.Int("resolved", stats.Resolved),
		logging.Int("enriched", stats.Enriched),
		logging.Int("supplemented", stats.Supplement),
		logging.Int("skipped", stats.Skipped),
		logging.Int("failures", stats.Failures))
	return stats, nil
}

func (e *Enricher) selectMovies(ctx context.Context, opts RunOptions) ([]store.Movie, error) {
	if opts.MovieID > 0 {
		movie, err := e.store.GetMovieByID(ctx, opts.MovieID)
		if err != nil {
			return nil, err
		}
		if movie == nil {
			return nil, fmt.Errorf("movie %d not found", opts.MovieID)
		}
		return []store.Movie{*movie}, nil
	}
	days := opts.Days
	if days <= 0 {
		days = e.defaultDays
	}
	return e.store.ListRecentMovies(ctx, days)
}

// needsEnrichment reports whether a movie still has a gap the catalogs could
// fill: no catalog id, no cross-reference id, no director, a missing synopsis
// in either language, or a localized title that is missing or merely echoes
// English. The cross-reference and English-synopsis gaps matter even when the
// primary catalog is done with a movie; they are what the secondary catalog
// supplements.
func needsEnrichment(movie *store.Movie) bool {
	switch {
	case movie.TMDBID == 0,
		strings.TrimSpace(movie.IMDbID) == "",
		strings.TrimSpace(movie.Director) == "",
		strings.TrimSpace(movie.OverviewEN) == "",
		strings.TrimSpace(movie.OverviewZH) == "":
		return true
	}
	title := strings.TrimSpace(movie.TitleZH)
	return title == "" || language.IsEffectivelyEnglish(title)
}

func (e *Enricher) enrichMovie(ctx context.Context, logger *slog.Logger, movie *store.Movie, stats *Stats) error {
	tmdbID, err := e.resolveIdentity(ctx, logger, movie)
	if err != nil {
		return err
	}
	if tmdbID == 0 {
		logger.Info("no catalog match",
			logging.Int64("movie_id", movie.ID),
			logging.String("title", movie.TitleEN))
		return nil
	}
	stats.Resolved++

	localized, err := e.searcher.MovieDetails(ctx, tmdbID, e.localizedLanguage)
	if err != nil {
		return fmt.Errorf("fetch localized details: %w", err)
	}
	// English details are best-effort; their absence degrades the merge but
	// does not fail the movie.
	english, err := e.searcher.MovieDetails(ctx, tmdbID, e.originalLanguage)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.Warn("english details unavailable",
			logging.Int64("movie_id", movie.ID),
			logging.Int64("tmdb_id", tmdbID),
			logging.Error(err))
		english = nil
	}

	record := reconcile.FromDetails(localized, english)
	patch := reconcile.BuildPatch(movie, record)
	if !patch.IsZero() {
		if err := e.store.ApplyMoviePatch(ctx, movie.ID, patch); err != nil {
			return fmt.Errorf("apply catalog patch: %w", err)
		}
		stats.Enriched++
	}

	refreshed, err := e.store.GetMovieByID(ctx, movie.ID)
	if err != nil {
		return err
	}
	if refreshed == nil {
		return fmt.Errorf("movie %d vanished during enrichment", movie.ID)
	}

	if refreshed.OverviewZH == "" {
		if err := e.backfillLocalizedOverview(ctx, logger, refreshed, tmdbID); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Warn("localized overview backfill failed",
				logging.Int64("movie_id", movie.ID),
				logging.Error(err))
		}
	}

	if err := e.supplementFromOMDb(ctx, logger, refreshed, stats); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.Warn("secondary catalog supplement failed",
			logging.Int64("movie_id", movie.ID),
			logging.Error(err))
	}
	return nil
}

// resolveIdentity determines the catalog id for a movie. A stored id is
// authoritative; a stored cross-reference id is the next strongest signal;
// only then does the fuzzy search chain run.
func (e *Enricher) resolveIdentity(ctx context.Context, logger *slog.Logger, movie *store.Movie) (int64, error) {
	if movie.TMDBID > 0 {
		return movie.TMDBID, nil
	}
	if movie.IMDbID != "" {
		result, err := e.searcher.FindByIMDbID(ctx, movie.IMDbID)
		if err != nil {
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			logger.Warn("cross-reference lookup failed",
				logging.Int64("movie_id", movie.ID),
				logging.String("imdb_id", movie.IMDbID),
				logging.Error(err))
		} else if result != nil {
			return result.ID, nil
		}
	}
	match, err := e.resolver.Resolve(ctx, movie.TitleEN, movie.Year)
	if err != nil || match == nil {
		return 0, err
	}
	return match.TMDBID, nil
}

// backfillLocalizedOverview walks regional language variants and then the
// translations listing until a non-empty localized synopsis turns up.
func (e *Enricher) backfillLocalizedOverview(ctx context.Context, logger *slog.Logger, movie *store.Movie, tmdbID int64) error {
	var overview string
	for _, lang := range localizedOverviewFallbacks {
		details, err := e.searcher.MovieDetails(ctx, tmdbID, lang)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		if text := strings.TrimSpace(details.Overview); text != "" && !language.IsEffectivelyEnglish(text) {
			overview = text
			logger.Info("localized overview found via fallback",
				logging.Int64("movie_id", movie.ID),
				logging.String("language", lang))
			break
		}
	}
	if overview == "" {
		translations, err := e.searcher.MovieTranslations(ctx, tmdbID)
		if err != nil {
			return err
		}
		for _, tr := range translations.Translations {
			if tr.ISO639_1 != "zh" {
				continue
			}
			if text := strings.TrimSpace(tr.Data.Overview); text != "" {
				overview = text
				break
			}
		}
	}
	patch := reconcile.LocalizedOverviewPatch(movie, overview)
	if patch.IsZero() {
		return nil
	}
	return e.store.ApplyMoviePatch(ctx, movie.ID, patch)
}

// supplementFromOMDb fills remaining gaps from the secondary catalog. Lookup
// prefers the cross-reference id; a title lookup falls back to the first two
// words of the search-cleaned title when the full title misses.
func (e *Enricher) supplementFromOMDb(ctx context.Context, logger *slog.Logger, movie *store.Movie, stats *Stats) error {
	if e.lookuper == nil {
		return nil
	}
	if movie.IMDbID != "" && movie.Director != "" && movie.OverviewEN != "" && movie.Rating > 0 {
		return nil
	}

	var (
		record *omdb.Record
		err    error
	)
	if movie.IMDbID != "" {
		record, err = e.lookuper.LookupByIMDbID(ctx, movie.IMDbID)
	} else {
		record, err = e.lookuper.LookupByTitle(ctx, movie.TitleEN, movie.Year)
		if err == nil && record == nil {
			short := titles.FirstWords(titles.CleanForSearch(movie.TitleEN), 2)
			if short != "" && short != movie.TitleEN {
				record, err = e.lookuper.LookupByTitle(ctx, short, movie.Year)
			}
		}
	}
	if err != nil {
		return err
	}
	if record == nil {
		return nil
	}

	patch := reconcile.BuildOMDbPatch(movie, record)
	if patch.IsZero() {
		return nil
	}
	if err := e.store.ApplyMoviePatch(ctx, movie.ID, patch); err != nil {
		return err
	}
	stats.Supplement++
	logger.Info("secondary catalog supplement applied",
		logging.Int64("movie_id", movie.ID),
		logging.String("title", movie.TitleEN))
	return nil
}

func (e *Enricher) pause(ctx context.Context) error {
	if e.throttle <= 0 {
		return nil
	}
	timer := time.NewTimer(e.throttle)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
