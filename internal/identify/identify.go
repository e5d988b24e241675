package identify

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"marquee/internal/catalog/tmdb"
	"marquee/internal/logging"
	"marquee/internal/titles"
)

// Match captures the catalog identity a title resolved to.
type Match struct {
	TMDBID      int64
	Title       string
	ReleaseDate string
	// Attempt names the search variant that produced the match.
	Attempt string
}

// Year returns the release year of the match, or zero when unknown.
func (m *Match) Year() string {
	if m == nil || len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

type attempt struct {
	label string
	query string
	year  int
}

// Resolver resolves scraped titles against the primary catalog.
type Resolver struct {
	searcher tmdb.Searcher
	logger   *slog.Logger
}

// NewResolver creates a Resolver. A nil logger falls back to a no-op logger.
func NewResolver(searcher tmdb.Searcher, logger *slog.Logger) (*Resolver, error) {
	if searcher == nil {
		return nil, errors.New("searcher is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{searcher: searcher, logger: logger}, nil
}

// Resolve walks the search-attempt chain for a scraped title and returns the
// first match. year restricts early attempts when positive. Returns nil when
// no attempt matched. A transport failure on one attempt advances the chain;
// an error is returned only when every attempt failed to execute.
func (r *Resolver) Resolve(ctx context.Context, title string, year int) (*Match, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title must not be empty")
	}

	attempts := buildAttempts(title, year)
	var lastErr error
	failures := 0
	for _, att := range attempts {
		resp, err := r.searcher.SearchMovie(ctx, att.query, tmdb.SearchOptions{Year: att.year})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			r.logger.Warn("search attempt failed",
				logging.String("attempt", att.label),
				logging.String("query", att.query),
				logging.Error(err))
			lastErr = err
			failures++
			continue
		}
		if len(resp.Results) == 0 {
			continue
		}
		best := resp.Results[0]
		match := &Match{
			TMDBID:      best.ID,
			Title:       strings.TrimSpace(best.Title),
			ReleaseDate: strings.TrimSpace(best.ReleaseDate),
			Attempt:     att.label,
		}
		r.logger.Info("title resolved",
			logging.String("title", title),
			logging.String("attempt", att.label),
			logging.String("query", att.query),
			logging.Int64("tmdb_id", match.TMDBID),
			logging.Int("candidates", len(resp.Results)))
		return match, nil
	}

	if failures == len(attempts) && lastErr != nil {
		return nil, lastErr
	}
	r.logger.Info("title unresolved",
		logging.String("title", title),
		logging.Int("attempts", len(attempts)))
	return nil, nil
}

// buildAttempts assembles the variant chain for a title, dropping attempts
// that collapse into an earlier one.
func buildAttempts(title string, year int) []attempt {
	cleaned := titles.CleanForSearch(title)
	if cleaned == "" {
		cleaned = title
	}
	shortened := titles.FirstWords(cleaned, 2)

	candidates := []attempt{
		{label: "raw title with year", query: title, year: year},
		{label: "cleaned title with year", query: cleaned, year: year},
		{label: "cleaned title", query: cleaned},
		{label: "shortened title", query: shortened},
	}

	seen := make(map[string]struct{}, len(candidates))
	attempts := make([]attempt, 0, len(candidates))
	for _, cand := range candidates {
		cand.query = strings.TrimSpace(cand.query)
		if cand.query == "" {
			continue
		}
		key := strings.ToLower(cand.query)
		if cand.year > 0 {
			key += "|year"
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		attempts = append(attempts, cand)
	}
	return attempts
}
