package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

const movieColumns = `id, title_en, COALESCE(title_zh, ''), COALESCE(director, ''),
	COALESCE(director_zh, ''), COALESCE(year, 0), COALESCE(duration, ''),
	COALESCE(language, ''), COALESCE(overview_en, ''), COALESCE(overview_zh, ''),
	COALESCE(rating, 0), COALESCE(tmdb_id, 0), COALESCE(imdb_id, ''),
	COALESCE(image_url, ''), COALESCE(trailer_url, ''), COALESCE(cinema, ''),
	has_qa, COALESCE(qa_details, ''), has_introduction,
	COALESCE(introduction_details, ''), created_at, updated_at`

func scanMovie(row interface{ Scan(...any) error }) (*Movie, error) {
	var m Movie
	var createdAt, updatedAt string
	err := row.Scan(
		&m.ID, &m.TitleEN, &m.TitleZH, &m.Director,
		&m.DirectorZH, &m.Year, &m.Duration,
		&m.Language, &m.OverviewEN, &m.OverviewZH,
		&m.Rating, &m.TMDBID, &m.IMDbID,
		&m.ImageURL, &m.TrailerURL, &m.Cinema,
		&m.HasQA, &m.QADetails, &m.HasIntroduction,
		&m.IntroductionDetails, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.CreatedAt = parseTimestamp(createdAt)
	m.UpdatedAt = parseTimestamp(updatedAt)
	return &m, nil
}

func parseTimestamp(value string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// UpsertMovie inserts the movie on first sight (keyed by display-cleaned
// title_en plus cinema) or refreshes the existing row with the non-empty
// scraped fields. Existing values are never blanked by an empty incoming one.
// Reports whether a new row was created and fills m.ID.
func (s *Store) UpsertMovie(ctx context.Context, m *Movie) (bool, error) {
	if m == nil || strings.TrimSpace(m.TitleEN) == "" {
		return false, errors.New("movie title required")
	}
	ctx = ensureContext(ctx)

	existing, err := s.FindMovieByTitle(ctx, m.TitleEN, m.Cinema)
	if err != nil {
		return false, err
	}

	if existing != nil {
		m.ID = existing.ID
		_, err := s.execWithRetry(ctx, `
			UPDATE movies SET
				title_zh = COALESCE(NULLIF(?, ''), title_zh),
				director = COALESCE(NULLIF(?, ''), director),
				director_zh = COALESCE(NULLIF(?, ''), director_zh),
				year = COALESCE(NULLIF(?, 0), year),
				duration = COALESCE(NULLIF(?, ''), duration),
				language = COALESCE(NULLIF(?, ''), language),
				overview_en = COALESCE(NULLIF(?, ''), overview_en),
				overview_zh = COALESCE(NULLIF(?, ''), overview_zh),
				tmdb_id = COALESCE(NULLIF(?, 0), tmdb_id),
				imdb_id = COALESCE(NULLIF(?, ''), imdb_id),
				image_url = COALESCE(NULLIF(?, ''), image_url),
				trailer_url = COALESCE(NULLIF(?, ''), trailer_url),
				has_qa = ?,
				qa_details = COALESCE(NULLIF(?, ''), qa_details),
				has_introduction = ?,
				introduction_details = COALESCE(NULLIF(?, ''), introduction_details),
				updated_at = datetime('now')
			WHERE id = ?`,
			m.TitleZH, m.Director, m.DirectorZH, m.Year, m.Duration, m.Language,
			m.OverviewEN, m.OverviewZH, m.TMDBID, m.IMDbID, m.ImageURL, m.TrailerURL,
			m.HasQA, m.QADetails, m.HasIntroduction, m.IntroductionDetails,
			existing.ID,
		)
		if err != nil {
			return false, fmt.Errorf("update movie %d: %w", existing.ID, err)
		}
		return false, nil
	}

	res, err := s.execWithRetry(ctx, `
		INSERT INTO movies (
			title_en, title_zh, director, director_zh, year, duration, language,
			overview_en, overview_zh, tmdb_id, imdb_id, image_url, trailer_url,
			cinema, has_qa, qa_details, has_introduction, introduction_details
		) VALUES (
			?, NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, 0),
			NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''),
			NULLIF(?, 0), NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''),
			NULLIF(?, ''), ?, NULLIF(?, ''), ?, NULLIF(?, '')
		)`,
		m.TitleEN, m.TitleZH, m.Director, m.DirectorZH, m.Year,
		m.Duration, m.Language, m.OverviewEN, m.OverviewZH,
		m.TMDBID, m.IMDbID, m.ImageURL, m.TrailerURL,
		m.Cinema, m.HasQA, m.QADetails, m.HasIntroduction, m.IntroductionDetails,
	)
	if err != nil {
		return false, fmt.Errorf("insert movie %q: %w", m.TitleEN, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("movie insert id: %w", err)
	}
	m.ID = id
	return true, nil
}

// GetMovieByID returns the movie or nil when absent.
func (s *Store) GetMovieByID(ctx context.Context, id int64) (*Movie, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, "SELECT "+movieColumns+" FROM movies WHERE id = ?", id)
	movie, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get movie %d: %w", id, err)
	}
	return movie, nil
}

// FindMovieByTitle matches on the exact stored title and cinema. Returns nil
// when no row matches.
func (s *Store) FindMovieByTitle(ctx context.Context, titleEN, cinema string) (*Movie, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx,
		"SELECT "+movieColumns+" FROM movies WHERE title_en = ? AND COALESCE(cinema, '') = ? LIMIT 1",
		titleEN, cinema,
	)
	movie, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find movie %q: %w", titleEN, err)
	}
	return movie, nil
}

// ListRecentMovies returns movies created within the last `days` days, newest
// first.
func (s *Store) ListRecentMovies(ctx context.Context, days int) ([]Movie, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+movieColumns+" FROM movies WHERE created_at >= datetime('now', ?) ORDER BY created_at DESC, id DESC",
		fmt.Sprintf("-%d days", days),
	)
	if err != nil {
		return nil, fmt.Errorf("list recent movies: %w", err)
	}
	defer rows.Close()
	return collectMovies(rows)
}

// ListMoviesOptions filters and paginates movie listings for the read API.
type ListMoviesOptions struct {
	Cinema string
	Days   int
	Limit  int
	Offset int
}

// ListMovies returns a filtered page of movies plus the unpaginated total.
func (s *Store) ListMovies(ctx context.Context, opts ListMoviesOptions) ([]Movie, int, error) {
	ctx = ensureContext(ctx)

	where := []string{"1=1"}
	var args []any
	if strings.TrimSpace(opts.Cinema) != "" {
		where = append(where, "COALESCE(cinema, '') = ?")
		args = append(args, opts.Cinema)
	}
	if opts.Days > 0 {
		where = append(where, "created_at >= datetime('now', ?)")
		args = append(args, fmt.Sprintf("-%d days", opts.Days))
	}
	condition := strings.Join(where, " AND ")

	var total int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM movies WHERE "+condition, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}

	query := "SELECT " + movieColumns + " FROM movies WHERE " + condition +
		" ORDER BY created_at DESC, id DESC"
	if opts.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, opts.Limit, opts.Offset)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	movies, err := collectMovies(rows)
	if err != nil {
		return nil, 0, err
	}
	return movies, total, nil
}

// ApplyMoviePatch writes the patch's set fields in a single partial UPDATE.
// An all-nil patch is a no-op.
func (s *Store) ApplyMoviePatch(ctx context.Context, id int64, patch MoviePatch) error {
	if patch.IsZero() {
		return nil
	}
	ctx = ensureContext(ctx)

	clauses, args := patch.assignments()
	clauses = append(clauses, "updated_at = datetime('now')")
	args = append(args, id)

	res, err := s.execWithRetry(ctx,
		"UPDATE movies SET "+strings.Join(clauses, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("patch movie %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("patch movie %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("patch movie %d: no such movie", id)
	}
	return nil
}

func collectMovies(rows *sql.Rows) ([]Movie, error) {
	var movies []Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, *movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return movies, nil
}
