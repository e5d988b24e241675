package store

import (
	"context"
	"database/sql"
	"fmt"
)

// placeholderTitlePattern matches the "listing not yet available" rows some
// cinemas publish before a program is announced.
const placeholderTitlePattern = "%Showtimes coming soon%"

// CleanDuplicateScreenings removes duplicate (movie_id, date, time) rows,
// keeping the lowest id in each group. Safe to re-run; a second invocation
// deletes nothing.
func (s *Store) CleanDuplicateScreenings(ctx context.Context) (int64, error) {
	ctx = ensureContext(ctx)
	res, err := s.execWithRetry(ctx, `
		DELETE FROM screenings
		WHERE id NOT IN (
			SELECT MIN(id) FROM screenings GROUP BY movie_id, date, time
		)`)
	if err != nil {
		return 0, fmt.Errorf("clean duplicate screenings: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clean duplicate screenings: %w", err)
	}
	return removed, nil
}

// DeletePlaceholderMovies removes placeholder movie rows and their screenings.
// Returns the number of movies and screenings deleted.
func (s *Store) DeletePlaceholderMovies(ctx context.Context) (int64, int64, error) {
	ctx = ensureContext(ctx)

	var movies, screenings int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"DELETE FROM screenings WHERE movie_id IN (SELECT id FROM movies WHERE title_en LIKE ?)",
			placeholderTitlePattern,
		)
		if err != nil {
			return fmt.Errorf("delete placeholder screenings: %w", err)
		}
		if screenings, err = res.RowsAffected(); err != nil {
			return err
		}

		res, err = tx.ExecContext(ctx,
			"DELETE FROM movies WHERE title_en LIKE ?", placeholderTitlePattern)
		if err != nil {
			return fmt.Errorf("delete placeholder movies: %w", err)
		}
		if movies, err = res.RowsAffected(); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return movies, screenings, nil
}

// CinemaStats is the per-cinema row of Stats.
type CinemaStats struct {
	Cinema     string
	Movies     int
	Screenings int
}

// Stats summarizes store contents for the CLI.
type Stats struct {
	Movies            int
	Screenings        int
	MissingTMDBID     int
	MissingOverviewZH int
	PerCinema         []CinemaStats
}

// ReadStats counts movies, screenings, and remaining enrichment gaps.
func (s *Store) ReadStats(ctx context.Context) (Stats, error) {
	ctx = ensureContext(ctx)
	var stats Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(1) FROM movies),
			(SELECT COUNT(1) FROM screenings),
			(SELECT COUNT(1) FROM movies WHERE tmdb_id IS NULL),
			(SELECT COUNT(1) FROM movies WHERE overview_zh IS NULL OR overview_zh = '')`,
	).Scan(&stats.Movies, &stats.Screenings, &stats.MissingTMDBID, &stats.MissingOverviewZH)
	if err != nil {
		return Stats{}, fmt.Errorf("read stats: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT COALESCE(m.cinema, ''),
			COUNT(DISTINCT m.id),
			COUNT(s.id)
		FROM movies m
		LEFT JOIN screenings s ON s.movie_id = m.id
		GROUP BY COALESCE(m.cinema, '')
		ORDER BY COALESCE(m.cinema, '')`)
	if err != nil {
		return Stats{}, fmt.Errorf("read per-cinema stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var entry CinemaStats
		if err := rows.Scan(&entry.Cinema, &entry.Movies, &entry.Screenings); err != nil {
			return Stats{}, fmt.Errorf("scan per-cinema stats: %w", err)
		}
		stats.PerCinema = append(stats.PerCinema, entry)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("iterate per-cinema stats: %w", err)
	}
	return stats, nil
}
