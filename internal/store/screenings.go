package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

const screeningColumns = `id, COALESCE(movie_id, 0), COALESCE(title_en, ''), cinema, date, time,
	COALESCE(ticket_url, ''), sold_out, created_at, updated_at`

func scanScreening(row interface{ Scan(...any) error }) (*Screening, error) {
	var sc Screening
	var createdAt, updatedAt string
	err := row.Scan(
		&sc.ID, &sc.MovieID, &sc.TitleEN, &sc.Cinema, &sc.Date, &sc.Time,
		&sc.TicketURL, &sc.SoldOut, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	sc.CreatedAt = parseTimestamp(createdAt)
	sc.UpdatedAt = parseTimestamp(updatedAt)
	return &sc, nil
}

// ReplaceScreenings deletes every stored screening for the (movie, cinema)
// pair and inserts the fresh set in one transaction. The cinema's current
// listing page is the source of truth for its own showings; rows from other
// cinemas for the same movie are untouched.
func (s *Store) ReplaceScreenings(ctx context.Context, movieID int64, cinema string, screenings []Screening) error {
	if movieID <= 0 {
		return fmt.Errorf("replace screenings: movie id required")
	}
	if strings.TrimSpace(cinema) == "" {
		return fmt.Errorf("replace screenings: cinema required")
	}
	ctx = ensureContext(ctx)

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM screenings WHERE movie_id = ? AND cinema = ?",
			movieID, cinema,
		); err != nil {
			return fmt.Errorf("delete stale screenings: %w", err)
		}
		for _, sc := range screenings {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO screenings (movie_id, title_en, cinema, date, time, ticket_url, sold_out)
				VALUES (?, NULLIF(?, ''), ?, ?, ?, NULLIF(?, ''), ?)`,
				movieID, sc.TitleEN, cinema, sc.Date, sc.Time, sc.TicketURL, sc.SoldOut,
			); err != nil {
				return fmt.Errorf("insert screening %s %s: %w", sc.Date, sc.Time, err)
			}
		}
		return nil
	})
}

// ListScreeningsForMovie returns all screenings for a movie ordered by date
// and insertion order.
func (s *Store) ListScreeningsForMovie(ctx context.Context, movieID int64) ([]Screening, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+screeningColumns+" FROM screenings WHERE movie_id = ? ORDER BY date, id",
		movieID,
	)
	if err != nil {
		return nil, fmt.Errorf("list screenings for movie %d: %w", movieID, err)
	}
	defer rows.Close()
	return collectScreenings(rows)
}

// ListScreeningsOptions filters and paginates screening listings.
type ListScreeningsOptions struct {
	MovieID  int64
	Cinema   string
	FromDate string
	ToDate   string
	Limit    int
	Offset   int
}

// ListScreenings returns a filtered page of screenings plus the unpaginated
// total.
func (s *Store) ListScreenings(ctx context.Context, opts ListScreeningsOptions) ([]Screening, int, error) {
	ctx = ensureContext(ctx)

	where := []string{"1=1"}
	var args []any
	if opts.MovieID > 0 {
		where = append(where, "movie_id = ?")
		args = append(args, opts.MovieID)
	}
	if strings.TrimSpace(opts.Cinema) != "" {
		where = append(where, "cinema = ?")
		args = append(args, opts.Cinema)
	}
	if opts.FromDate != "" {
		where = append(where, "date >= ?")
		args = append(args, opts.FromDate)
	}
	if opts.ToDate != "" {
		where = append(where, "date <= ?")
		args = append(args, opts.ToDate)
	}
	condition := strings.Join(where, " AND ")

	var total int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM screenings WHERE "+condition, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count screenings: %w", err)
	}

	query := "SELECT " + screeningColumns + " FROM screenings WHERE " + condition +
		" ORDER BY date, time, id"
	if opts.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, opts.Limit, opts.Offset)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list screenings: %w", err)
	}
	defer rows.Close()

	screenings, err := collectScreenings(rows)
	if err != nil {
		return nil, 0, err
	}
	return screenings, total, nil
}

func collectScreenings(rows *sql.Rows) ([]Screening, error) {
	var screenings []Screening
	for rows.Next() {
		sc, err := scanScreening(rows)
		if err != nil {
			return nil, fmt.Errorf("scan screening: %w", err)
		}
		screenings = append(screenings, *sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate screenings: %w", err)
	}
	return screenings, nil
}
