package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Cinema names as the scrapers report them; also used as provenance tags in
// the store.
const (
	CinemaMetrograph = "Metrograph"
	CinemaFilmForum  = "Film Forum"
)

// DecodeMetrograph reads a Metrograph scrape export. The current scraper
// writes an object keyed by title; earlier exports wrote a plain array, and
// both are accepted.
func DecodeMetrograph(r io.Reader) ([]RawMovie, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read metrograph export: %w", err)
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return decodeMovieArray(data, "metrograph")
	}

	var keyed map[string]RawMovie
	if err := json.Unmarshal(data, &keyed); err != nil {
		return nil, fmt.Errorf("decode metrograph export: %w", err)
	}
	movies := make([]RawMovie, 0, len(keyed))
	for key, movie := range keyed {
		if movie.TitleEN == "" {
			movie.TitleEN = key
		}
		movies = append(movies, movie)
	}
	// Map iteration order is random; keep imports deterministic.
	sort.Slice(movies, func(i, j int) bool { return movies[i].TitleEN < movies[j].TitleEN })
	return movies, nil
}

// DecodeFilmForum reads a Film Forum scrape export, which is always an array.
func DecodeFilmForum(r io.Reader) ([]RawMovie, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read film forum export: %w", err)
	}
	return decodeMovieArray(data, "film forum")
}

func decodeMovieArray(data []byte, source string) ([]RawMovie, error) {
	var movies []RawMovie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, fmt.Errorf("decode %s export: %w", source, err)
	}
	return movies, nil
}
