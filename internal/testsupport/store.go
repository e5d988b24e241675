package testsupport

import (
	"context"
	"testing"

	"marquee/internal/config"
	"marquee/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// SeedMovie inserts a movie for tests using the provided store.
func SeedMovie(t testing.TB, st *store.Store, title, cinema string) *store.Movie {
	t.Helper()

	movie := &store.Movie{TitleEN: title, Cinema: cinema}
	if _, err := st.UpsertMovie(context.Background(), movie); err != nil {
		t.Fatalf("store.UpsertMovie: %v", err)
	}
	return movie
}
