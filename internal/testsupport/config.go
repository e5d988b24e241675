package testsupport

import (
	"path/filepath"
	"testing"

	"marquee/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.TMDB.APIKey = "test"
	cfg.OMDb.APIKey = "test"
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.APIBind = "127.0.0.1:0"
	cfg.Enrichment.ThrottleMillis = 0
	return &cfg
}
