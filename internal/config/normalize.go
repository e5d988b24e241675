package config

import (
	"os"
	"strings"
)

// normalize expands paths, applies environment fallbacks, and trims string
// fields so validation sees canonical values.
func (c *Config) normalize() error {
	var err error
	if c.Paths.DataDir, err = expandPath(strings.TrimSpace(c.Paths.DataDir)); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return err
	}
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)

	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	if c.TMDB.APIKey == "" {
		c.TMDB.APIKey = strings.TrimSpace(os.Getenv("TMDB_API_KEY"))
	}
	c.TMDB.BaseURL = strings.TrimRight(strings.TrimSpace(c.TMDB.BaseURL), "/")
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)
	c.TMDB.OriginalLanguage = strings.TrimSpace(c.TMDB.OriginalLanguage)

	c.OMDb.APIKey = strings.TrimSpace(c.OMDb.APIKey)
	if c.OMDb.APIKey == "" {
		c.OMDb.APIKey = strings.TrimSpace(os.Getenv("OMDB_API_KEY"))
	}
	c.OMDb.BaseURL = strings.TrimSpace(c.OMDb.BaseURL)

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	if c.Enrichment.RecentDays <= 0 {
		c.Enrichment.RecentDays = defaultRecentDays
	}
	if c.Enrichment.ThrottleMillis < 0 {
		c.Enrichment.ThrottleMillis = defaultThrottleMillis
	}
	if c.Enrichment.RequestTimeoutSeconds <= 0 {
		c.Enrichment.RequestTimeoutSeconds = defaultRequestTimeoutSeconds
	}
	return nil
}
