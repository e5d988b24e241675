package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateOMDb(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if c.TMDB.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/marquee/config.toml"
		}
		return fmt.Errorf("tmdb.api_key is required. Set TMDB_API_KEY env var or edit %s (create with 'marquee config init')", defaultPath)
	}
	if c.TMDB.BaseURL == "" {
		return errors.New("tmdb.base_url must be set")
	}
	for _, tag := range []string{c.TMDB.Language, c.TMDB.OriginalLanguage} {
		if tag == "" {
			return errors.New("tmdb.language and tmdb.original_language must be set")
		}
		if _, err := language.Parse(tag); err != nil {
			return fmt.Errorf("tmdb language tag %q: %w", tag, err)
		}
	}
	return nil
}

func (c *Config) validateOMDb() error {
	if !c.OMDb.Enabled {
		return nil
	}
	if c.OMDb.APIKey == "" {
		return errors.New("omdb.api_key must be set when omdb.enabled is true (or set OMDB_API_KEY)")
	}
	if c.OMDb.BaseURL == "" {
		return errors.New("omdb.base_url must be set when omdb.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
