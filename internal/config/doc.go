// Package config loads, normalizes, and validates marquee configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// TMDB_API_KEY and OMDB_API_KEY. The Config type centralizes every knob the
// CLI and API server need; catalog clients receive their settings at
// construction time and never read the environment themselves.
package config
