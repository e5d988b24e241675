// Package store persists canonical movies and screenings in SQLite.
//
// The Store owns connection setup (WAL, foreign keys, busy timeout), schema
// initialization, and every read/write path the pipeline uses. Writes retry
// with exponential backoff when a concurrently running ingest, enrichment, or
// API process holds the database, and partial movie updates go through the
// typed MoviePatch so a merge can never null out a field it did not set.
//
// Screenings carry no unique constraint on (movie_id, date, time); the
// replace-per-run ingest policy keeps the table clean and CleanDuplicateScreenings
// converges any duplicates left behind by interrupted runs.
package store
