// Package ingest turns scraped cinema listings into movie and screening rows.
//
// Each cinema exports its own JSON shape (Metrograph keys an object by title,
// Film Forum emits an array), so per-source decoders normalize to one raw
// record type before import. Importing a batch upserts movies keyed by display
// title and cinema and replaces that cinema's screenings per movie, leaving
// other cinemas' rows for the same film untouched.
package ingest
