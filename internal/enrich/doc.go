// Package enrich drives the metadata pipeline over movies that still have
// gaps: it resolves each one to a catalog identity, fetches bilingual detail
// records, merges them into the store, and consults the secondary catalog for
// whatever the primary one left empty. Runs are convergent; a movie that is
// already complete is skipped, so re-running after a partial failure is cheap.
package enrich
