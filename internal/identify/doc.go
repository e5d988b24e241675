// Package identify resolves a scraped movie title to a catalog identity.
//
// Listing titles carry venue noise the catalog does not know about, so
// resolution walks a chain of progressively looser search attempts and stops
// at the first one that yields a result. The catalog's own relevance ranking
// decides between multiple hits.
package identify
