// Package tmdb provides access to The Movie Database, the primary enrichment
// catalog.
//
// The client issues fuzzy title searches, per-language detail fetches with
// credits/external-ids/videos appended, IMDb-id lookups, and translation
// listings. Language is chosen per call so enrichment can request the same
// movie in the localized and original languages and merge the two.
package tmdb
