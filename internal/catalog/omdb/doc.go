// Package omdb provides access to the OMDb API, the secondary enrichment
// catalog. It is consulted only for fields the primary catalog left empty,
// looked up by IMDb id when one is known and by title and year otherwise.
package omdb
