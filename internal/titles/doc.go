// Package titles normalizes scraped movie titles.
//
// Cinemas decorate listings with format markers ("[35mm]"), series prefixes,
// attribution possessives, and double features joined with "and". CleanForDisplay
// keeps all of that and only fixes whitespace; CleanForSearch strips it so the
// remainder can drive an external catalog's fuzzy search. CleanForSearch is lossy
// and must never feed the persisted display title.
package titles
