package reconcile

import (
	"strings"

	"marquee/internal/catalog/omdb"
	"marquee/internal/language"
	"marquee/internal/store"
)

// BuildPatch merges a catalog detail record into a movie row, producing the
// partial update to apply. Every rule is independent: a field the record has
// nothing for stays out of the patch entirely.
func BuildPatch(movie *store.Movie, record DetailRecord) store.MoviePatch {
	var patch store.MoviePatch
	if movie == nil {
		return patch
	}

	if title := record.TitleZH; title != "" {
		switch {
		case !language.IsEffectivelyEnglish(title):
			if title != movie.TitleZH {
				patch.TitleZH = ptr(title)
			}
		case movie.TitleEN != "":
			// The catalog echoed the original title instead of a
			// translation; mask the gap with the original rather than
			// storing a fake localized title. A localized title already
			// set from a genuine translation is never regressed this way.
			if movie.TitleZH == "" || language.IsEffectivelyEnglish(movie.TitleZH) {
				if movie.TitleEN != movie.TitleZH {
					patch.TitleZH = ptr(movie.TitleEN)
				}
			}
		}
	}

	if record.OverviewZH != "" && record.OverviewZH != movie.OverviewZH {
		patch.OverviewZH = ptr(record.OverviewZH)
	}
	if record.OverviewEN != "" && record.OverviewEN != movie.OverviewEN {
		patch.OverviewEN = ptr(record.OverviewEN)
	}
	if record.DirectorEN != "" && record.DirectorEN != movie.Director {
		patch.Director = ptr(record.DirectorEN)
	}
	if record.DirectorZH != "" && record.DirectorZH != movie.DirectorZH {
		patch.DirectorZH = ptr(record.DirectorZH)
	}
	if record.TMDBID > 0 && record.TMDBID != movie.TMDBID {
		patch.TMDBID = ptr(record.TMDBID)
	}
	if record.IMDbID != "" && record.IMDbID != movie.IMDbID {
		patch.IMDbID = ptr(record.IMDbID)
	}
	if record.PosterURL != "" && record.PosterURL != movie.ImageURL {
		patch.ImageURL = ptr(record.PosterURL)
	}
	if record.TrailerURL != "" && record.TrailerURL != movie.TrailerURL {
		patch.TrailerURL = ptr(record.TrailerURL)
	}
	if record.Rating > 0 && record.Rating <= 10 && record.Rating != movie.Rating {
		patch.Rating = ptr(record.Rating)
	}
	return patch
}

// BuildOMDbPatch merges a secondary-catalog record into a movie row. The
// secondary catalog only ever fills gaps: fields the movie already holds are
// left alone even when the record disagrees.
func BuildOMDbPatch(movie *store.Movie, record *omdb.Record) store.MoviePatch {
	var patch store.MoviePatch
	if movie == nil || record == nil {
		return patch
	}
	if record.IMDbID != "" && movie.IMDbID == "" {
		patch.IMDbID = ptr(record.IMDbID)
	}
	if record.Director != "" && movie.Director == "" {
		patch.Director = ptr(record.Director)
	}
	if record.Plot != "" && movie.OverviewEN == "" {
		patch.OverviewEN = ptr(record.Plot)
	}
	if record.Rating > 0 && record.Rating <= 10 && movie.Rating == 0 {
		patch.Rating = ptr(record.Rating)
	}
	return patch
}

// LocalizedOverviewPatch wraps a fallback-sourced localized synopsis as a
// patch, applying the same non-empty-wins rule as the main merge.
func LocalizedOverviewPatch(movie *store.Movie, overview string) store.MoviePatch {
	var patch store.MoviePatch
	overview = strings.TrimSpace(overview)
	if movie == nil || overview == "" || movie.OverviewZH != "" {
		return patch
	}
	patch.OverviewZH = ptr(overview)
	return patch
}

func ptr[T any](v T) *T {
	return &v
}
