package reconcile_test

import (
	"testing"

	"marquee/internal/catalog/omdb"
	"marquee/internal/catalog/tmdb"
	"marquee/internal/language"
	"marquee/internal/reconcile"
	"marquee/internal/store"
)

func TestFromDetailsMergesBilingualResponses(t *testing.T) {
	localized := &tmdb.Details{
		ID:          269,
		Title:       "精疲力尽",
		Overview:    "巴黎街头小偷米歇尔……",
		PosterPath:  "/poster.jpg",
		VoteAverage: 7.8,
		Credits: tmdb.Credits{Crew: []tmdb.CrewMember{
			{Name: "让-吕克·戈达尔", Job: "Director"},
			{Name: "拉乌尔·库塔尔", Job: "Director of Photography"},
		}},
		ExternalIDs: tmdb.ExternalIDs{IMDbID: "tt0053472"},
		Videos: tmdb.Videos{Results: []tmdb.Video{
			{Key: "clip1", Site: "YouTube", Type: "Clip"},
			{Key: "trailer1", Site: "YouTube", Type: "Trailer"},
		}},
	}
	english := &tmdb.Details{
		ID:       269,
		Title:    "Breathless",
		Overview: "A small-time thief steals a car...",
		Credits: tmdb.Credits{Crew: []tmdb.CrewMember{
			{Name: "Jean-Luc Godard", Job: "Director"},
		}},
	}

	record := reconcile.FromDetails(localized, english)
	if record.TitleZH != "精疲力尽" {
		t.Fatalf("unexpected localized title %q", record.TitleZH)
	}
	if record.DirectorZH != "让-吕克·戈达尔" {
		t.Fatalf("expected only director credits, got %q", record.DirectorZH)
	}
	if record.DirectorEN != "Jean-Luc Godard" {
		t.Fatalf("unexpected english director %q", record.DirectorEN)
	}
	if record.OverviewEN != "A small-time thief steals a car..." {
		t.Fatalf("unexpected english overview %q", record.OverviewEN)
	}
	if record.IMDbID != "tt0053472" {
		t.Fatalf("unexpected imdb id %q", record.IMDbID)
	}
	if record.PosterURL != "https://image.tmdb.org/t/p/w500/poster.jpg" {
		t.Fatalf("unexpected poster url %q", record.PosterURL)
	}
	if record.TrailerURL != "https://www.youtube.com/watch?v=trailer1" {
		t.Fatalf("unexpected trailer url %q", record.TrailerURL)
	}
}

func TestFromDetailsEnglishResponseOptional(t *testing.T) {
	record := reconcile.FromDetails(&tmdb.Details{ID: 269, Title: "精疲力尽"}, nil)
	if record.TMDBID != 269 || record.TitleZH != "精疲力尽" {
		t.Fatalf("unexpected record: %#v", record)
	}
	if record.OverviewEN != "" || record.DirectorEN != "" {
		t.Fatalf("expected english fields empty, got %#v", record)
	}
}

func TestFromDetailsJoinsMultipleDirectors(t *testing.T) {
	english := &tmdb.Details{Credits: tmdb.Credits{Crew: []tmdb.CrewMember{
		{Name: "Joel Coen", Job: "Director"},
		{Name: "Ethan Coen", Job: "Director"},
	}}}
	record := reconcile.FromDetails(&tmdb.Details{ID: 1}, english)
	if record.DirectorEN != "Joel Coen, Ethan Coen" {
		t.Fatalf("unexpected joined directors %q", record.DirectorEN)
	}
}

func TestBuildPatchTakesGenuineLocalizedTitle(t *testing.T) {
	movie := &store.Movie{ID: 1, TitleEN: "Breathless"}
	patch := reconcile.BuildPatch(movie, reconcile.DetailRecord{TitleZH: "精疲力尽"})
	if patch.TitleZH == nil || *patch.TitleZH != "精疲力尽" {
		t.Fatalf("expected localized title set, got %#v", patch.TitleZH)
	}
}

func TestBuildPatchMasksEnglishLookingTitle(t *testing.T) {
	movie := &store.Movie{ID: 1, TitleEN: "Siméon"}
	record := reconcile.DetailRecord{TitleZH: "Simeon"}
	if !language.IsEffectivelyEnglish(record.TitleZH) {
		t.Fatal("precondition: candidate title must classify as english")
	}

	patch := reconcile.BuildPatch(movie, record)
	if patch.TitleZH == nil || *patch.TitleZH != "Siméon" {
		t.Fatalf("expected original title echoed into localized slot, got %#v", patch.TitleZH)
	}
}

func TestBuildPatchNeverRegressesGenuineLocalizedTitle(t *testing.T) {
	movie := &store.Movie{ID: 1, TitleEN: "Breathless", TitleZH: "精疲力尽"}
	patch := reconcile.BuildPatch(movie, reconcile.DetailRecord{TitleZH: "Breathless"})
	if patch.TitleZH != nil {
		t.Fatalf("expected localized title untouched, got %q", *patch.TitleZH)
	}
}

func TestBuildPatchNonEmptyWins(t *testing.T) {
	movie := &store.Movie{
		ID:         1,
		TitleEN:    "Blade Runner: The Final Cut",
		Director:   "",
		OverviewEN: "In a dystopian Los Angeles...",
	}
	record := reconcile.DetailRecord{
		DirectorEN: "Ridley Scott",
		OverviewEN: "",
	}

	patch := reconcile.BuildPatch(movie, record)
	if patch.Director == nil || *patch.Director != "Ridley Scott" {
		t.Fatalf("expected director set, got %#v", patch.Director)
	}
	if patch.OverviewEN != nil {
		t.Fatalf("expected populated overview untouched, got %q", *patch.OverviewEN)
	}
}

func TestBuildPatchSkipsUnchangedFields(t *testing.T) {
	movie := &store.Movie{
		ID:       1,
		TitleEN:  "Breathless",
		TitleZH:  "精疲力尽",
		Rating:   7.8,
		TMDBID:   269,
		IMDbID:   "tt0053472",
		ImageURL: "https://image.tmdb.org/t/p/w500/poster.jpg",
	}
	record := reconcile.DetailRecord{
		TMDBID:    269,
		TitleZH:   "精疲力尽",
		IMDbID:    "tt0053472",
		PosterURL: "https://image.tmdb.org/t/p/w500/poster.jpg",
		Rating:    7.8,
	}

	patch := reconcile.BuildPatch(movie, record)
	if !patch.IsZero() {
		t.Fatalf("expected empty patch for identical data, got %#v", patch)
	}
}

func TestBuildPatchRejectsOutOfRangeRating(t *testing.T) {
	movie := &store.Movie{ID: 1, TitleEN: "Breathless"}
	patch := reconcile.BuildPatch(movie, reconcile.DetailRecord{Rating: 11})
	if patch.Rating != nil {
		t.Fatalf("expected out-of-range rating dropped, got %v", *patch.Rating)
	}
}

func TestBuildOMDbPatchFillsOnlyGaps(t *testing.T) {
	movie := &store.Movie{
		ID:         1,
		TitleEN:    "Breathless",
		Director:   "Jean-Luc Godard",
		OverviewEN: "",
		Rating:     0,
	}
	record := &omdb.Record{
		IMDbID:   "tt0053472",
		Director: "J.L. Godard",
		Plot:     "A small-time thief...",
		Rating:   7.7,
	}

	patch := reconcile.BuildOMDbPatch(movie, record)
	if patch.Director != nil {
		t.Fatalf("expected existing director kept, got %q", *patch.Director)
	}
	if patch.IMDbID == nil || *patch.IMDbID != "tt0053472" {
		t.Fatalf("expected imdb id filled, got %#v", patch.IMDbID)
	}
	if patch.OverviewEN == nil || *patch.OverviewEN != "A small-time thief..." {
		t.Fatalf("expected overview filled, got %#v", patch.OverviewEN)
	}
	if patch.Rating == nil || *patch.Rating != 7.7 {
		t.Fatalf("expected rating filled, got %#v", patch.Rating)
	}
}

func TestBuildOMDbPatchNilRecord(t *testing.T) {
	patch := reconcile.BuildOMDbPatch(&store.Movie{ID: 1, TitleEN: "X"}, nil)
	if !patch.IsZero() {
		t.Fatalf("expected empty patch, got %#v", patch)
	}
}

func TestLocalizedOverviewPatch(t *testing.T) {
	movie := &store.Movie{ID: 1, TitleEN: "Breathless"}
	patch := reconcile.LocalizedOverviewPatch(movie, "巴黎街头小偷米歇尔……")
	if patch.OverviewZH == nil || *patch.OverviewZH != "巴黎街头小偷米歇尔……" {
		t.Fatalf("expected localized overview set, got %#v", patch.OverviewZH)
	}

	filled := &store.Movie{ID: 1, TitleEN: "Breathless", OverviewZH: "已有简介"}
	if patch := reconcile.LocalizedOverviewPatch(filled, "新简介"); !patch.IsZero() {
		t.Fatalf("expected populated overview untouched, got %#v", patch)
	}
}
