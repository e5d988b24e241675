package reconcile

import (
	"strings"

	"marquee/internal/catalog/tmdb"
)

const (
	posterBaseURL     = "https://image.tmdb.org/t/p/w500"
	youtubeWatchURL   = "https://www.youtube.com/watch?v="
	directorCreditJob = "Director"
)

// DetailRecord is the merged view of a movie's localized and English catalog
// detail responses. Empty fields mean the catalog had nothing to offer.
type DetailRecord struct {
	TMDBID     int64
	TitleZH    string
	OverviewZH string
	OverviewEN string
	DirectorEN string
	DirectorZH string
	IMDbID     string
	PosterURL  string
	TrailerURL string
	Rating     float64
}

// FromDetails builds a DetailRecord from the localized detail response and an
// optional English one. The localized response supplies the localized title,
// synopsis, and credits plus the external ids, poster, trailer, and rating;
// the English response contributes the English synopsis and director names.
func FromDetails(localized, english *tmdb.Details) DetailRecord {
	if localized == nil {
		return DetailRecord{}
	}
	record := DetailRecord{
		TMDBID:     localized.ID,
		TitleZH:    strings.TrimSpace(localized.Title),
		OverviewZH: strings.TrimSpace(localized.Overview),
		DirectorZH: joinDirectors(localized.Credits),
		IMDbID:     strings.TrimSpace(localized.ExternalIDs.IMDbID),
		Rating:     localized.VoteAverage,
	}
	if path := strings.TrimSpace(localized.PosterPath); path != "" {
		record.PosterURL = posterBaseURL + path
	}
	if key := firstYouTubeTrailer(localized.Videos); key != "" {
		record.TrailerURL = youtubeWatchURL + key
	}
	if english != nil {
		record.OverviewEN = strings.TrimSpace(english.Overview)
		record.DirectorEN = joinDirectors(english.Credits)
	}
	return record
}

// joinDirectors filters the crew to director credits and joins the names in
// catalog listing order.
func joinDirectors(credits tmdb.Credits) string {
	var names []string
	for _, member := range credits.Crew {
		if member.Job != directorCreditJob {
			continue
		}
		if name := strings.TrimSpace(member.Name); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

func firstYouTubeTrailer(videos tmdb.Videos) string {
	for _, video := range videos.Results {
		if video.Type == "Trailer" && video.Site == "YouTube" {
			return strings.TrimSpace(video.Key)
		}
	}
	return ""
}
