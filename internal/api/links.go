package api

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	letterboxdDropPattern   = regexp.MustCompile(`[^\w\s-]`)
	letterboxdHyphenPattern = regexp.MustCompile(`\s+`)
)

// DoubanSearchURL builds a Douban search link, preferring the localized
// title. Returns "" when neither title is known.
func DoubanSearchURL(titleZH, titleEN string, year int) string {
	query := titleZH
	if query == "" {
		query = titleEN
	}
	if query == "" {
		return ""
	}
	if year > 0 {
		query = fmt.Sprintf("%s %d", query, year)
	}
	return "https://www.douban.com/search?q=" + url.QueryEscape(query)
}

// LetterboxdURL builds a Letterboxd film link. A known cross-reference id
// gives a stable redirect; otherwise the title is slugified.
func LetterboxdURL(imdbID, titleEN string, year int) string {
	if imdbID != "" {
		return fmt.Sprintf("https://letterboxd.com/imdb/%s/", imdbID)
	}
	if titleEN == "" {
		return ""
	}
	slug := strings.ToLower(titleEN)
	slug = letterboxdDropPattern.ReplaceAllString(slug, "")
	slug = letterboxdHyphenPattern.ReplaceAllString(strings.TrimSpace(slug), "-")
	if slug == "" {
		return ""
	}
	link := "https://letterboxd.com/film/" + slug
	if year > 0 {
		link = fmt.Sprintf("%s-%d", link, year)
	}
	return link
}
