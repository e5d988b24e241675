package titles

import (
	"regexp"
	"strings"
)

var (
	formatMarkerPattern  = regexp.MustCompile(`\s*\[[^\]]*\]`)
	possessivePattern    = regexp.MustCompile(`^.*?['\x{2019}]s\s+`)
	trailingAndPattern   = regexp.MustCompile(`\s+and\s+.*$`)
	parentheticalPattern = regexp.MustCompile(`\s*\([^)]*\)\s*`)
	punctuationPattern   = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
)

// CleanForDisplay collapses whitespace runs and trims the title. Prefixes,
// bracketed format markers, and subtitle punctuation survive; this is the form
// persisted and shown to users.
func CleanForDisplay(title string) string {
	return collapseWhitespace(title)
}

// CleanForSearch reduces a scraped title to the form most likely to hit in an
// external catalog's fuzzy search. The pipeline runs named single-purpose
// stages in a fixed order; the whole transform is idempotent.
func CleanForSearch(title string) string {
	title = stripFormatMarkers(title)
	title = resolveColonSegments(title)
	title = stripPossessivePrefix(title)
	title = stripTrailingAndClause(title)
	title = stripParentheticals(title)
	title = replacePunctuation(title)
	// Punctuation replacement can surface a new and-clause ("Rock-and-Roll"
	// becomes "Rock and Roll"); strip once more so the transform is
	// idempotent.
	title = stripTrailingAndClause(title)
	return collapseWhitespace(title)
}

// stripFormatMarkers removes bracketed markers such as "[DCP]" or "[35mm]".
func stripFormatMarkers(title string) string {
	return formatMarkerPattern.ReplaceAllString(title, "")
}

// resolveColonSegments handles the two meanings of a colon in listings. A
// multi-word head is a series title with a subtitle ("Blade Runner: The Final
// Cut" -> "Blade Runner"); a single-word head is a presenter or strand label
// ("Godard: Breathless" -> "Breathless").
func resolveColonSegments(title string) string {
	head, tail, found := strings.Cut(title, ":")
	if !found {
		return title
	}
	head = strings.TrimSpace(head)
	tail = strings.TrimSpace(tail)
	if len(strings.Fields(head)) > 1 {
		return head
	}
	if tail == "" {
		return head
	}
	// Strand labels can stack ("ACE Presents" is handled above; "Godard:
	// Blade Runner: The Final Cut" needs another pass on the tail).
	return resolveColonSegments(tail)
}

// stripPossessivePrefix drops attributions like "Jean-Luc Godard's ".
func stripPossessivePrefix(title string) string {
	return possessivePattern.ReplaceAllString(title, "")
}

// stripTrailingAndClause drops double-feature tails like " and La Tour".
func stripTrailingAndClause(title string) string {
	return trailingAndPattern.ReplaceAllString(title, "")
}

func stripParentheticals(title string) string {
	return parentheticalPattern.ReplaceAllString(title, " ")
}

func replacePunctuation(title string) string {
	return punctuationPattern.ReplaceAllString(title, " ")
}

func collapseWhitespace(title string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(title, " "))
}

// FirstWords returns the first n whitespace-delimited words of s. Fewer words
// than n returns s unchanged (modulo whitespace normalization).
func FirstWords(s string, n int) string {
	fields := strings.Fields(s)
	if n <= 0 || len(fields) == 0 {
		return ""
	}
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}
