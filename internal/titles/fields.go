package titles

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	yearPattern     = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	durationPattern = regexp.MustCompile(`(\d+)\s*min`)
)

// ExtractYear pulls a plausible 4-digit release year out of free-form scraped
// text. Returns 0 when nothing in the 1900-2099 range is present.
func ExtractYear(text string) int {
	match := yearPattern.FindString(text)
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return year
}

// NormalizeDuration rewrites runtimes like "96min" or "96  MIN" as "96 min".
// Text without a recognizable minute count passes through trimmed.
func NormalizeDuration(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if m := durationPattern.FindStringSubmatch(strings.ToLower(text)); m != nil {
		return m[1] + " min"
	}
	return text
}
