package language

import "unicode"

// asciiLetterThreshold is the fraction of ASCII letters (over non-whitespace
// runes) above which text is treated as English.
const asciiLetterThreshold = 0.8

// IsEffectivelyEnglish reports whether text reads as plain English. Empty or
// whitespace-only input returns true: callers use the vacuous default to mean
// "no evidence this is foreign".
func IsEffectivelyEnglish(text string) bool {
	letters := 0
	total := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			letters++
		}
	}
	if total == 0 {
		return true
	}
	return float64(letters)/float64(total) > asciiLetterThreshold
}
