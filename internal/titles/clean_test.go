package titles

import "testing"

func TestCleanForDisplay(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"collapses runs", "The  Long\t Goodbye", "The Long Goodbye"},
		{"trims", "  Breathless  ", "Breathless"},
		{"keeps format markers", "Breathless [35mm]", "Breathless [35mm]"},
		{"keeps subtitles", "Blade Runner: The Final Cut", "Blade Runner: The Final Cut"},
		{"empty", "", ""},
		{"whitespace only", "   \t ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanForDisplay(tc.input); got != tc.want {
				t.Fatalf("CleanForDisplay(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCleanForSearch(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"possessive with format marker", "Jean-Luc Godard's Breathless [35mm]", "Breathless"},
		{"series subtitle truncated", "Blade Runner: The Final Cut", "Blade Runner"},
		{"strand label stripped", "Godard: Breathless", "Breathless"},
		{"stacked labels", "Metrograph: Godard: Breathless", "Breathless"},
		{"double feature tail", "Breathless and La Tour", "Breathless"},
		{"and clause surfaced by punctuation", "Rock-and-Roll", "Rock"},
		{"parenthetical aside", "Solaris (1972 Restoration)", "Solaris"},
		{"punctuation to spaces", "WALL·E", "WALL E"},
		{"accented letters kept", "Siméon", "Siméon"},
		{"empty", "", ""},
		{"whitespace only", "  \t\n ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanForSearch(tc.input); got != tc.want {
				t.Fatalf("CleanForSearch(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCleanForSearchIdempotent(t *testing.T) {
	inputs := []string{
		"Jean-Luc Godard's Breathless [35mm]",
		"Blade Runner: The Final Cut",
		"Godard: Blade Runner: The Final Cut",
		"ACE Presents: In the Mood for Love (4K)",
		"Breathless and La Tour",
		"Rock-and-Roll",
		"花樣年華",
		"Siméon",
		"",
		"   ",
		"A: B: C",
	}
	for _, input := range inputs {
		once := CleanForSearch(input)
		twice := CleanForSearch(once)
		if once != twice {
			t.Errorf("CleanForSearch not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestFirstWords(t *testing.T) {
	if got := FirstWords("the long goodbye again", 2); got != "the long" {
		t.Fatalf("FirstWords = %q", got)
	}
	if got := FirstWords("solo", 2); got != "solo" {
		t.Fatalf("FirstWords short input = %q", got)
	}
	if got := FirstWords("", 2); got != "" {
		t.Fatalf("FirstWords empty input = %q", got)
	}
}

func TestExtractYear(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"1972", 1972},
		{"France, 1960, 90min", 1960},
		{"2024 restoration", 2024},
		{"no year here", 0},
		{"1850", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := ExtractYear(tc.input); got != tc.want {
			t.Errorf("ExtractYear(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeDuration(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"96min", "96 min"},
		{"96  MIN", "96 min"},
		{"102 minutes", "102 min"},
		{"two hours", "two hours"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeDuration(tc.input); got != tc.want {
			t.Errorf("NormalizeDuration(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
