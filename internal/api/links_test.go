package api_test

import (
	"testing"

	"marquee/internal/api"
)

func TestDoubanSearchURLPrefersLocalizedTitle(t *testing.T) {
	url := api.DoubanSearchURL("精疲力尽", "Breathless", 1960)
	if url != "https://www.douban.com/search?q=%E7%B2%BE%E7%96%B2%E5%8A%9B%E5%B0%BD+1960" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestDoubanSearchURLFallsBackToEnglish(t *testing.T) {
	url := api.DoubanSearchURL("", "Breathless", 0)
	if url != "https://www.douban.com/search?q=Breathless" {
		t.Fatalf("unexpected url %q", url)
	}
	if api.DoubanSearchURL("", "", 1960) != "" {
		t.Fatal("expected empty url without any title")
	}
}

func TestLetterboxdURLPrefersIMDbID(t *testing.T) {
	url := api.LetterboxdURL("tt0053472", "Breathless", 1960)
	if url != "https://letterboxd.com/imdb/tt0053472/" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestLetterboxdURLSlugsTitle(t *testing.T) {
	url := api.LetterboxdURL("", "In the Mood for Love", 2000)
	if url != "https://letterboxd.com/film/in-the-mood-for-love-2000" {
		t.Fatalf("unexpected url %q", url)
	}
	if api.LetterboxdURL("", "", 0) != "" {
		t.Fatal("expected empty url without title or id")
	}
}
