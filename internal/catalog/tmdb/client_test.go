package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"marquee/internal/catalog/tmdb"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := tmdb.New("", "https://example.com", "zh-CN"); err == nil {
		t.Fatal("expected error when api key missing")
	}
}

func TestSearchMovieSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != "key" {
			t.Fatalf("expected api_key query parameter, got %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("language") != "zh-CN" {
			t.Fatalf("expected default language, got %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("primary_release_year") != "1960" {
			t.Fatalf("expected release year filter, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":269,"title":"精疲力尽","original_title":"À bout de souffle"}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "zh-CN")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	resp, err := client.SearchMovie(context.Background(), "Breathless", tmdb.SearchOptions{Year: 1960})
	if err != nil {
		t.Fatalf("SearchMovie returned error: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].ID != 269 {
		t.Fatalf("unexpected response: %#v", resp)
	}
	if resp.Results[0].Title != "精疲力尽" {
		t.Fatalf("unexpected localized title %q", resp.Results[0].Title)
	}
}

func TestSearchMovieLanguageOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("language") != "en-US" {
			t.Fatalf("expected language override, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "zh-CN")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.SearchMovie(context.Background(), "Example", tmdb.SearchOptions{Language: "en-US"}); err != nil {
		t.Fatalf("SearchMovie returned error: %v", err)
	}
}

func TestSearchMovieHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status_code":500}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if _, err := client.SearchMovie(context.Background(), "fail", tmdb.SearchOptions{}); err == nil {
		t.Fatal("expected error when TMDB returns non-200")
	}
}

func TestSearchMovieEmptyQuery(t *testing.T) {
	client, err := tmdb.New("key", "https://example.com", "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.SearchMovie(context.Background(), "  ", tmdb.SearchOptions{}); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestMovieDetailsAppendsCredits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/269" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("append_to_response") != "credits,external_ids,videos" {
			t.Fatalf("expected appended sub-resources, got %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("language") != "en-US" {
			t.Fatalf("expected requested language, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 269,
			"title": "Breathless",
			"overview": "A petty thief...",
			"release_date": "1960-03-16",
			"poster_path": "/poster.jpg",
			"vote_average": 7.8,
			"credits": {"crew": [{"name": "Jean-Luc Godard", "job": "Director"}]},
			"external_ids": {"imdb_id": "tt0053472"},
			"videos": {"results": [{"key": "abc123", "site": "YouTube", "type": "Trailer"}]}
		}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "zh-CN")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	details, err := client.MovieDetails(context.Background(), 269, "en-US")
	if err != nil {
		t.Fatalf("MovieDetails returned error: %v", err)
	}
	if details.ExternalIDs.IMDbID != "tt0053472" {
		t.Fatalf("unexpected imdb id %q", details.ExternalIDs.IMDbID)
	}
	if len(details.Credits.Crew) != 1 || details.Credits.Crew[0].Job != "Director" {
		t.Fatalf("unexpected credits: %#v", details.Credits)
	}
	if len(details.Videos.Results) != 1 || details.Videos.Results[0].Key != "abc123" {
		t.Fatalf("unexpected videos: %#v", details.Videos)
	}
}

func TestMovieDetailsRejectsInvalidID(t *testing.T) {
	client, err := tmdb.New("key", "https://example.com", "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.MovieDetails(context.Background(), 0, ""); err == nil {
		t.Fatal("expected error for non-positive movie id")
	}
}

func TestFindByIMDbID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/find/tt0053472" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("external_source") != "imdb_id" {
			t.Fatalf("expected external_source parameter, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"movie_results":[{"id":269,"title":"精疲力尽"}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "zh-CN")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	result, err := client.FindByIMDbID(context.Background(), "tt0053472")
	if err != nil {
		t.Fatalf("FindByIMDbID returned error: %v", err)
	}
	if result == nil || result.ID != 269 {
		t.Fatalf("unexpected result: %#v", result)
	}
}

func TestFindByIMDbIDNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"movie_results":[]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	result, err := client.FindByIMDbID(context.Background(), "tt9999999")
	if err != nil {
		t.Fatalf("FindByIMDbID returned error: %v", err)
	}
	if result != nil {
		t.Fatalf("expected nil result for unknown id, got %#v", result)
	}
}

func TestMovieTranslations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/269/translations" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":269,"translations":[{"iso_639_1":"zh","data":{"title":"精疲力尽","overview":"简介"}}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "zh-CN")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	translations, err := client.MovieTranslations(context.Background(), 269)
	if err != nil {
		t.Fatalf("MovieTranslations returned error: %v", err)
	}
	if len(translations.Translations) != 1 || translations.Translations[0].Data.Overview != "简介" {
		t.Fatalf("unexpected translations: %#v", translations)
	}
}
