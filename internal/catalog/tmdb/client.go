package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Result represents a single TMDB search match.
type Result struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	PosterPath    string  `json:"poster_path"`
	Popularity    float64 `json:"popularity"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int64   `json:"vote_count"`
}

// Response models the TMDB paginated search response.
type Response struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// CrewMember is one entry of a movie's crew credits.
type CrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// Credits carries the crew listing of a detail response.
type Credits struct {
	Crew []CrewMember `json:"crew"`
}

// ExternalIDs carries cross-reference identifiers embedded in a detail
// response.
type ExternalIDs struct {
	IMDbID string `json:"imdb_id"`
}

// Video is one trailer/clip entry of a detail response.
type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// Videos wraps the video listing of a detail response.
type Videos struct {
	Results []Video `json:"results"`
}

// Details models a movie detail response with credits, external ids, and
// videos appended.
type Details struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Overview    string      `json:"overview"`
	ReleaseDate string      `json:"release_date"`
	PosterPath  string      `json:"poster_path"`
	VoteAverage float64     `json:"vote_average"`
	Credits     Credits     `json:"credits"`
	ExternalIDs ExternalIDs `json:"external_ids"`
	Videos      Videos      `json:"videos"`
}

// TranslationData carries the translated fields of one translation entry.
type TranslationData struct {
	Title    string `json:"title"`
	Overview string `json:"overview"`
}

// Translation is one entry of the translations listing.
type Translation struct {
	ISO639_1 string          `json:"iso_639_1"`
	Data     TranslationData `json:"data"`
}

// Translations models the translations endpoint response.
type Translations struct {
	ID           int64         `json:"id"`
	Translations []Translation `json:"translations"`
}

// findResponse models the /find/{imdb_id} response; only movie results are
// used.
type findResponse struct {
	MovieResults []Result `json:"movie_results"`
}

// SearchOptions contains optional parameters for a movie search.
type SearchOptions struct {
	// Year restricts matches to a primary release year when positive.
	Year int
	// Language overrides the client's default language tag.
	Language string
}

// Searcher defines the TMDB operations used by identification and enrichment.
type Searcher interface {
	SearchMovie(ctx context.Context, query string, opts SearchOptions) (*Response, error)
	MovieDetails(ctx context.Context, movieID int64, language string) (*Details, error)
	FindByIMDbID(ctx context.Context, imdbID string) (*Result, error)
	MovieTranslations(ctx context.Context, movieID int64) (*Translations, error)
}

// Client provides access to the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

var _ Searcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default per-call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a TMDB client. language is the default tag used when a call does
// not specify one.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   strings.TrimSpace(language),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchMovie performs a fuzzy movie search. The catalog's own relevance
// ranking is preserved in the result order.
func (c *Client) SearchMovie(ctx context.Context, query string, opts SearchOptions) (*Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")
	if opts.Year > 0 {
		params.Set("primary_release_year", strconv.Itoa(opts.Year))
	}
	c.setLanguage(params, opts.Language)

	var payload Response
	if err := c.get(ctx, "/search/movie", params, &payload); err != nil {
		return nil, fmt.Errorf("tmdb search %q: %w", query, err)
	}
	return &payload, nil
}

// MovieDetails fetches a movie's detail record in the given language with
// credits, external ids, and videos appended.
func (c *Client) MovieDetails(ctx context.Context, movieID int64, language string) (*Details, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	params := url.Values{}
	params.Set("append_to_response", "credits,external_ids,videos")
	c.setLanguage(params, language)

	var payload Details
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), params, &payload); err != nil {
		return nil, fmt.Errorf("tmdb details %d: %w", movieID, err)
	}
	return &payload, nil
}

// FindByIMDbID resolves a movie through its IMDb cross-reference id. Returns
// nil when the catalog knows no movie for the id.
func (c *Client) FindByIMDbID(ctx context.Context, imdbID string) (*Result, error) {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return nil, errors.New("imdb id must not be empty")
	}
	params := url.Values{}
	params.Set("external_source", "imdb_id")
	c.setLanguage(params, "")

	var payload findResponse
	if err := c.get(ctx, "/find/"+url.PathEscape(imdbID), params, &payload); err != nil {
		return nil, fmt.Errorf("tmdb find %s: %w", imdbID, err)
	}
	if len(payload.MovieResults) == 0 {
		return nil, nil
	}
	result := payload.MovieResults[0]
	return &result, nil
}

// MovieTranslations lists the translations the catalog holds for a movie.
func (c *Client) MovieTranslations(ctx context.Context, movieID int64) (*Translations, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	var payload Translations
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/translations", movieID), url.Values{}, &payload); err != nil {
		return nil, fmt.Errorf("tmdb translations %d: %w", movieID, err)
	}
	return &payload, nil
}

func (c *Client) setLanguage(params url.Values, override string) {
	language := strings.TrimSpace(override)
	if language == "" {
		language = c.language
	}
	if language != "" {
		params.Set("language", language)
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values, payload any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	params.Set("api_key", c.apiKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb returned %d (latency=%v)", resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(payload); err != nil {
		return fmt.Errorf("decode tmdb response: %w", err)
	}
	return nil
}
