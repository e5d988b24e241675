package omdb

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

// Record is an OMDb movie record with the catalog's "N/A" sentinel already
// mapped to empty strings.
type Record struct {
	Title    string
	Year     string
	Director string
	Plot     string
	Language string
	Runtime  string
	IMDbID   string
	// Rating is the IMDb rating on a 0-10 scale; zero when absent.
	Rating float64
}

type rawRecord struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Director   string `json:"Director"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Runtime    string `json:"Runtime"`
	IMDbID     string `json:"imdbID"`
	IMDbRating string `json:"imdbRating"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// Lookuper defines the OMDb operations used by enrichment.
type Lookuper interface {
	LookupByIMDbID(ctx context.Context, imdbID string) (*Record, error)
	LookupByTitle(ctx context.Context, title string, year int) (*Record, error)
}

// Client provides access to the OMDb API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Lookuper = (*Client)(nil)

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

// New creates an OMDb client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("omdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("omdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// LookupByIMDbID fetches the record for an IMDb id. Returns nil when the
// catalog has no match.
func (c *Client) LookupByIMDbID(ctx context.Context, imdbID string) (*Record, error) {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return nil, errors.New("imdb id must not be empty")
	}
	params := url.Values{}
	params.Set("i", imdbID)
	return c.lookup(ctx, params)
}

// LookupByTitle fetches the record matching a title, restricted to a release
// year when positive. Returns nil when the catalog has no match.
func (c *Client) LookupByTitle(ctx context.Context, title string, year int) (*Record, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title must not be empty")
	}
	params := url.Values{}
	params.Set("t", title)
	if year > 0 {
		params.Set("y", strconv.Itoa(year))
	}
	return c.lookup(ctx, params)
}

func (c *Client) lookup(ctx context.Context, params url.Values) (*Record, error) {
	endpoint, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return nil, fmt.Errorf("parse omdb url: %w", err)
	}
	params.Set("apikey", c.apiKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("omdb returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var raw rawRecord
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode omdb response: %w", err)
	}
	// OMDb reports "movie not found" inside a 200 response.
	if !strings.EqualFold(raw.Response, "True") {
		return nil, nil
	}
	return raw.toRecord(), nil
}

func (r *rawRecord) toRecord() *Record {
	record := &Record{
		Title:    clearNA(r.Title),
		Year:     clearNA(r.Year),
		Director: clearNA(r.Director),
		Plot:     clearNA(r.Plot),
		Language: clearNA(r.Language),
		Runtime:  clearNA(r.Runtime),
		IMDbID:   clearNA(r.IMDbID),
	}
	if rating := clearNA(r.IMDbRating); rating != "" {
		if parsed, err := strconv.ParseFloat(rating, 64); err == nil && parsed >= 0 && parsed <= 10 {
			record.Rating = parsed
		}
	}
	return record
}

func clearNA(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "N/A") {
		return ""
	}
	return value
}
