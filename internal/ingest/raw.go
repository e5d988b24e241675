package ingest

import (
	"encoding/json"
	"strings"
)

// RawMovie is one scraped listing entry, shape-normalized across cinemas.
// Only TitleEN is required; everything else is best-effort scraper output.
type RawMovie struct {
	TitleEN             string        `json:"title_en"`
	TitleZH             string        `json:"title_zh"`
	Director            string        `json:"director"`
	Year                string        `json:"year"`
	Duration            string        `json:"duration"`
	Language            string        `json:"language"`
	OverviewEN          string        `json:"overview_en"`
	OverviewZH          string        `json:"overview_zh"`
	ImageURL            string        `json:"image_url"`
	TrailerURL          string        `json:"trailer_url"`
	DetailURL           string        `json:"detail_url"`
	IMDbID              string        `json:"imdb_id"`
	TMDBID              int64         `json:"tmdb_id"`
	HasQA               bool          `json:"has_qa"`
	QADetails           string        `json:"qa_details"`
	HasIntroduction     bool          `json:"has_introduction"`
	IntroductionDetails string        `json:"introduction_details"`
	ShowDates           RawShowDates  `json:"show_dates"`
}

// RawShowDates distinguishes a scrape that omitted show_dates from one that
// sent an empty list. Absence says nothing about the schedule; presence is
// authoritative for the (movie, cinema) pair even when the list is empty.
type RawShowDates struct {
	Present bool
	Dates   []RawShowDate
}

func (d *RawShowDates) UnmarshalJSON(data []byte) error {
	d.Present = true
	if strings.TrimSpace(string(data)) == "null" {
		d.Dates = nil
		return nil
	}
	return json.Unmarshal(data, &d.Dates)
}

// RawShowDate groups the showtimes of one listing date.
type RawShowDate struct {
	Date  string        `json:"date"`
	Times []RawShowtime `json:"times"`
}

// RawShowtime is one showing slot. Older scraper exports wrote bare time
// strings instead of objects, so decoding accepts both.
type RawShowtime struct {
	Time      string `json:"time"`
	TicketURL string `json:"ticket_url"`
	SoldOut   bool   `json:"sold_out"`
}

// UnmarshalJSON accepts either `"6:35pm"` or
// `{"time": "6:35pm", "ticket_url": ..., "sold_out": ...}`.
func (s *RawShowtime) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*s = RawShowtime{Time: value}
		return nil
	}
	type alias RawShowtime
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*s = RawShowtime(decoded)
	return nil
}
