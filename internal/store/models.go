package store

import "time"

// Movie is one canonical film known to the system. TitleEN is the
// original-language identity and is never empty; every other field may be
// filled in over time by scrapes and enrichment.
type Movie struct {
	ID                  int64
	TitleEN             string
	TitleZH             string
	Director            string
	DirectorZH          string
	Year                int
	Duration            string
	Language            string
	OverviewEN          string
	OverviewZH          string
	Rating              float64
	TMDBID              int64
	IMDbID              string
	ImageURL            string
	TrailerURL          string
	Cinema              string
	HasQA               bool
	QADetails           string
	HasIntroduction     bool
	IntroductionDetails string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Screening is one scheduled showing of a movie. TitleEN is denormalized so
// the row remains meaningful if the movie is later deleted.
type Screening struct {
	ID        int64
	MovieID   int64
	TitleEN   string
	Cinema    string
	Date      string
	Time      string
	TicketURL string
	SoldOut   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MoviePatch is a typed partial update. A nil field means "leave unchanged";
// a non-nil field is written as-is. Reconciliation builds patches so that a
// field it did not decide on never appears in the UPDATE statement.
type MoviePatch struct {
	TitleZH    *string
	Director   *string
	DirectorZH *string
	Year       *int
	OverviewEN *string
	OverviewZH *string
	Rating     *float64
	TMDBID     *int64
	IMDbID     *string
	ImageURL   *string
	TrailerURL *string
}

// IsZero reports whether the patch sets no fields.
func (p MoviePatch) IsZero() bool {
	return p.TitleZH == nil &&
		p.Director == nil &&
		p.DirectorZH == nil &&
		p.Year == nil &&
		p.OverviewEN == nil &&
		p.OverviewZH == nil &&
		p.Rating == nil &&
		p.TMDBID == nil &&
		p.IMDbID == nil &&
		p.ImageURL == nil &&
		p.TrailerURL == nil
}

// assignments renders the set clauses and arguments for the non-nil fields.
func (p MoviePatch) assignments() ([]string, []any) {
	var clauses []string
	var args []any
	set := func(column string, value any) {
		clauses = append(clauses, column+" = ?")
		args = append(args, value)
	}
	if p.TitleZH != nil {
		set("title_zh", *p.TitleZH)
	}
	if p.Director != nil {
		set("director", *p.Director)
	}
	if p.DirectorZH != nil {
		set("director_zh", *p.DirectorZH)
	}
	if p.Year != nil {
		set("year", *p.Year)
	}
	if p.OverviewEN != nil {
		set("overview_en", *p.OverviewEN)
	}
	if p.OverviewZH != nil {
		set("overview_zh", *p.OverviewZH)
	}
	if p.Rating != nil {
		set("rating", *p.Rating)
	}
	if p.TMDBID != nil {
		set("tmdb_id", *p.TMDBID)
	}
	if p.IMDbID != nil {
		set("imdb_id", *p.IMDbID)
	}
	if p.ImageURL != nil {
		set("image_url", *p.ImageURL)
	}
	if p.TrailerURL != nil {
		set("trailer_url", *p.TrailerURL)
	}
	return clauses, args
}
