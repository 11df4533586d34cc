package imdb

import "time"

// Job is one unit of work: a title URL plus the rank it held on the
// search listing.
type Job struct {
	URL  string
	Rank int
}

// Ratings holds the aggregate rating and the 10-to-1 vote histogram
// scraped from a title's ratings page. Both are copied into the Game
// row, which owns the serialization.
type Ratings struct {
	Overall   *string
	Histogram map[int]string
}

// Game is one row of the output dataset. Sub-scrapes that failed are
// carried as null, never dropped.
type Game struct {
	Title         string            `json:"title"`
	Ranking       int               `json:"ranking"`
	ReleaseDate   *string           `json:"release_date"`
	Countries     []string          `json:"countries"`
	Sites         []string          `json:"sites"`
	Languages     []string          `json:"languages"`
	Companies     []string          `json:"companies"`
	TopCast       []string          `json:"top_cast"`
	Awards        *int              `json:"awards"`
	Nominations   *int              `json:"nominations"`
	Genres        []string          `json:"genres"`
	Rating        *string           `json:"rating"`
	UserRatings   map[int]string    `json:"user_ratings"`
	ParentalGuide map[string]string `json:"parental_guide"`
	IMDbURL       string            `json:"imdb_url"`
	ScrapedAt     time.Time         `json:"scraped_at"`
}

// titleData is everything extracted from a single title page, including
// the three secondary-page URLs discovered on it.
type titleData struct {
	Title       string
	ReleaseDate *string
	Countries   []string
	Sites       []string
	Languages   []string
	Companies   []string
	TopCast     []string
	Awards      *int
	Nominations *int
	Genres      []string
	RatingsURL  string
	ParentsURL  string
	ImagesURL   string
}

// empty reports whether the title page yielded nothing usable. A job
// whose primary page comes back empty contributes no row.
func (t titleData) empty() bool {
	return t.Title == "" &&
		t.ReleaseDate == nil &&
		t.Countries == nil &&
		t.Sites == nil &&
		t.Languages == nil &&
		t.Companies == nil &&
		t.TopCast == nil &&
		t.Awards == nil &&
		t.Nominations == nil &&
		t.Genres == nil &&
		t.RatingsURL == "" &&
		t.ParentsURL == "" &&
		t.ImagesURL == ""
}
