package imdb

import (
	"log"
	"sync"
	"time"

	useragent "github.com/EDDYCJY/fake-useragent"
	"github.com/go-resty/resty/v2"

	"github.com/amankumarsingh77/go-imdb-scraper/pkg/browser"
)

// Scraper drives the full run: one search-page scrape, then batches of
// title jobs on a bounded worker pool, each job fanning out to up to
// three secondary scrapes before its row is merged.
type Scraper struct {
	config  *Config
	storage *Storage
	session *browser.Session
	http    *resty.Client

	games []Game
	mu    sync.Mutex

	// fetch seams, overridable in tests
	searchFn  func() ([]Job, error)
	titleFn   func(url string) titleData
	ratingsFn func(url string) *Ratings
	parentsFn func(url string) map[string]string
	posterFn  func(imagesURL, title string)
	sleep     func(d time.Duration)
}

func NewScraper(cfg *Config, store *Storage, session *browser.Session) *Scraper {
	client := resty.New()
	client.SetTimeout(cfg.PageTimeout)

	s := &Scraper{
		config:  cfg,
		storage: store,
		session: session,
		http:    client,
		sleep:   time.Sleep,
	}
	s.searchFn = s.scrapeSearchPage
	s.titleFn = s.scrapeTitlePage
	s.ratingsFn = s.scrapeRatingsPage
	s.parentsFn = s.scrapeParentsPage
	s.posterFn = s.scrapePoster
	return s
}

// Run executes the whole scraping process and saves the dataset. It
// returns the path of the written file.
func (s *Scraper) Run() (string, error) {
	start := time.Now()

	jobs, err := s.searchFn()
	if err != nil {
		log.Printf("Warn: scraping %s: %v", s.config.SearchURL, err)
	}

	batches := batchJobs(jobs, s.config.MaxWorkers)
	for i, batch := range batches {
		t0 := time.Now()
		s.scrapeBatch(batch)
		elapsed := time.Since(t0)
		log.Printf("Batch %d/%d scraped in %s", i+1, len(batches), elapsed)

		// Crude backoff: pause proportionally to how long the site
		// took to serve the batch, except after the last one.
		if i < len(batches)-1 {
			s.sleep(time.Duration(float64(elapsed) * s.config.BackoffFactor))
		}
	}

	log.Printf("Scraped properly %d video games.", len(s.Games()))
	log.Printf("Saving dataset...")
	path, err := s.storage.Save(s.Games(), s.config.Format)
	if err != nil {
		return "", err
	}

	log.Printf("Scraping completed in %.2f seconds.", time.Since(start).Seconds())
	return path, nil
}

// Games returns a copy of the rows collected so far.
func (s *Scraper) Games() []Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Game, len(s.games))
	copy(out, s.games)
	return out
}

// batchJobs splits jobs into groups of min(len(jobs), size) that are
// processed one group at a time.
func batchJobs(jobs []Job, size int) [][]Job {
	if len(jobs) == 0 {
		return nil
	}
	if size <= 0 || size > len(jobs) {
		size = len(jobs)
	}
	var batches [][]Job
	for start := 0; start < len(jobs); start += size {
		end := start + size
		if end > len(jobs) {
			end = len(jobs)
		}
		batches = append(batches, jobs[start:end])
	}
	return batches
}

func (s *Scraper) scrapeBatch(jobs []Job) {
	var wg sync.WaitGroup
	sem := make(chan struct{}, s.config.MaxWorkers)

	for _, job := range jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			s.scrapeTitle(job)
		}(job)
	}
	wg.Wait()
}

// scrapeTitle scrapes one title page, runs its secondary scrapes
// concurrently and appends the merged row. Secondary failures only null
// their own fields; an empty primary page drops the row entirely.
func (s *Scraper) scrapeTitle(job Job) {
	data := s.titleFn(job.URL)
	if data.empty() {
		return
	}

	var (
		wg      sync.WaitGroup
		ratings *Ratings
		guide   map[string]string
	)

	if data.RatingsURL != "" {
		log.Printf("Scraping %s", data.RatingsURL)
		wg.Add(1)
		go func() {
			defer wg.Done()
			ratings = s.ratingsFn(data.RatingsURL)
		}()
	}

	if data.ParentsURL != "" {
		log.Printf("Scraping %s", data.ParentsURL)
		wg.Add(1)
		go func() {
			defer wg.Done()
			guide = s.parentsFn(data.ParentsURL)
		}()
	}

	if s.config.DownloadImages && data.ImagesURL != "" {
		log.Printf("Scraping %s", data.ImagesURL)
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.posterFn(data.ImagesURL, data.Title)
		}()
	}

	wg.Wait()

	game := Game{
		Title:         data.Title,
		Ranking:       job.Rank,
		ReleaseDate:   data.ReleaseDate,
		Countries:     data.Countries,
		Sites:         data.Sites,
		Languages:     data.Languages,
		Companies:     data.Companies,
		TopCast:       data.TopCast,
		Awards:        data.Awards,
		Nominations:   data.Nominations,
		Genres:        data.Genres,
		IMDbURL:       job.URL,
		ParentalGuide: guide,
		ScrapedAt:     time.Now(),
	}
	if ratings != nil {
		game.Rating = ratings.Overall
		game.UserRatings = ratings.Histogram
	}

	s.mu.Lock()
	s.games = append(s.games, game)
	s.mu.Unlock()
	log.Printf("Video game %q added to dataset", game.Title)
}

func (s *Scraper) userAgent() string {
	if s.config.UserAgent != "" {
		return s.config.UserAgent
	}
	return useragent.Firefox()
}
