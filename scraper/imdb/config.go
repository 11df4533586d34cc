package imdb

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

type Config struct {
	SearchURL      string
	AllowedDomains []string
	Count          int
	Format         string
	DownloadImages bool
	UserAgent      string
	PageTimeout    time.Duration
	MaxWorkers     int
	PageSize       int
	BackoffFactor  float64
	DatasetDir     string
	ImgDir         string
}

func DefaultConfig() *Config {
	return &Config{
		SearchURL:      "https://www.imdb.com/search/title/?title_type=video_game&adult=include",
		AllowedDomains: []string{"www.imdb.com", "m.imdb.com", "imdb.com", "m.media-amazon.com"},
		Format:         FormatJSON,
		PageTimeout:    5 * time.Second,
		MaxWorkers:     5,
		PageSize:       50,
		BackoffFactor:  0.5,
		DatasetDir:     "dataset",
		ImgDir:         "img",
	}
}

// LoadConfig builds a Config from the defaults plus any environment
// overrides. A missing .env file is not an error.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using existing environment variables")
	}

	cfg := DefaultConfig()
	if v := os.Getenv("IMDB_SEARCH_URL"); v != "" {
		cfg.SearchURL = v
	}
	if v := os.Getenv("DATASET_DIR"); v != "" {
		cfg.DatasetDir = v
	}
	if v := os.Getenv("IMG_DIR"); v != "" {
		cfg.ImgDir = v
	}
	if v := os.Getenv("SCRAPER_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("PAGE_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.PageTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("MAX_WORKERS"); v != "" {
		if workers, err := strconv.Atoi(v); err == nil && workers > 0 {
			cfg.MaxWorkers = workers
		}
	}
	return cfg
}
