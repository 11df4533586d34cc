package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/amankumarsingh77/go-imdb-scraper/pkg/browser"
	"github.com/amankumarsingh77/go-imdb-scraper/scraper/imdb"
)

var (
	count  = flag.Int("n", 0, "Number of video games to scrape. 0 scrapes every listed title.")
	format = flag.String("format", imdb.FormatJSON, "Dataset file format, either json or csv.")
	images = flag.Bool("images", false, "Download poster images alongside the dataset.")
	outDir = flag.String("out", ".", "Root directory for the dataset and img folders.")
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	flag.Parse()

	if *count < 0 {
		log.Fatalf("Invalid argument: n must not be negative")
	}
	if *format != imdb.FormatJSON && *format != imdb.FormatCSV {
		log.Fatalf("Invalid argument: format must be %q or %q", imdb.FormatJSON, imdb.FormatCSV)
	}

	cfg := imdb.LoadConfig()
	cfg.Count = *count
	cfg.Format = *format
	cfg.DownloadImages = *images
	cfg.DatasetDir = filepath.Join(*outDir, cfg.DatasetDir)
	cfg.ImgDir = filepath.Join(*outDir, cfg.ImgDir)

	session, err := browser.NewSession(cfg.PageTimeout, cfg.UserAgent)
	if err != nil {
		log.Fatalf("Failed to start browser session: %v", err)
	}
	defer session.Close()

	scraper := imdb.NewScraper(cfg, imdb.NewStorage(cfg.DatasetDir), session)
	path, err := scraper.Run()
	if err != nil {
		log.Fatalf("Scraper error: %v", err)
	}
	log.Printf("Dataset saved to %s", path)
}
