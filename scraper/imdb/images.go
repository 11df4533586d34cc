package imdb

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocolly/colly"
	"github.com/kennygrant/sanitize"
)

const posterSelector = "img[data-image-id*=curr]"

// scrapePoster finds the current poster on the media viewer page and
// downloads it. Failures only cost the poster file, never the row.
func (s *Scraper) scrapePoster(imagesURL, title string) {
	posterURL := s.scrapePosterPage(imagesURL)
	if posterURL == "" {
		return
	}
	if err := s.downloadPoster(posterURL, title); err != nil {
		log.Printf("im_Warn: downloading image from %s: %v", posterURL, err)
	}
}

func (s *Scraper) scrapePosterPage(imagesURL string) string {
	var (
		posterURL string
		pageErr   error
	)

	c := s.newCollector()
	c.OnError(func(r *colly.Response, err error) {
		pageErr = err
	})
	c.OnHTML("html", func(e *colly.HTMLElement) {
		if err := checkDocContent(e.DOM, "", false); err != nil {
			pageErr = err
			return
		}
		posterURL, _ = e.DOM.Find(posterSelector).First().Attr("src")
	})

	if err := c.Visit(imagesURL); err != nil && pageErr == nil {
		pageErr = err
	}
	if pageErr != nil {
		log.Printf("im_Warn: scraping %s: %v", imagesURL, pageErr)
		return ""
	}
	return posterURL
}

// downloadPoster streams the image into the img directory, named after
// the sanitized game title.
func (s *Scraper) downloadPoster(posterURL, title string) error {
	resp, err := s.http.R().SetDoNotParseResponse(true).Get(posterURL)
	if err != nil {
		return err
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	if err := os.MkdirAll(s.config.ImgDir, 0755); err != nil {
		return fmt.Errorf("failed to create image directory: %w", err)
	}

	name := sanitize.BaseName(title)
	if name == "" {
		name = "poster"
	}
	ext := "jpg"
	if parts := strings.Split(posterURL, "."); len(parts) > 1 {
		ext = parts[len(parts)-1]
	}

	path := filepath.Join(s.config.ImgDir, name+"."+ext)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, body); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return nil
}
