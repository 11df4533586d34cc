package imdb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"
)

// newCollector builds a one-shot collector for a secondary page. The
// secondary pages are server-rendered, so they skip the headless
// browser entirely.
func (s *Scraper) newCollector() *colly.Collector {
	opts := []func(*colly.Collector){
		colly.UserAgent(s.userAgent()),
	}
	if len(s.config.AllowedDomains) > 0 {
		opts = append(opts, colly.AllowedDomains(s.config.AllowedDomains...))
	}

	c := colly.NewCollector(opts...)
	c.SetRequestTimeout(s.config.PageTimeout)
	return c
}

// checkDocContent runs the sanity checks applied to every secondary
// page before extraction.
func checkDocContent(doc *goquery.Selection, pageName string, imdbExpected bool) error {
	if strings.Contains(doc.Text(), "No results found.") {
		return errors.New("no results found")
	}
	title := doc.Find("title").Text()
	if imdbExpected && !strings.Contains(title, "IMDb") {
		return errors.New("IMDb not found in page title")
	}
	if pageName != "" && !strings.Contains(title, pageName) {
		return fmt.Errorf("%s not found in page title", pageName)
	}
	return nil
}

func trimText(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}
