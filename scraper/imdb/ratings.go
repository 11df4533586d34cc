package imdb

import (
	"fmt"
	"log"

	"github.com/gocolly/colly"
)

const overallRatingSelector = ".sc-5931bdee-1.gVydpF"

// scrapeRatingsPage extracts the aggregate rating and the 10-to-1 vote
// histogram. Any failure returns nil so the row keeps a null ratings
// field instead of being dropped.
func (s *Scraper) scrapeRatingsPage(ratingsURL string) *Ratings {
	var (
		result  Ratings
		scraped bool
		pageErr error
	)

	c := s.newCollector()
	c.OnError(func(r *colly.Response, err error) {
		pageErr = err
	})
	c.OnHTML("html", func(e *colly.HTMLElement) {
		if err := checkDocContent(e.DOM, "Ratings", true); err != nil {
			pageErr = err
			return
		}
		scraped = true

		if sel := e.DOM.Find(overallRatingSelector).First(); sel.Length() > 0 {
			overall := trimText(sel)
			result.Overall = &overall
		}

		result.Histogram = make(map[int]string)
		for star := 10; star >= 1; star-- {
			label := e.DOM.Find(fmt.Sprintf("#chart-bar-1-labels-%d > tspan", 10-star)).First()
			if label.Length() == 0 {
				log.Printf("r_Warn: no vote label for user rating %d on %s", star, ratingsURL)
				continue
			}
			m := votesRe.FindStringSubmatch(label.Text())
			if m == nil {
				log.Printf("r_Warn: unparseable vote count for user rating %d on %s", star, ratingsURL)
				continue
			}
			result.Histogram[star] = m[1]
		}
	})

	if err := c.Visit(ratingsURL); err != nil && pageErr == nil {
		pageErr = err
	}
	if pageErr != nil || !scraped {
		log.Printf("r_Warn: scraping %s: %v", ratingsURL, pageErr)
		return nil
	}
	return &result
}
