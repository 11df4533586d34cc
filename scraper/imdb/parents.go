package imdb

import (
	"fmt"
	"log"

	"github.com/gocolly/colly"
)

// the advisory categories listed on every parents guide page
var advisoryCategories = []string{"nudity", "violence", "profanity", "alcohol", "frightening"}

// scrapeParentsPage extracts the severity level of each advisory
// category. Categories degrade independently; a failed page returns
// nil.
func (s *Scraper) scrapeParentsPage(parentsURL string) map[string]string {
	var (
		guide   map[string]string
		pageErr error
	)

	c := s.newCollector()
	c.OnError(func(r *colly.Response, err error) {
		pageErr = err
	})
	c.OnHTML("html", func(e *colly.HTMLElement) {
		if err := checkDocContent(e.DOM, "Parents Guide", true); err != nil {
			pageErr = err
			return
		}

		guide = make(map[string]string)
		for _, category := range advisoryCategories {
			sel := e.DOM.Find(fmt.Sprintf("#advisory-%s span", category)).First()
			if sel.Length() == 0 {
				log.Printf("pc_Warn: no severity for %s on %s", category, parentsURL)
				continue
			}
			guide[category] = trimText(sel)
		}
	})

	if err := c.Visit(parentsURL); err != nil && pageErr == nil {
		pageErr = err
	}
	if pageErr != nil || guide == nil {
		log.Printf("pc_Warn: scraping %s: %v", parentsURL, pageErr)
		return nil
	}
	return guide
}
