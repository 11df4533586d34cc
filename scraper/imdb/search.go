package imdb

import (
	"fmt"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"
)

const (
	seeMoreSelector    = "div.sc-619d2eab-0.fOxpqs button"
	totalCountSelector = ".sc-45dd5c1-3"
	titleLinkSelector  = "a.ipc-title-link-wrapper"
	titleRankSelector  = "h3.ipc-title__text"
)

// scrapeSearchPage loads the advanced-search listing, expands it with
// the "50 more" button until the requested count is visible and turns
// the extracted links and rank positions into jobs.
func (s *Scraper) scrapeSearchPage() ([]Job, error) {
	page, done, err := s.session.NewPage()
	if err != nil {
		return nil, err
	}
	defer done()

	if _, err := page.Goto(s.config.SearchURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return nil, fmt.Errorf("failed to load search page: %w", err)
	}

	if ua, err := page.Evaluate("navigator.userAgent"); err == nil {
		log.Printf("User-Agent for the search page is %v", ua)
	}

	n := s.config.Count
	if total, err := s.searchTotal(page); err != nil {
		log.Printf("Warn: could not read the total title count on %s: %v", s.config.SearchURL, err)
	} else if n == 0 || n > total {
		n = total
	}

	for i := 0; i < n/s.config.PageSize; i++ {
		if err := s.clickSeeMore(page); err != nil {
			log.Printf("Warn: clicking the '%d more' button: %v", s.config.PageSize, err)
			continue
		}
		log.Printf("%d more video games loaded", s.config.PageSize)
	}

	jobs := s.collectJobs(page)
	if n > 0 && len(jobs) > n {
		jobs = jobs[:n]
	}
	if n > 0 && len(jobs) != n {
		log.Printf("Error: expected %d titles, but scraped %d.", n, len(jobs))
	}
	return jobs, nil
}

func (s *Scraper) searchTotal(page playwright.Page) (int, error) {
	banner := page.Locator(totalCountSelector).First()
	text, err := banner.TextContent()
	if err != nil {
		return 0, err
	}
	return parseTotalCount(text)
}

func (s *Scraper) clickSeeMore(page playwright.Page) error {
	button := page.Locator(seeMoreSelector)
	if err := button.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(15000),
	}); err != nil {
		return err
	}
	if _, err := page.Evaluate("window.scrollTo(0, document.body.scrollHeight)"); err != nil {
		return err
	}
	time.Sleep(time.Second)
	if err := button.Click(playwright.LocatorClickOptions{Force: playwright.Bool(true)}); err != nil {
		return err
	}
	// let the next block of results render
	time.Sleep(time.Second)
	return nil
}

func (s *Scraper) collectJobs(page playwright.Page) []Job {
	links, err := page.Locator(titleLinkSelector).All()
	if err != nil {
		log.Printf("Warn: could not get the title links on %s: %v", s.config.SearchURL, err)
		return nil
	}
	headings, err := page.Locator(titleRankSelector).All()
	if err != nil {
		log.Printf("Warn: could not get the rank headings on %s: %v", s.config.SearchURL, err)
		headings = nil
	}

	hrefs := make([]string, len(links))
	for i, link := range links {
		if href, err := link.GetAttribute("href"); err == nil {
			hrefs[i] = href
		}
	}
	texts := make([]string, len(headings))
	for i, heading := range headings {
		if txt, err := heading.InnerText(); err == nil {
			texts[i] = txt
		}
	}
	return jobsFromListing(s.config.SearchURL, hrefs, texts)
}

// jobsFromListing pairs the scraped links with their rank headings.
// Links without an href are skipped; a heading that doesn't parse
// falls back to the link's listing position.
func jobsFromListing(base string, hrefs, headings []string) []Job {
	var jobs []Job
	for i, href := range hrefs {
		if href == "" {
			log.Printf("Warn: skipping a title link without href on %s", base)
			continue
		}

		rank := i + 1
		if i < len(headings) {
			if r, ok := parseRank(headings[i]); ok {
				rank = r
			}
		}

		jobs = append(jobs, Job{
			URL:  absoluteURL(base, href),
			Rank: rank,
		})
	}
	return jobs
}
