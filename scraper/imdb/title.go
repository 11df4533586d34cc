package imdb

import (
	"log"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/tidwall/gjson"
)

// scrapeTitlePage loads one title page in the headless browser and
// extracts every metadata field plus the three secondary-page URLs.
// Each extraction fails independently; a failed page load nulls the
// whole set.
func (s *Scraper) scrapeTitlePage(titleURL string) titleData {
	var data titleData

	page, done, err := s.session.NewPage()
	if err != nil {
		log.Printf("t_Warn: could not open a page for %s: %v", titleURL, err)
		return data
	}
	defer done()

	if _, err := page.Goto(titleURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		log.Printf("t_Warn: scraping %s: %v", titleURL, err)
		return data
	}

	if pageTitle, err := page.Title(); err == nil {
		log.Printf("Scraping %s", pageTitle)
	}

	data.Title = textOf(page, "span[data-testid=hero__primary-text]")

	if txt := textOf(page, "li[data-testid=title-details-releasedate] div a"); txt != "" {
		if date, ok := parseReleaseDate(txt); ok {
			data.ReleaseDate = &date
		}
	}

	data.Countries = allTexts(page, "li[data-testid=title-details-origin] a")
	data.Sites = allAttrs(page, "li[data-testid=details-officialsites] a", "href")
	data.Languages = allTexts(page, "li[data-testid=title-details-languages] a")
	data.Companies = allTexts(page, "li[data-testid=title-details-companies] a")
	data.TopCast = allTexts(page, "a[data-testid=title-cast-item__actor]")

	if txt := textOf(page, "li[data-testid=award_information] span"); txt != "" {
		awards, nominations := parseAwards(txt)
		data.Awards = &awards
		data.Nominations = &nominations
	}

	data.Genres = allTexts(page, "li[data-testid=storyline-genres] a")

	data.ParentsURL = absoluteURL(titleURL, attrOf(page, "ul[class*=sc-d8941411-2] li:nth-of-type(3) a", "href"))
	data.RatingsURL = absoluteURL(titleURL, attrOf(page, "a[class*=sc-acdbf0f3-2]", "href"))
	data.ImagesURL = absoluteURL(titleURL, attrOf(page, "div[data-testid=hero-media__poster] a", "href"))

	s.fillFromJSONLD(page, &data)
	return data
}

// fillFromJSONLD backfills the title and genres from the page's
// embedded schema.org block when the hero selectors came up empty.
func (s *Scraper) fillFromJSONLD(page playwright.Page, data *titleData) {
	if data.Title != "" && data.Genres != nil {
		return
	}

	raw := textOf(page, `script[type="application/ld+json"]`)
	if raw == "" || !gjson.Valid(raw) {
		return
	}

	if data.Title == "" {
		data.Title = gjson.Get(raw, "name").String()
	}
	if data.Genres == nil {
		for _, g := range gjson.Get(raw, "genre").Array() {
			data.Genres = append(data.Genres, g.String())
		}
	}
}

// textOf returns the trimmed text of the first match, or "" when the
// selector matches nothing. The count guard keeps a missing element
// from blocking on playwright's auto-waiting.
func textOf(page playwright.Page, selector string) string {
	loc := page.Locator(selector)
	if n, err := loc.Count(); err != nil || n == 0 {
		return ""
	}
	txt, err := loc.First().TextContent()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(txt)
}

func attrOf(page playwright.Page, selector, attr string) string {
	loc := page.Locator(selector)
	if n, err := loc.Count(); err != nil || n == 0 {
		return ""
	}
	val, err := loc.First().GetAttribute(attr)
	if err != nil {
		return ""
	}
	return val
}

func allTexts(page playwright.Page, selector string) []string {
	els, err := page.Locator(selector).All()
	if err != nil {
		return nil
	}
	var out []string
	for _, el := range els {
		if txt, err := el.TextContent(); err == nil {
			out = append(out, strings.TrimSpace(txt))
		}
	}
	return out
}

func allAttrs(page playwright.Page, selector, attr string) []string {
	els, err := page.Locator(selector).All()
	if err != nil {
		return nil
	}
	var out []string
	for _, el := range els {
		if val, err := el.GetAttribute(attr); err == nil && val != "" {
			out = append(out, val)
		}
	}
	return out
}
