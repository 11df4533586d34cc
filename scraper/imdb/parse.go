package imdb

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	totalCountRe = regexp.MustCompile(`of\s+([\d,]+)`)
	votesRe      = regexp.MustCompile(`\((.*?)\)`)
	digitsRe     = regexp.MustCompile(`\d+`)
)

// parseTotalCount reads the expected number of titles out of the
// "1-50 of 41,133" banner on the search page.
func parseTotalCount(text string) (int, error) {
	m := totalCountRe.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("no title count in %q", text)
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0, fmt.Errorf("invalid title count in %q: %w", text, err)
	}
	return n, nil
}

// parseRank extracts the leading position out of a listing heading such
// as "12. Some Title".
func parseRank(heading string) (int, bool) {
	head, _, found := strings.Cut(heading, ".")
	if !found {
		return 0, false
	}
	rank, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, false
	}
	return rank, true
}

// parseAwards pulls the win and nomination counts out of the awards
// summary text, e.g. "3 wins & 7 nominations". A single number means
// nominations only.
func parseAwards(text string) (awards, nominations int) {
	numbers := digitsRe.FindAllString(text, -1)
	switch len(numbers) {
	case 2:
		awards, _ = strconv.Atoi(numbers[0])
		nominations, _ = strconv.Atoi(numbers[1])
	case 1:
		nominations, _ = strconv.Atoi(numbers[0])
	}
	return awards, nominations
}

// parseReleaseDate normalizes "April 20, 2018 (United States)" to an
// ISO date string.
func parseReleaseDate(text string) (string, bool) {
	datePart, _, _ := strings.Cut(strings.TrimSpace(text), " (")
	t, err := time.Parse("January 2, 2006", datePart)
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// absoluteURL resolves a scraped href against the page it came from.
func absoluteURL(base, href string) string {
	if href == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	h, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(h).String()
}
