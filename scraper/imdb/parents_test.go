package imdb

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parentsPage(categories map[string]string) string {
	page := `<html><head><title>Some Game (2018) - Parents Guide - IMDb</title></head><body>`
	for category, severity := range categories {
		page += fmt.Sprintf(`<section id="advisory-%s"><span>%s</span></section>`, category, severity)
	}
	return page + `</body></html>`
}

func TestScrapeParentsPage(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, parentsPage(map[string]string{
			"nudity":      "None",
			"violence":    "Severe",
			"profanity":   "Moderate",
			"alcohol":     "Mild",
			"frightening": "Moderate",
		}))
	})

	s := testScraper(t, testConfig(t))
	guide := s.scrapeParentsPage(srv.URL)
	require.NotNil(t, guide)
	assert.Equal(t, map[string]string{
		"nudity":      "None",
		"violence":    "Severe",
		"profanity":   "Moderate",
		"alcohol":     "Mild",
		"frightening": "Moderate",
	}, guide)
}

func TestScrapeParentsPageDegradesMissingCategories(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, parentsPage(map[string]string{"violence": "Severe"}))
	})

	s := testScraper(t, testConfig(t))
	guide := s.scrapeParentsPage(srv.URL)
	require.NotNil(t, guide)
	assert.Equal(t, map[string]string{"violence": "Severe"}, guide)
}

func TestScrapeParentsPageFailure(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	s := testScraper(t, testConfig(t))
	assert.Nil(t, s.scrapeParentsPage(srv.URL))
}
