package imdb

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/kennygrant/sanitize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapePosterPage(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>viewer</title></head><body>`+
			`<img data-image-id="rm123-curr" src="https://example.com/poster.jpg">`+
			`</body></html>`)
	})

	s := testScraper(t, testConfig(t))
	assert.Equal(t, "https://example.com/poster.jpg", s.scrapePosterPage(srv.URL))
}

func TestScrapePosterPageWithoutPoster(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>viewer</title></head><body>nothing here</body></html>`)
	})

	s := testScraper(t, testConfig(t))
	assert.Equal(t, "", s.scrapePosterPage(srv.URL))
}

func TestDownloadPoster(t *testing.T) {
	payload := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	})

	cfg := testConfig(t)
	s := testScraper(t, cfg)

	title := "Grand Theft Auto: Vice City"
	require.NoError(t, s.downloadPoster(srv.URL+"/poster.jpg", title))

	path := filepath.Join(cfg.ImgDir, sanitize.BaseName(title)+".jpg")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestDownloadPosterNonOKStatus(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	})

	s := testScraper(t, testConfig(t))
	assert.Error(t, s.downloadPoster(srv.URL+"/poster.jpg", "Some Game"))
}
