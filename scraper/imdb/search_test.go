package imdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobsFromListing(t *testing.T) {
	base := "https://www.imdb.com/search/title/?title_type=video_game"

	jobs := jobsFromListing(base,
		[]string{"/title/tt0001/", "/title/tt0002/"},
		[]string{"1. First Game", "2. Second Game"})
	require.Len(t, jobs, 2)
	assert.Equal(t, "https://www.imdb.com/title/tt0001/", jobs[0].URL)
	assert.Equal(t, 1, jobs[0].Rank)
	assert.Equal(t, 2, jobs[1].Rank)
}

func TestJobsFromListingHeadingOverridesPosition(t *testing.T) {
	jobs := jobsFromListing("https://www.imdb.com",
		[]string{"/title/tt0001/"},
		[]string{"7. Promoted Game"})
	require.Len(t, jobs, 1)
	assert.Equal(t, 7, jobs[0].Rank)
}

func TestJobsFromListingSkipsHreflessLinks(t *testing.T) {
	jobs := jobsFromListing("https://www.imdb.com",
		[]string{"/title/tt0001/", "", "/title/tt0003/"},
		[]string{"1. First Game", "2. Gone Game", "broken heading"})
	require.Len(t, jobs, 2)

	// the skipped link must not shift the positional fallback of the
	// links after it
	assert.Equal(t, "https://www.imdb.com/title/tt0003/", jobs[1].URL)
	assert.Equal(t, 3, jobs[1].Rank)
}

func TestJobsFromListingWithoutHeadings(t *testing.T) {
	jobs := jobsFromListing("https://www.imdb.com",
		[]string{"/title/tt0001/", "/title/tt0002/"}, nil)
	require.Len(t, jobs, 2)
	assert.Equal(t, 1, jobs[0].Rank)
	assert.Equal(t, 2, jobs[1].Rank)
}
