package imdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTotalCount(t *testing.T) {
	n, err := parseTotalCount("1-50 of 41,133")
	require.NoError(t, err)
	assert.Equal(t, 41133, n)

	n, err = parseTotalCount("1-50 of 72")
	require.NoError(t, err)
	assert.Equal(t, 72, n)

	_, err = parseTotalCount("no banner here")
	assert.Error(t, err)
}

func TestParseRank(t *testing.T) {
	rank, ok := parseRank("12. Grand Theft Auto V")
	require.True(t, ok)
	assert.Equal(t, 12, rank)

	rank, ok = parseRank("1. Half-Life 2")
	require.True(t, ok)
	assert.Equal(t, 1, rank)

	_, ok = parseRank("Unranked Title")
	assert.False(t, ok)

	_, ok = parseRank("x. Broken")
	assert.False(t, ok)
}

func TestParseAwards(t *testing.T) {
	awards, nominations := parseAwards("3 wins & 7 nominations")
	assert.Equal(t, 3, awards)
	assert.Equal(t, 7, nominations)

	awards, nominations = parseAwards("1 nomination")
	assert.Equal(t, 0, awards)
	assert.Equal(t, 1, nominations)

	awards, nominations = parseAwards("Awards")
	assert.Equal(t, 0, awards)
	assert.Equal(t, 0, nominations)
}

func TestParseReleaseDate(t *testing.T) {
	date, ok := parseReleaseDate("April 20, 2018 (United States)")
	require.True(t, ok)
	assert.Equal(t, "2018-04-20", date)

	date, ok = parseReleaseDate("November 8, 2004")
	require.True(t, ok)
	assert.Equal(t, "2004-11-08", date)

	_, ok = parseReleaseDate("sometime in 2018")
	assert.False(t, ok)
}

func TestAbsoluteURL(t *testing.T) {
	base := "https://www.imdb.com/search/title/?title_type=video_game"
	assert.Equal(t,
		"https://www.imdb.com/title/tt0184304/",
		absoluteURL(base, "/title/tt0184304/"))
	assert.Equal(t,
		"https://example.com/poster.jpg",
		absoluteURL(base, "https://example.com/poster.jpg"))
	assert.Equal(t, "", absoluteURL(base, ""))
}
