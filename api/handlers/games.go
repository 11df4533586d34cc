package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amankumarsingh77/go-imdb-scraper/scraper/imdb"
)

type Handler struct {
	games []imdb.Game
}

func NewHandler(games []imdb.Game) *Handler {
	return &Handler{games: games}
}

func (h *Handler) GetGames(c *gin.Context) {
	limit := 20
	skip := 0

	if c.Query("limit") != "" {
		limitInt, err := strconv.Atoi(c.Query("limit"))
		if err == nil && limitInt > 0 {
			limit = limitInt
		}
	}
	if c.Query("skip") != "" {
		skipInt, err := strconv.Atoi(c.Query("skip"))
		if err == nil && skipInt >= 0 {
			skip = skipInt
		}
	}

	matches := h.filter(c.Query("query"))
	if skip >= len(matches) {
		c.JSON(http.StatusOK, []imdb.Game{})
		return
	}
	matches = matches[skip:]
	if len(matches) > limit {
		matches = matches[:limit]
	}
	c.JSON(http.StatusOK, matches)
}

func (h *Handler) GetGameByRank(c *gin.Context) {
	rank, err := strconv.Atoi(c.Param("rank"))
	if err != nil {
		c.JSON(400, gin.H{"error": "rank must be a number"})
		return
	}

	for _, game := range h.games {
		if game.Ranking == rank {
			c.JSON(http.StatusOK, game)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "no game found with rank " + c.Param("rank")})
}

func (h *Handler) filter(query string) []imdb.Game {
	if query == "" {
		return h.games
	}
	query = strings.ToLower(query)

	var matches []imdb.Game
	for _, game := range h.games {
		if strings.Contains(strings.ToLower(game.Title), query) {
			matches = append(matches, game)
		}
	}
	return matches
}
