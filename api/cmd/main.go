package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/amankumarsingh77/go-imdb-scraper/api/handlers"
	"github.com/amankumarsingh77/go-imdb-scraper/scraper/imdb"
)

func main() {
	cfg := LoadConfig()

	games, err := loadDataset(cfg.DatasetFile)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Serving %d video games from %s", len(games), cfg.DatasetFile)

	h := handlers.NewHandler(games)

	r := gin.Default()
	r.GET("/games", h.GetGames)
	r.GET("/games/:rank", h.GetGameByRank)

	r.Run(":" + cfg.Port)
}

func loadDataset(path string) ([]imdb.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var games []imdb.Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, err
	}
	return games, nil
}
