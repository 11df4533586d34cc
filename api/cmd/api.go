package main

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatasetFile string
}

func LoadConfig() *Config {
	// Load .env but don't fail if it doesn't exist
	godotenv.Load()

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		DatasetFile: os.Getenv("DATASET_FILE"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatasetFile == "" {
		cfg.DatasetFile = "dataset/IMDb_Popularity_Video_Games_Dataset.json"
	}
	return cfg
}
