package imdb

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const datasetName = "IMDb_Popularity_Video_Games_Dataset"

var csvHeader = []string{
	"ranking", "title", "release_date", "countries", "sites", "languages",
	"companies", "top_cast", "awards", "nominations", "genres", "rating",
	"user_ratings", "parental_guide", "imdb_url", "scraped_at",
}

type Storage struct {
	DatasetDir string
	Filename   string
}

func NewStorage(dir string) *Storage {
	return &Storage{
		DatasetDir: dir,
		Filename:   datasetName,
	}
}

// Save writes the dataset in the requested format and returns the path
// of the written file.
func (s *Storage) Save(games []Game, format string) (string, error) {
	if err := os.MkdirAll(s.DatasetDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create dataset directory: %v", err)
	}

	switch format {
	case FormatJSON, "":
		return s.saveJSON(games)
	case FormatCSV:
		return s.saveCSV(games)
	default:
		return "", fmt.Errorf("invalid file type %q, specify %q or %q", format, FormatJSON, FormatCSV)
	}
}

func (s *Storage) saveJSON(games []Game) (string, error) {
	path := filepath.Join(s.DatasetDir, s.Filename+".json")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create dataset file: %v", err)
	}
	defer file.Close()

	if games == nil {
		games = []Game{}
	}
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(games); err != nil {
		return "", fmt.Errorf("failed to save dataset: %v", err)
	}
	return path, nil
}

func (s *Storage) saveCSV(games []Game) (string, error) {
	path := filepath.Join(s.DatasetDir, s.Filename+".csv")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create dataset file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write csv header: %v", err)
	}
	for _, game := range games {
		if err := writer.Write(csvRecord(game)); err != nil {
			return "", fmt.Errorf("failed to write csv row: %v", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to save dataset: %v", err)
	}
	return path, nil
}

func csvRecord(g Game) []string {
	return []string{
		strconv.Itoa(g.Ranking),
		g.Title,
		strCell(g.ReleaseDate),
		listCell(g.Countries),
		listCell(g.Sites),
		listCell(g.Languages),
		listCell(g.Companies),
		listCell(g.TopCast),
		intCell(g.Awards),
		intCell(g.Nominations),
		listCell(g.Genres),
		strCell(g.Rating),
		jsonCell(g.UserRatings),
		jsonCell(g.ParentalGuide),
		g.IMDbURL,
		g.ScrapedAt.Format("2006-01-02 15:04:05"),
	}
}

func strCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func listCell(vs []string) string {
	return strings.Join(vs, "; ")
}

// jsonCell renders a histogram or guide map into a single csv cell.
func jsonCell(v interface{}) string {
	switch m := v.(type) {
	case map[int]string:
		if m == nil {
			return ""
		}
	case map[string]string:
		if m == nil {
			return ""
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
