package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"restaurant-scout/models"
	"restaurant-scout/utils"
)

// CSVWriter handles writing ranked entries to a CSV file
type CSVWriter struct {
	filePath string
	logger   *utils.Logger
}

// NewCSVWriter creates a new CSVWriter
func NewCSVWriter(filePath string, logger *utils.Logger) *CSVWriter {
	return &CSVWriter{filePath: filePath, logger: logger}
}

// SaveResult writes the ranked entries of a result to a CSV file
func (w *CSVWriter) SaveResult(result *models.RankedResult) error {
	// Ensure output directory exists
	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(w.filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	header := []string{
		"rank", "name", "cuisine", "price_tier", "address", "source",
		"total", "dietary", "cuisine_fit", "budget", "location", "amenity", "verdict",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write rows
	for i, e := range result.Entries {
		row := []string{
			strconv.Itoa(i + 1),
			e.Candidate.Name,
			strings.Join(e.Candidate.CuisineTags, "; "),
			e.Candidate.PriceTier,
			e.Candidate.Address,
			e.Source,
			formatScore(e.Score.Total),
			formatScore(e.Score.Dietary),
			formatScore(e.Score.Cuisine),
			formatScore(e.Score.Budget),
			formatScore(e.Score.Location),
			formatScore(e.Score.Amenity),
			e.Score.Explanation,
		}
		if err := writer.Write(row); err != nil {
			w.logger.Error("Failed to write CSV row for '%s': %v", e.Candidate.Name, err)
		}
	}

	w.logger.Info("Ranked results written to: %s (%d rows)", w.filePath, len(result.Entries))
	return nil
}

// Close implements ResultStorage; CSV files are closed per write
func (w *CSVWriter) Close() error { return nil }

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
