package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"restaurant-scout/models"
	"restaurant-scout/utils"
)

// JSONWriter persists the full ranked result, including every score
// breakdown and candidate field, so a run can be replayed or audited later
type JSONWriter struct {
	filePath string
	logger   *utils.Logger
}

// NewJSONWriter creates a new JSONWriter
func NewJSONWriter(filePath string, logger *utils.Logger) *JSONWriter {
	return &JSONWriter{filePath: filePath, logger: logger}
}

// SaveResult writes the result as indented JSON
func (w *JSONWriter) SaveResult(result *models.RankedResult) error {
	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := os.WriteFile(w.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	w.logger.Info("Full result written to: %s (%d entries)", w.filePath, len(result.Entries))
	return nil
}

// Close implements ResultStorage
func (w *JSONWriter) Close() error { return nil }
