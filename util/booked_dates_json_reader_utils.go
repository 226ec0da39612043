package util

import (
	"encoding/json"
	"fmt"
	"os"

	"loft442-server/models"
)

// ReadBookedDatesFromJSON loads raw availability date entries from JSON on disk.
func ReadBookedDatesFromJSON(filePath string) ([]models.DateEntry, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var entries []models.DateEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booked dates: %w", err)
	}
	return entries, nil
}
