package util

import (
	"encoding/json"
	"fmt"
	"os"

	"slp-server/models"
)

// ReadValueRangeFromJSON loads a ValueRange fixture from JSON on disk.
func ReadValueRangeFromJSON(filePath string) (*models.ValueRange, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var vr models.ValueRange
	if err := json.Unmarshal(data, &vr); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ValueRange: %w", err)
	}
	return &vr, nil
}

// ReadSpreadsheetFromJSON loads spreadsheet metadata from JSON on disk.
func ReadSpreadsheetFromJSON(filePath string) (*models.Spreadsheet, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var sheet models.Spreadsheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Spreadsheet: %w", err)
	}
	return &sheet, nil
}
