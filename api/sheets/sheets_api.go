package sheets

import (
	"slp-server/models"
)

// SheetsAPI defines the read-only interface for the spreadsheet source
type SheetsAPI interface {
	GetSpreadsheet(spreadsheetID string) (*models.Spreadsheet, error)
	GetValues(spreadsheetID string, rangeA1 string) (*models.ValueRange, error)
}
