package sheets

import (
	"net/url"

	"slp-server/api"
	"slp-server/models"
)

// SheetsApiClient embeds the common HTTPClient
type SheetsApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewSheetsApiClient creates a new instance of SheetsApiClient
func NewSheetsApiClient(httpClient *api.HTTPClient) *SheetsApiClient {
	return &SheetsApiClient{
		HTTPClient: httpClient,
	}
}

// GetSpreadsheet retrieves document metadata, used to discover which tabs
// exist before committing to a range fetch.
func (c *SheetsApiClient) GetSpreadsheet(spreadsheetID string) (*models.Spreadsheet, error) {
	var response models.Spreadsheet
	err := c.Get("/spreadsheets/"+spreadsheetID+"?fields=sheets.properties.title", &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetValues retrieves a rectangular block of cell values in A1 notation.
func (c *SheetsApiClient) GetValues(spreadsheetID string, rangeA1 string) (*models.ValueRange, error) {
	var response models.ValueRange
	err := c.Get("/spreadsheets/"+spreadsheetID+"/values/"+url.PathEscape(rangeA1), &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
