package sheets

import (
	"fmt"
	"strings"

	"slp-server/config"
	"slp-server/models"
	"slp-server/util"
)

// SheetsApiClientMock serves fixture spreadsheets from disk instead of the
// network. Each fixture holds the full grid including the header row; header
// probes get the first row, data ranges get the rest.
type SheetsApiClientMock struct {
}

// NewSheetsApiClientMock creates a new instance of SheetsApiClientMock
func NewSheetsApiClientMock() *SheetsApiClientMock {
	return &SheetsApiClientMock{}
}

func (c *SheetsApiClientMock) GetSpreadsheet(spreadsheetID string) (*models.Spreadsheet, error) {
	info, err := util.ReadSpreadsheetFromJSON(config.GetResourcePath(config.SPREADSHEET_INFO_RESOURCE))
	if err != nil {
		fmt.Println("Could not read spreadsheet info fixture from json")
		return nil, err
	}
	return info, nil
}

func (c *SheetsApiClientMock) GetValues(spreadsheetID string, rangeA1 string) (*models.ValueRange, error) {
	resource := config.PLACES_VALUES_RESOURCE
	if strings.HasPrefix(rangeA1, config.EVENTS_SHEET_NAME+"!") {
		resource = config.EVENTS_VALUES_RESOURCE
	}

	grid, err := util.ReadValueRangeFromJSON(config.GetResourcePath(resource))
	if err != nil {
		fmt.Println("Could not read value range fixture from json")
		return nil, err
	}

	values := grid.Values
	if isHeaderRange(rangeA1) {
		if len(values) > 0 {
			values = values[:1]
		}
	} else if len(values) > 0 {
		values = values[1:]
	}

	return &models.ValueRange{
		Range:          rangeA1,
		MajorDimension: grid.MajorDimension,
		Values:         values,
	}, nil
}

// isHeaderRange recognizes single-row probes starting at A1, e.g. "A1:AD1".
func isHeaderRange(rangeA1 string) bool {
	if i := strings.IndexByte(rangeA1, '!'); i >= 0 {
		rangeA1 = rangeA1[i+1:]
	}
	return strings.HasPrefix(rangeA1, "A1:")
}
