package importer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slp-server/models"
)

type stubSheetsAPI struct {
	getSpreadsheet func(spreadsheetID string) (*models.Spreadsheet, error)
	getValues      func(spreadsheetID, rangeA1 string) (*models.ValueRange, error)
}

func (s *stubSheetsAPI) GetSpreadsheet(spreadsheetID string) (*models.Spreadsheet, error) {
	return s.getSpreadsheet(spreadsheetID)
}

func (s *stubSheetsAPI) GetValues(spreadsheetID, rangeA1 string) (*models.ValueRange, error) {
	return s.getValues(spreadsheetID, rangeA1)
}

func tabsNamed(titles ...string) *models.Spreadsheet {
	doc := &models.Spreadsheet{SpreadsheetID: "sheet-1"}
	for _, title := range titles {
		doc.Sheets = append(doc.Sheets, models.Sheet{
			Properties: models.SheetProperties{Title: title},
		})
	}
	return doc
}

func placesHeader() []string {
	return []string{
		"Nombre del Lugar", "Categoría", "Dirección", "Ciudad", "Teléfono",
		"Sitio Web", "Instagram", "Latitud", "Longitud", "Descripción",
		"Imagen", "Horario", "Etiquetas", "Negocio Destacado",
	}
}

func TestImportPlaces_AuthFailureServesFallbackAndSeeds(t *testing.T) {
	upstreamErr := errors.New("could not mint access token")
	api := &stubSheetsAPI{
		getSpreadsheet: func(string) (*models.Spreadsheet, error) { return nil, upstreamErr },
		getValues:      func(string, string) (*models.ValueRange, error) { return nil, upstreamErr },
	}
	importer := NewRecordImporter(api, Config{SpreadsheetID: "sheet-1"})

	result := importer.ImportPlaces()

	assert.True(t, result.Degraded)
	assert.Contains(t, result.Reason, "could not mint access token")
	assert.Equal(t, append(FallbackPlaces(), SeedPlaces()...), result.Places)
}

func TestImportPlaces_MissingSpreadsheetID(t *testing.T) {
	importer := NewRecordImporter(&stubSheetsAPI{}, Config{})

	result := importer.ImportPlaces()

	assert.True(t, result.Degraded)
	assert.Equal(t, "missing spreadsheet id", result.Reason)
	assert.Equal(t, append(FallbackPlaces(), SeedPlaces()...), result.Places)
}

func TestImportPlaces_OfflineBuild(t *testing.T) {
	importer := NewRecordImporter(nil, Config{SpreadsheetID: "sheet-1", OfflineBuild: true})

	result := importer.ImportPlaces()

	assert.True(t, result.Degraded)
	assert.Equal(t, "offline build mode", result.Reason)
	assert.Equal(t, append(FallbackPlaces(), SeedPlaces()...), result.Places)
}

func TestImportPlaces_FallsBackToFirstTab(t *testing.T) {
	var requestedRanges []string
	api := &stubSheetsAPI{
		getSpreadsheet: func(string) (*models.Spreadsheet, error) {
			return tabsNamed("Sheet1", "Notes"), nil
		},
		getValues: func(_, rangeA1 string) (*models.ValueRange, error) {
			requestedRanges = append(requestedRanges, rangeA1)
			switch rangeA1 {
			case "Sheet1!A2:AD":
				return &models.ValueRange{Values: [][]string{
					{"Café Florencia", "Café", "Av. Carranza 700"},
				}}, nil
			case "Sheet1!A1:AD1":
				return &models.ValueRange{Values: [][]string{placesHeader()}}, nil
			default:
				return nil, errors.New("unexpected range " + rangeA1)
			}
		},
	}
	importer := NewRecordImporter(api, Config{SpreadsheetID: "sheet-1"})

	result := importer.ImportPlaces()

	require.False(t, result.Degraded)
	assert.Equal(t, []string{"Sheet1!A2:AD", "Sheet1!A1:AD1"}, requestedRanges)
	require.Len(t, result.Places, 1+len(SeedPlaces()))
	assert.Equal(t, "Café Florencia", result.Places[0].Name)
	assert.Equal(t, models.CategoryCafe, result.Places[0].Category)
}

func TestImportPlaces_CleansAndClassifiesRows(t *testing.T) {
	rows := [][]string{
		{
			"  Café Florencia  ", "Café & Restaurante", "Av. Carranza 700", "San Luis Potosí",
			"444 812 3456", "https://cafeflorencia.mx", "@cafeflorencia", "22.1502", "-100.9867",
			"Café de especialidad.", "https://drive.google.com/file/d/1A2b3C4d5E6f7G8h9I0jKlMnOpQrS/view",
			"Monday: 8:00 AM – 10:00 PM", "Local; Potosino|Food", "Sí",
		},
		{""},
		{
			"Barra Potosina", "Bar", "Callejón de San Francisco 12", "San Luis Potosí",
			"", "", "", "n/a", "", "Cantina tradicional.",
			"Monday: 5:00 PM – 1:00 AM", "", "nightlife, local", "true",
		},
	}
	api := &stubSheetsAPI{
		getSpreadsheet: func(string) (*models.Spreadsheet, error) { return tabsNamed("Places"), nil },
		getValues: func(_, rangeA1 string) (*models.ValueRange, error) {
			if rangeA1 == "Places!A1:AD1" {
				return &models.ValueRange{Values: [][]string{placesHeader()}}, nil
			}
			return &models.ValueRange{Values: rows}, nil
		},
	}
	importer := NewRecordImporter(api, Config{SpreadsheetID: "sheet-1"})

	result := importer.ImportPlaces()

	require.False(t, result.Degraded)
	require.Len(t, result.Places, 2+len(SeedPlaces()))

	cafe := result.Places[0]
	assert.Equal(t, "place-0-Café-Flore", cafe.ID)
	assert.Equal(t, "Café Florencia", cafe.Name)
	assert.Equal(t, models.CategoryCafe, cafe.Category)
	require.True(t, cafe.HasCoordinates())
	assert.Equal(t, 22.1502, *cafe.Latitude)
	assert.Equal(t, -100.9867, *cafe.Longitude)
	assert.Equal(t, "https://drive.google.com/uc?export=view&id=1A2b3C4d5E6f7G8h9I0jKlMnOpQrS", cafe.ImageURL)
	assert.Equal(t, "Monday: 8:00 AM – 10:00 PM", cafe.Hours)
	assert.Equal(t, []string{"local", "potosino", "food"}, cafe.Tags)
	assert.True(t, cafe.Featured)

	// The blank separator row is skipped, so the bar keeps its source index.
	bar := result.Places[1]
	assert.Equal(t, "place-2-Barra-Poto", bar.ID)
	assert.False(t, bar.HasCoordinates())
	assert.Empty(t, bar.ImageURL, "hours text misfiled into the image column must be dropped")
	assert.Equal(t, []string{"nightlife", "local"}, bar.Tags)
	assert.True(t, bar.Featured)
}

func TestImportPlaces_FeaturedColumnDefaultsToFixedIndex(t *testing.T) {
	row := make([]string, DEFAULT_FEATURED_COLUMN_INDEX+1)
	row[PLACE_COL_NAME] = "Café Florencia"
	row[PLACE_COL_CATEGORY] = "Café"
	row[DEFAULT_FEATURED_COLUMN_INDEX] = "si"

	api := &stubSheetsAPI{
		getSpreadsheet: func(string) (*models.Spreadsheet, error) { return tabsNamed("Places"), nil },
		getValues: func(_, rangeA1 string) (*models.ValueRange, error) {
			if rangeA1 == "Places!A1:AD1" {
				// No "destacado"/"featured" header anywhere.
				return &models.ValueRange{Values: [][]string{{"Nombre", "Categoría"}}}, nil
			}
			return &models.ValueRange{Values: [][]string{row}}, nil
		},
	}
	importer := NewRecordImporter(api, Config{SpreadsheetID: "sheet-1"})

	result := importer.ImportPlaces()

	require.False(t, result.Degraded)
	require.NotEmpty(t, result.Places)
	assert.True(t, result.Places[0].Featured)
}

func TestImportPlaces_EmptyHeaderImportsSeedsOnly(t *testing.T) {
	api := &stubSheetsAPI{
		getSpreadsheet: func(string) (*models.Spreadsheet, error) { return tabsNamed("Places"), nil },
		getValues: func(_, rangeA1 string) (*models.ValueRange, error) {
			if rangeA1 == "Places!A1:AD1" {
				return &models.ValueRange{}, nil
			}
			return &models.ValueRange{Values: [][]string{{"Café Florencia", "Café"}}}, nil
		},
	}
	importer := NewRecordImporter(api, Config{SpreadsheetID: "sheet-1"})

	result := importer.ImportPlaces()

	assert.False(t, result.Degraded)
	assert.Equal(t, SeedPlaces(), result.Places)
}

func TestImportPlaces_HeaderFetchFailureDegrades(t *testing.T) {
	api := &stubSheetsAPI{
		getSpreadsheet: func(string) (*models.Spreadsheet, error) { return tabsNamed("Places"), nil },
		getValues: func(_, rangeA1 string) (*models.ValueRange, error) {
			if rangeA1 == "Places!A1:AD1" {
				return nil, errors.New("quota exhausted")
			}
			return &models.ValueRange{Values: [][]string{{"Café Florencia", "Café"}}}, nil
		},
	}
	importer := NewRecordImporter(api, Config{SpreadsheetID: "sheet-1"})

	result := importer.ImportPlaces()

	assert.True(t, result.Degraded)
	assert.Contains(t, result.Reason, "quota exhausted")
	assert.Equal(t, append(FallbackPlaces(), SeedPlaces()...), result.Places)
}

func TestImportEvents_Success(t *testing.T) {
	api := &stubSheetsAPI{
		getSpreadsheet: func(string) (*models.Spreadsheet, error) { return tabsNamed("Places", "Events"), nil },
		getValues: func(_, rangeA1 string) (*models.ValueRange, error) {
			assert.Equal(t, "Events!A2:J", rangeA1)
			return &models.ValueRange{Values: [][]string{
				{"Festival de la Cantera", "Música y danza.", "2026-10-09", "2026-10-12", "Plaza de Armas", "Cultural", "https://example.com/cantera.jpg", "sí"},
				{""},
				{"Expo Huasteca", "Cocina regional.", "2026-06-05", "2026-06-07", "Centro de las Artes", "Comida", "No disponible", ""},
			}}, nil
		},
	}
	importer := NewRecordImporter(api, Config{SpreadsheetID: "sheet-1"})

	result := importer.ImportEvents()

	require.False(t, result.Degraded)
	require.Len(t, result.Events, 2)

	festival := result.Events[0]
	assert.Equal(t, "event-0-Festival-d", festival.ID)
	assert.Equal(t, models.EventCategoryCultural, festival.Category)
	assert.Equal(t, "https://example.com/cantera.jpg", festival.ImageURL)
	assert.True(t, festival.Featured)

	expo := result.Events[1]
	assert.Equal(t, models.EventCategoryOther, expo.Category)
	assert.Empty(t, expo.ImageURL)
	assert.False(t, expo.Featured)
}

func TestImportEvents_FetchFailureServesFallback(t *testing.T) {
	api := &stubSheetsAPI{
		getSpreadsheet: func(string) (*models.Spreadsheet, error) { return tabsNamed("Events"), nil },
		getValues: func(string, string) (*models.ValueRange, error) {
			return nil, errors.New("backend unavailable")
		},
	}
	importer := NewRecordImporter(api, Config{SpreadsheetID: "sheet-1"})

	result := importer.ImportEvents()

	assert.True(t, result.Degraded)
	assert.Contains(t, result.Reason, "backend unavailable")
	assert.Equal(t, FallbackEvents(), result.Events)
}
