package importer

import (
	"fmt"
	"log"
	"strings"

	"slp-server/api/sheets"
	"slp-server/config"
	"slp-server/models"
)

// Column layout of the places tab (0-indexed within A2:AD).
const (
	PLACE_COL_NAME        = 0
	PLACE_COL_CATEGORY    = 1
	PLACE_COL_ADDRESS     = 2
	PLACE_COL_CITY        = 3
	PLACE_COL_PHONE       = 4
	PLACE_COL_WEBSITE     = 5
	PLACE_COL_INSTAGRAM   = 6
	PLACE_COL_LATITUDE    = 7
	PLACE_COL_LONGITUDE   = 8
	PLACE_COL_DESCRIPTION = 9
	PLACE_COL_IMAGE_URL   = 10
	PLACE_COL_HOURS       = 11
	PLACE_COL_TAGS        = 12
)

// Default position of the "Negocio Destacado" column (AC) when the header
// probe cannot locate it by name.
const DEFAULT_FEATURED_COLUMN_INDEX = 28

// Column layout of the events tab, fixed within A2:J.
const (
	EVENT_COL_TITLE       = 0
	EVENT_COL_DESCRIPTION = 1
	EVENT_COL_START_DATE  = 2
	EVENT_COL_END_DATE    = 3
	EVENT_COL_LOCATION    = 4
	EVENT_COL_CATEGORY    = 5
	EVENT_COL_IMAGE_URL   = 6
	EVENT_COL_FEATURED    = 7
)

// Config carries the ambient settings the importer needs. They are injected
// explicitly so tests never have to mutate the process environment.
type Config struct {
	SpreadsheetID string
	OfflineBuild  bool
}

// PlacesResult is the outcome of a place import. Degraded marks results
// served from the static fallback (or offline) path rather than a live
// fetch; callers that only want something to render can ignore it.
type PlacesResult struct {
	Places   []models.Place
	Degraded bool
	Reason   string
}

// EventsResult is the outcome of an event import.
type EventsResult struct {
	Events   []models.Event
	Degraded bool
	Reason   string
}

// RecordImporter turns loosely-typed spreadsheet rows into validated Place
// and Event records. It never fails: any upstream problem degrades to the
// static fallback data so pages always have something to render.
type RecordImporter struct {
	api sheets.SheetsAPI
	cfg Config
}

// NewRecordImporter constructs a RecordImporter over the given source.
func NewRecordImporter(api sheets.SheetsAPI, cfg Config) *RecordImporter {
	return &RecordImporter{
		api: api,
		cfg: cfg,
	}
}

// ImportPlaces fetches, cleans and classifies the place records. The curated
// seed set is appended after every outcome, degraded or not.
func (imp *RecordImporter) ImportPlaces() PlacesResult {
	if imp.cfg.OfflineBuild {
		log.Println("[RecordImporter] Offline build mode, skipping live fetch")
		return PlacesResult{Places: withSeedPlaces(FallbackPlaces()), Degraded: true, Reason: "offline build mode"}
	}
	if imp.cfg.SpreadsheetID == "" {
		log.Println("[RecordImporter] No spreadsheet id configured, serving fallback places")
		return PlacesResult{Places: withSeedPlaces(FallbackPlaces()), Degraded: true, Reason: "missing spreadsheet id"}
	}

	places, err := imp.fetchPlaces()
	if err != nil {
		log.Printf("[RecordImporter] Place import failed, serving fallback places: %v", err)
		return PlacesResult{Places: withSeedPlaces(FallbackPlaces()), Degraded: true, Reason: err.Error()}
	}
	return PlacesResult{Places: withSeedPlaces(places)}
}

// ImportEvents fetches the event records. Simpler than places: fixed column
// layout, no featured-column discovery, no seed merge.
func (imp *RecordImporter) ImportEvents() EventsResult {
	if imp.cfg.OfflineBuild {
		log.Println("[RecordImporter] Offline build mode, skipping live fetch")
		return EventsResult{Events: FallbackEvents(), Degraded: true, Reason: "offline build mode"}
	}
	if imp.cfg.SpreadsheetID == "" {
		log.Println("[RecordImporter] No spreadsheet id configured, serving fallback events")
		return EventsResult{Events: FallbackEvents(), Degraded: true, Reason: "missing spreadsheet id"}
	}

	events, err := imp.fetchEvents()
	if err != nil {
		log.Printf("[RecordImporter] Event import failed, serving fallback events: %v", err)
		return EventsResult{Events: FallbackEvents(), Degraded: true, Reason: err.Error()}
	}
	return EventsResult{Events: events}
}

func (imp *RecordImporter) fetchPlaces() ([]models.Place, error) {
	sheetName := imp.resolveSheetName(config.PLACES_SHEET_NAME)

	rowsRange := fmt.Sprintf("%s!%s", sheetName, config.PLACES_ROWS_RANGE)
	rowsResp, err := imp.api.GetValues(imp.cfg.SpreadsheetID, rowsRange)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rows from %q: %w", rowsRange, err)
	}
	log.Printf("[RecordImporter] Fetched %d rows from %q", len(rowsResp.Values), rowsRange)

	headerRange := fmt.Sprintf("%s!%s", sheetName, config.PLACES_HEADER_RANGE)
	headerResp, err := imp.api.GetValues(imp.cfg.SpreadsheetID, headerRange)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch header row from %q: %w", headerRange, err)
	}
	if len(headerResp.Values) == 0 || len(headerResp.Values[0]) == 0 {
		// Schema surprise: no headers at all. Do not guess a layout.
		log.Printf("[RecordImporter] No header row in %q, importing nothing", sheetName)
		return nil, nil
	}

	featuredIndex := findFeaturedColumn(headerResp.Values[0])

	var places []models.Place
	featuredCount := 0
	for i, row := range rowsResp.Values {
		place, ok := buildPlace(row, i, featuredIndex)
		if !ok {
			// Blank separator row, not an error.
			continue
		}
		if place.Featured {
			featuredCount++
		}
		places = append(places, place)
	}
	log.Printf("[RecordImporter] Imported %d places (%d featured)", len(places), featuredCount)
	return places, nil
}

func (imp *RecordImporter) fetchEvents() ([]models.Event, error) {
	sheetName := imp.resolveSheetName(config.EVENTS_SHEET_NAME)

	rowsRange := fmt.Sprintf("%s!%s", sheetName, config.EVENTS_ROWS_RANGE)
	rowsResp, err := imp.api.GetValues(imp.cfg.SpreadsheetID, rowsRange)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rows from %q: %w", rowsRange, err)
	}

	var events []models.Event
	for i, row := range rowsResp.Values {
		event, ok := buildEvent(row, i)
		if !ok {
			continue
		}
		events = append(events, event)
	}
	log.Printf("[RecordImporter] Imported %d events", len(events))
	return events, nil
}

// resolveSheetName probes the document for the preferred tab. When the tab
// is absent the first available one is used instead; when the probe itself
// fails the preferred name is kept. One shot, no retries.
func (imp *RecordImporter) resolveSheetName(preferred string) string {
	info, err := imp.api.GetSpreadsheet(imp.cfg.SpreadsheetID)
	if err != nil {
		log.Printf("[RecordImporter] Could not list tabs, keeping %q: %v", preferred, err)
		return preferred
	}

	for _, sheet := range info.Sheets {
		if strings.EqualFold(sheet.Properties.Title, preferred) {
			return preferred
		}
	}
	if len(info.Sheets) > 0 && info.Sheets[0].Properties.Title != "" {
		first := info.Sheets[0].Properties.Title
		log.Printf("[RecordImporter] %q tab not found, using first tab %q", preferred, first)
		return first
	}
	return preferred
}

// findFeaturedColumn locates the "Negocio Destacado" column by fuzzy header
// match, falling back to the fixed AC position.
func findFeaturedColumn(headers []string) int {
	for i, header := range headers {
		lower := strings.ToLower(header)
		if strings.Contains(lower, "destacado") || strings.Contains(lower, "featured") {
			log.Printf("[RecordImporter] Found featured column at index %d (%q)", i, header)
			return i
		}
	}
	log.Printf("[RecordImporter] Using default featured column index %d", DEFAULT_FEATURED_COLUMN_INDEX)
	return DEFAULT_FEATURED_COLUMN_INDEX
}

// buildPlace assembles one Place from a raw row. The second return value is
// false for blank separator rows (empty first cell), which are skipped.
func buildPlace(row []string, index, featuredIndex int) (models.Place, bool) {
	if cell(row, PLACE_COL_NAME) == "" {
		return models.Place{}, false
	}

	name := cleanText(cell(row, PLACE_COL_NAME))
	place := models.Place{
		ID:       fmt.Sprintf("place-%d-%s", index, slugPrefix(name)),
		Name:     name,
		Category: NormalizeCategory(cell(row, PLACE_COL_CATEGORY)),
		Address:  cleanText(cell(row, PLACE_COL_ADDRESS)),
	}

	place.City = cleanText(cell(row, PLACE_COL_CITY))
	place.Phone = cleanText(cell(row, PLACE_COL_PHONE))
	place.Website = cleanText(cell(row, PLACE_COL_WEBSITE))
	place.Instagram = cleanText(cell(row, PLACE_COL_INSTAGRAM))
	place.Description = cleanText(cell(row, PLACE_COL_DESCRIPTION))

	if lat, ok := parseCoordinate(cell(row, PLACE_COL_LATITUDE)); ok {
		place.Latitude = &lat
	}
	if lon, ok := parseCoordinate(cell(row, PLACE_COL_LONGITUDE)); ok {
		place.Longitude = &lon
	}

	if imageURL, ok := NormalizeImageURL(cell(row, PLACE_COL_IMAGE_URL)); ok {
		place.ImageURL = imageURL
	}
	if hours := cell(row, PLACE_COL_HOURS); LooksLikeHours(hours) {
		place.Hours = cleanText(hours)
	}
	place.Tags = SplitTags(cell(row, PLACE_COL_TAGS))

	if featuredIndex < len(row) {
		place.Featured = ParseFeaturedFlag(row[featuredIndex])
	}

	return place, true
}

// buildEvent assembles one Event from a raw row, skipping blank rows.
func buildEvent(row []string, index int) (models.Event, bool) {
	if cell(row, EVENT_COL_TITLE) == "" {
		return models.Event{}, false
	}

	title := cleanText(cell(row, EVENT_COL_TITLE))
	event := models.Event{
		ID:          fmt.Sprintf("event-%d-%s", index, slugPrefix(title)),
		Title:       title,
		Description: cleanText(cell(row, EVENT_COL_DESCRIPTION)),
		StartDate:   cleanText(cell(row, EVENT_COL_START_DATE)),
		EndDate:     cleanText(cell(row, EVENT_COL_END_DATE)),
		Location:    cleanText(cell(row, EVENT_COL_LOCATION)),
		Category:    NormalizeEventCategory(cell(row, EVENT_COL_CATEGORY)),
		Featured:    ParseFeaturedFlag(cell(row, EVENT_COL_FEATURED)),
	}
	if imageURL, ok := NormalizeImageURL(cell(row, EVENT_COL_IMAGE_URL)); ok {
		event.ImageURL = imageURL
	}

	return event, true
}

// cell reads a column from a ragged row, treating missing cells as empty.
func cell(row []string, index int) string {
	if index < len(row) {
		return row[index]
	}
	return ""
}
