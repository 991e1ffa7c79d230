package importer

import (
	"log"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"slp-server/models"
)

// Sentinel some sheet editors type into empty image cells.
const NOT_AVAILABLE_SENTINEL = "No disponible"

// cleanText trims surrounding whitespace. Empty input stays an empty string.
func cleanText(text string) string {
	return strings.TrimSpace(text)
}

// categoryKeywords maps raw category keywords to the closed category set, in
// priority order. First match wins: venue descriptions can match several
// keywords at once.
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"café", models.CategoryCafe},
	{"cafe", models.CategoryCafe},
	{"coffee", models.CategoryCafe},
	{"restaurant", models.CategoryRestaurant},
	{"hotel", models.CategoryHotel},
	{"bar", models.CategoryBar},
	{"museum", models.CategoryMuseum},
	{"tienda", models.CategoryShop},
	{"shop", models.CategoryShop},
	{"parque", models.CategoryPark},
	{"park", models.CategoryPark},
	{"servicio", models.CategoryService},
	{"service", models.CategoryService},
}

// NormalizeCategory coerces free-text category input into the closed set.
// Multi-category cells keep only their primary segment (the text before the
// first comma or ampersand) before keyword matching, so
// "Café & Restaurante" classifies as cafe.
func NormalizeCategory(raw string) string {
	category := primarySegment(cleanText(raw))
	lower := strings.ToLower(category)
	for _, entry := range categoryKeywords {
		if strings.Contains(lower, entry.keyword) {
			return entry.category
		}
	}
	return models.CategoryOther
}

func primarySegment(s string) string {
	if i := strings.IndexAny(s, ",&"); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

// NormalizeEventCategory collapses anything outside the event enum to other.
func NormalizeEventCategory(raw string) string {
	switch strings.ToLower(cleanText(raw)) {
	case models.EventCategorySports:
		return models.EventCategorySports
	case models.EventCategoryCultural:
		return models.EventCategoryCultural
	default:
		return models.EventCategoryOther
	}
}

// parseCoordinate accepts only finite numeric cells. Anything else omits the
// coordinate entirely rather than defaulting it to 0.
func parseCoordinate(raw string) (float64, bool) {
	raw = cleanText(raw)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// hoursPatterns recognize business-hours text. A common spreadsheet
// data-entry error leaks the hours column into the image column, so the same
// signals that accept a value as hours reject it as an image URL.
var hoursPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(monday|tuesday|wednesday|thursday|friday|saturday|sunday):`),
	regexp.MustCompile(`\|`),
	regexp.MustCompile(`(AM|PM)`),
	regexp.MustCompile(`–`),
	regexp.MustCompile(`(?i)closed`),
	regexp.MustCompile(`^\d{1,2}:\d{2}`),
}

func matchesHoursPattern(s string) bool {
	for _, pattern := range hoursPatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

var dayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// LooksLikeHours reports whether free text carries at least one
// business-hours signal: a day name, a pipe separator, or an AM/PM marker.
func LooksLikeHours(raw string) bool {
	s := cleanText(raw)
	if s == "" {
		return false
	}
	lower := strings.ToLower(s)
	for _, day := range dayNames {
		if strings.Contains(lower, day) {
			return true
		}
	}
	return strings.Contains(s, "|") || strings.Contains(s, "AM") || strings.Contains(s, "PM")
}

// Known share-link dialects for cloud-drive images. File ids are long tokens
// of word characters and dashes.
var (
	driveFileIDPattern  = regexp.MustCompile(`/file/d/([-\w]{25,})`)
	driveIDParamPattern = regexp.MustCompile(`[?&]id=([-\w]{25,})`)
	driveUCPattern      = regexp.MustCompile(`/uc\?.*id=([-\w]{25,})`)
)

// NormalizeImageURL validates an image URL candidate and rewrites known
// provider dialects into a direct-view form. The boolean is false when the
// field should be omitted from the record.
func NormalizeImageURL(raw string) (string, bool) {
	imageURL := cleanText(raw)
	if imageURL == "" || imageURL == NOT_AVAILABLE_SENTINEL {
		return "", false
	}
	if matchesHoursPattern(imageURL) {
		// Hours text misfiled into the image column.
		return "", false
	}
	if !isValidURL(imageURL) {
		return "", false
	}

	if strings.Contains(imageURL, "drive.google.com") {
		fileID := extractDriveFileID(imageURL)
		if fileID == "" {
			log.Printf("[RecordImporter] Could not extract file id from drive link: %s", imageURL)
			return "", false
		}
		return "https://drive.google.com/uc?export=view&id=" + fileID, true
	}

	if strings.Contains(imageURL, "blogger.googleusercontent.com") {
		// Strip the size/crop suffix to get the unmodified original.
		return strings.SplitN(imageURL, "=", 2)[0], true
	}

	// Review-site links and any other valid URL pass through unchanged.
	return imageURL, true
}

func extractDriveFileID(imageURL string) string {
	for _, pattern := range []*regexp.Regexp{driveFileIDPattern, driveIDParamPattern, driveUCPattern} {
		if match := pattern.FindStringSubmatch(imageURL); match != nil {
			return match[1]
		}
	}
	return ""
}

func isValidURL(raw string) bool {
	parsed, err := url.Parse(raw)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}

// SplitTags splits a tags cell on comma, semicolon or pipe and lowercases
// each token. Duplicates are kept as they appear.
func SplitTags(raw string) []string {
	if cleanText(raw) == "" {
		return nil
	}
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	})
	var tags []string
	for _, token := range tokens {
		token = strings.ToLower(strings.TrimSpace(token))
		if token != "" {
			tags = append(tags, token)
		}
	}
	return tags
}

// featuredSynonyms are the spreadsheet spellings that mark a record featured.
var featuredSynonyms = map[string]bool{
	"true":      true,
	"verdadero": true,
	"1":         true,
	"si":        true,
	"sí":        true,
	"yes":       true,
}

// ParseFeaturedFlag matches the trimmed, lowercased cell against the synonym
// set. Anything unrecognized is not featured.
func ParseFeaturedFlag(raw string) bool {
	return featuredSynonyms[strings.ToLower(cleanText(raw))]
}

// slugPrefix keeps the first few characters of a name with whitespace
// collapsed to dashes, enough for a stable human-readable id suffix.
func slugPrefix(name string) string {
	runes := []rune(name)
	if len(runes) > 10 {
		runes = runes[:10]
	}
	var b strings.Builder
	for _, r := range runes {
		if unicode.IsSpace(r) {
			b.WriteRune('-')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
