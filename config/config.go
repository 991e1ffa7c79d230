package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Redis Config
const REDIS_DB_ADDRESS_DEFAULT = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Catalog refresher config
const CATALOG_REFRESHER_SCHEDULE_MINUTES = 60

// Google Sheets API
const SHEETS_ENDPOINT_BASE_V4 = "https://sheets.googleapis.com/v4"
const SHEETS_READONLY_SCOPE = "https://www.googleapis.com/auth/spreadsheets.readonly"

// Tabs and ranges consumed from the source spreadsheet. The places range is
// deliberately wide so sparse trailing columns (the featured flag lives
// around column AC) are still visible.
const PLACES_SHEET_NAME = "Places"
const PLACES_ROWS_RANGE = "A2:AD"
const PLACES_HEADER_RANGE = "A1:AD1"
const EVENTS_SHEET_NAME = "Events"
const EVENTS_ROWS_RANGE = "A2:J"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const PLACES_VALUES_RESOURCE = "places_values.json"
const EVENTS_VALUES_RESOURCE = "events_values.json"
const SPREADSHEET_INFO_RESOURCE = "spreadsheet_info.json"

// SheetID returns the identifier of the source spreadsheet.
func SheetID() string {
	return os.Getenv("GOOGLE_SHEET_ID")
}

// CredentialsPath points at a service-account JSON file, when one is used.
func CredentialsPath() string {
	return os.Getenv("GOOGLE_CREDENTIALS_PATH")
}

// ClientEmail and PrivateKey are the discrete credential alternative to a
// credentials file.
func ClientEmail() string {
	return os.Getenv("GOOGLE_CLIENT_EMAIL")
}

func PrivateKey() string {
	return os.Getenv("GOOGLE_PRIVATE_KEY")
}

// OfflineBuild reports whether the hosting platform set the offline/build
// flag. When true, no network access is attempted at all.
func OfflineBuild() bool {
	v, err := strconv.ParseBool(os.Getenv("OFFLINE_BUILD"))
	return err == nil && v
}

func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS_DEFAULT
}

func ServerAddress() string {
	if addr := os.Getenv("SERVER_ADDRESS"); addr != "" {
		return addr
	}
	return ":8080"
}

// RefreshInterval returns how often the catalog refresher re-imports.
func RefreshInterval() time.Duration {
	if raw := os.Getenv("REFRESH_INTERVAL_MINUTES"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return CATALOG_REFRESHER_SCHEDULE_MINUTES * time.Minute
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
