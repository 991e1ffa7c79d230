package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slp-server/api/sheets"
	"slp-server/dao/redis"
	"slp-server/db"
	"slp-server/importer"
	"slp-server/models"
)

func newTestRefresher(t *testing.T) (*CatalogRefresherService, *redis.RedisPlaceDAO) {
	t.Setenv("PROJECT_ROOT", "..")
	placeDao := redis.NewRedisPlaceDAO(db.NewMockRedisClient(context.Background()))
	recordImporter := importer.NewRecordImporter(
		sheets.NewSheetsApiClientMock(),
		importer.Config{SpreadsheetID: "mock-spreadsheet"},
	)
	return NewCatalogRefresherService(placeDao, recordImporter), placeDao
}

func TestCatalogRefresherService_RefreshCatalog(t *testing.T) {
	refresher, placeDao := newTestRefresher(t)

	require.NoError(t, refresher.RefreshCatalog())

	places, err := placeDao.GetPlaceCatalog()
	require.NoError(t, err)
	// Four fixture rows survive the blank separator, then the seed set.
	assert.Len(t, places, 4+len(importer.SeedPlaces()))

	events, err := placeDao.GetEventCatalog()
	require.NoError(t, err)
	assert.Len(t, events, 3)

	ids, err := placeDao.ListIndexedPlaceIDs()
	require.NoError(t, err)
	// Only places with coordinates are geo-indexed: two fixture rows carry
	// them, plus every seed place.
	assert.Len(t, ids, 2+len(importer.SeedPlaces()))
}

func TestCatalogRefresherService_RefreshCatalog_PrunesStaleMembers(t *testing.T) {
	refresher, placeDao := newTestRefresher(t)

	lat, lon := 22.0, -100.0
	stale := models.Place{
		ID:        "place-99-Gone",
		Name:      "Gone Venue",
		Category:  models.CategoryOther,
		Latitude:  &lat,
		Longitude: &lon,
	}
	require.NoError(t, placeDao.UpsertPlace(stale))

	require.NoError(t, refresher.RefreshCatalog())

	ids, err := placeDao.ListIndexedPlaceIDs()
	require.NoError(t, err)
	assert.NotContains(t, ids, stale.ID)
}
