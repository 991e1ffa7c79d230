package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slp-server/dao/redis"
	"slp-server/db"
	"slp-server/importer"
	"slp-server/models"
	services "slp-server/service"
)

// newOfflineHandler wires a handler over an empty cache and an offline
// importer, so every read serves the static fallback and seed data.
func newOfflineHandler() (*DirectoryHandler, *redis.RedisPlaceDAO) {
	placeDao := redis.NewRedisPlaceDAO(db.NewMockRedisClient(context.Background()))
	recordImporter := importer.NewRecordImporter(nil, importer.Config{OfflineBuild: true})
	return NewDirectoryHandler(services.NewDirectoryService(placeDao, recordImporter)), placeDao
}

func TestDirectoryHandler_GetPlaces(t *testing.T) {
	handler, _ := newOfflineHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/places", nil)
	rec := httptest.NewRecorder()

	handler.GetPlaces(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var places []models.Place
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &places))
	assert.Len(t, places, len(importer.FallbackPlaces())+len(importer.SeedPlaces()))
}

func TestDirectoryHandler_GetPlaces_Filters(t *testing.T) {
	handler, _ := newOfflineHandler()

	tests := []struct {
		name  string
		query string
		check func(t *testing.T, places []models.Place)
	}{
		{
			name:  "category filter",
			query: "?category=cafe",
			check: func(t *testing.T, places []models.Place) {
				require.NotEmpty(t, places)
				for _, place := range places {
					assert.Equal(t, models.CategoryCafe, place.Category)
				}
			},
		},
		{
			name:  "featured filter",
			query: "?featured=true",
			check: func(t *testing.T, places []models.Place) {
				require.NotEmpty(t, places)
				for _, place := range places {
					assert.True(t, place.Featured)
				}
			},
		},
		{
			name:  "featured false is a no-op filter",
			query: "?featured=false",
			check: func(t *testing.T, places []models.Place) {
				assert.Len(t, places, len(importer.FallbackPlaces())+len(importer.SeedPlaces()))
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/places"+test.query, nil)
			rec := httptest.NewRecorder()

			handler.GetPlaces(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var places []models.Place
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &places))
			test.check(t, places)
		})
	}
}

func TestDirectoryHandler_GetPlaces_InvalidFeaturedArg(t *testing.T) {
	handler, _ := newOfflineHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/places?featured=maybe", nil)
	rec := httptest.NewRecorder()

	handler.GetPlaces(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDirectoryHandler_GetPlacesNearby(t *testing.T) {
	handler, placeDao := newOfflineHandler()

	lat, lon := 22.1502, -100.9867
	require.NoError(t, placeDao.UpsertPlace(models.Place{
		ID:        "place-0-Café-Flore",
		Name:      "Café Florencia",
		Category:  models.CategoryCafe,
		Latitude:  &lat,
		Longitude: &lon,
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/places/nearby?lat=22.15&lon=-100.98&radius=5", nil)
	rec := httptest.NewRecorder()

	handler.GetPlacesNearby(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var places []models.Place
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &places))
	require.Len(t, places, 1)
	assert.Equal(t, "Café Florencia", places[0].Name)
}

func TestDirectoryHandler_GetPlacesNearby_InvalidArgs(t *testing.T) {
	handler, _ := newOfflineHandler()

	for _, query := range []string{
		"?lon=-100.98&radius=5",
		"?lat=22.15&radius=5",
		"?lat=22.15&lon=-100.98",
		"?lat=north&lon=-100.98&radius=5",
	} {
		req := httptest.NewRequest(http.MethodGet, "/v1/places/nearby"+query, nil)
		rec := httptest.NewRecorder()

		handler.GetPlacesNearby(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "query %q", query)
	}
}

func TestDirectoryHandler_GetEvents(t *testing.T) {
	handler, _ := newOfflineHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	rec := httptest.NewRecorder()

	handler.GetEvents(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var events []models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	assert.Len(t, events, len(importer.FallbackEvents()))
}

func TestDirectoryHandler_Ping(t *testing.T) {
	handler, _ := newOfflineHandler()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()

	handler.Ping(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"pong"}`, rec.Body.String())
}
