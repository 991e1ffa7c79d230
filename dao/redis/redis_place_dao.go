package redis

import (
	"encoding/json"
	"fmt"

	"slp-server/db"
	"slp-server/models"
)

const PLACES_GEO_KEY_V1 = "places_geo_v1"
const PLACES_GEO_MEMBER_FORMAT_V1 = "places_geo_member_v1:%s"

// Catalog keys hold the full imported lists as single JSON blobs.
const PLACES_CATALOG_KEY_V1 = "places_catalog_v1"
const EVENTS_CATALOG_KEY_V1 = "events_catalog_v1"

// RedisPlaceDAO handles place and event catalog storage using Redis.
type RedisPlaceDAO struct {
	client db.RedisClient
}

// NewRedisPlaceDAO initializes a RedisPlaceDAO with the Redis client.
func NewRedisPlaceDAO(client db.RedisClient) *RedisPlaceDAO {
	return &RedisPlaceDAO{client: client}
}

// UpsertPlace geo-indexes a place together with its JSON payload. Only
// places that carry coordinates can be indexed.
func (dao *RedisPlaceDAO) UpsertPlace(p models.Place) error {
	if !p.HasCoordinates() {
		return fmt.Errorf("place %s has no coordinates to index", p.ID)
	}
	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(PLACES_GEO_MEMBER_FORMAT_V1, p.ID)
	return dao.client.AddLocationWithJSON(ctx, PLACES_GEO_KEY_V1, memberKey, *p.Latitude, *p.Longitude, p)
}

// GetNearbyPlaces retrieves places within the given radius (in kilometers).
func (dao *RedisPlaceDAO) GetNearbyPlaces(lat, lon, radius float64) ([]models.Place, error) {
	placesJSON, err := dao.client.GetLocationsWithinRadius(PLACES_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisPlaceDAO] failed to get nearby places: %v", err)
	}

	places := make([]models.Place, len(placesJSON))
	for i, placeJSON := range placesJSON {
		if err := json.Unmarshal([]byte(placeJSON), &places[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal place JSON: %v", err)
		}
	}
	return places, nil
}

// SetPlaceCatalog stores the full imported place list.
func (dao *RedisPlaceDAO) SetPlaceCatalog(places []models.Place) error {
	data, err := json.Marshal(places)
	if err != nil {
		return fmt.Errorf("failed to marshal place catalog: %w", err)
	}
	if err := dao.client.Set(PLACES_CATALOG_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set place catalog in redis: %w", err)
	}
	return nil
}

// GetPlaceCatalog retrieves the full imported place list.
func (dao *RedisPlaceDAO) GetPlaceCatalog() ([]models.Place, error) {
	raw, err := dao.client.Get(PLACES_CATALOG_KEY_V1)
	if err != nil {
		return nil, fmt.Errorf("failed to get place catalog from redis: %w", err)
	}
	var places []models.Place
	if err := json.Unmarshal([]byte(raw), &places); err != nil {
		return nil, fmt.Errorf("failed to unmarshal place catalog JSON: %w", err)
	}
	return places, nil
}

// SetEventCatalog stores the full imported event list.
func (dao *RedisPlaceDAO) SetEventCatalog(events []models.Event) error {
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to marshal event catalog: %w", err)
	}
	if err := dao.client.Set(EVENTS_CATALOG_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set event catalog in redis: %w", err)
	}
	return nil
}

// GetEventCatalog retrieves the full imported event list.
func (dao *RedisPlaceDAO) GetEventCatalog() ([]models.Event, error) {
	raw, err := dao.client.Get(EVENTS_CATALOG_KEY_V1)
	if err != nil {
		return nil, fmt.Errorf("failed to get event catalog from redis: %w", err)
	}
	var events []models.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event catalog JSON: %w", err)
	}
	return events, nil
}

// DeleteGeoMember removes a stale geo payload, e.g. when a place disappears
// from the source between refreshes.
func (dao *RedisPlaceDAO) DeleteGeoMember(placeID string) error {
	key := fmt.Sprintf(PLACES_GEO_MEMBER_FORMAT_V1, placeID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete geo member %s: %w", key, err)
	}
	return nil
}

// ListIndexedPlaceIDs returns the ids of all geo-indexed places.
func (dao *RedisPlaceDAO) ListIndexedPlaceIDs() ([]string, error) {
	pattern := fmt.Sprintf(PLACES_GEO_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list place geo keys: %w", err)
	}
	prefix := fmt.Sprintf(PLACES_GEO_MEMBER_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, k[len(prefix):])
	}
	return ids, nil
}
