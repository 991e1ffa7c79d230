package services

import (
	"log"

	"slp-server/dao/redis"
	"slp-server/importer"
	"slp-server/models"
)

// DirectoryService serves the place and event catalogs. Reads prefer the
// Redis cache; a cold or broken cache falls through to a fresh import, which
// itself never fails.
type DirectoryService struct {
	placeDao *redis.RedisPlaceDAO
	importer *importer.RecordImporter
}

// NewDirectoryService constructs a DirectoryService with its dependencies.
func NewDirectoryService(
	placeDao *redis.RedisPlaceDAO,
	recordImporter *importer.RecordImporter) *DirectoryService {

	return &DirectoryService{
		placeDao: placeDao,
		importer: recordImporter,
	}
}

// GetPlaces returns the full place catalog.
func (ds *DirectoryService) GetPlaces() []models.Place {
	places, err := ds.placeDao.GetPlaceCatalog()
	if err == nil && len(places) > 0 {
		return places
	}
	if err != nil {
		log.Printf("[DirectoryService] Catalog read failed, importing directly: %v", err)
	}
	result := ds.importer.ImportPlaces()
	if result.Degraded {
		log.Printf("[DirectoryService] Serving degraded place data: %s", result.Reason)
	}
	return result.Places
}

// GetEvents returns the full event catalog.
func (ds *DirectoryService) GetEvents() []models.Event {
	events, err := ds.placeDao.GetEventCatalog()
	if err == nil && len(events) > 0 {
		return events
	}
	if err != nil {
		log.Printf("[DirectoryService] Event catalog read failed, importing directly: %v", err)
	}
	result := ds.importer.ImportEvents()
	if result.Degraded {
		log.Printf("[DirectoryService] Serving degraded event data: %s", result.Reason)
	}
	return result.Events
}

// GetNearbyPlaces returns geo-indexed places within radius kilometers.
func (ds *DirectoryService) GetNearbyPlaces(lat, lon, radius float64) ([]models.Place, error) {
	return ds.placeDao.GetNearbyPlaces(lat, lon, radius)
}
