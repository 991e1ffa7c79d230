package services

import (
	"log"
	"time"

	"slp-server/dao/redis"
	"slp-server/importer"
)

// CatalogRefresherService periodically re-imports the spreadsheet source and
// pushes the results into Redis.
type CatalogRefresherService struct {
	placeDao *redis.RedisPlaceDAO
	importer *importer.RecordImporter
}

// NewCatalogRefresherService constructs a refresher with its dependencies.
func NewCatalogRefresherService(
	placeDao *redis.RedisPlaceDAO,
	recordImporter *importer.RecordImporter,
) *CatalogRefresherService {
	return &CatalogRefresherService{
		placeDao: placeDao,
		importer: recordImporter,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (cr *CatalogRefresherService) StartPeriodicJob(interval time.Duration) {
	go cr.startPeriodicJob(interval)
}

func (cr *CatalogRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[CatalogRefresherService] Running periodic catalog refresh.")
		if err := cr.RefreshCatalog(); err != nil {
			log.Printf("[CatalogRefresherService] RefreshCatalog returned error: %v", err)
		} else {
			log.Println("[CatalogRefresherService] RefreshCatalog completed successfully.")
		}
	}
}

// RefreshCatalog re-runs both imports, stores the catalogs, rebuilds the geo
// index and prunes members that disappeared from the source. The import
// itself never fails; only cache writes can surface an error.
func (cr *CatalogRefresherService) RefreshCatalog() error {
	placesResult := cr.importer.ImportPlaces()
	if placesResult.Degraded {
		log.Printf("[CatalogRefresherService] Places import degraded: %s", placesResult.Reason)
	}
	if err := cr.placeDao.SetPlaceCatalog(placesResult.Places); err != nil {
		log.Printf("[CatalogRefresherService] Failed to store place catalog: %v", err)
		return err
	}

	indexed := make(map[string]struct{})
	geoCount := 0
	for _, place := range placesResult.Places {
		if !place.HasCoordinates() {
			continue
		}
		if err := cr.placeDao.UpsertPlace(place); err != nil {
			log.Printf("[CatalogRefresherService] Upsert failed for %s: %v", place.ID, err)
			continue
		}
		indexed[place.ID] = struct{}{}
		geoCount++
	}
	cr.pruneStaleGeoMembers(indexed)
	log.Printf("[CatalogRefresherService] Cached %d places (%d geo-indexed)", len(placesResult.Places), geoCount)

	eventsResult := cr.importer.ImportEvents()
	if eventsResult.Degraded {
		log.Printf("[CatalogRefresherService] Events import degraded: %s", eventsResult.Reason)
	}
	if err := cr.placeDao.SetEventCatalog(eventsResult.Events); err != nil {
		log.Printf("[CatalogRefresherService] Failed to store event catalog: %v", err)
		return err
	}
	log.Printf("[CatalogRefresherService] Cached %d events", len(eventsResult.Events))

	return nil
}

// pruneStaleGeoMembers drops payloads of places no longer in the source so
// nearby queries do not serve records that disappeared from the sheet.
func (cr *CatalogRefresherService) pruneStaleGeoMembers(current map[string]struct{}) {
	ids, err := cr.placeDao.ListIndexedPlaceIDs()
	if err != nil {
		log.Printf("[CatalogRefresherService] Could not list indexed places: %v", err)
		return
	}
	for _, id := range ids {
		if _, ok := current[id]; ok {
			continue
		}
		if err := cr.placeDao.DeleteGeoMember(id); err != nil {
			log.Printf("[CatalogRefresherService] Failed to prune %s: %v", id, err)
		}
	}
}
