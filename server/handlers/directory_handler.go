package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"slp-server/models"
	services "slp-server/service"
)

const (
	LAT_QUERY_ARG      = "lat"
	LON_QUERY_ARG      = "lon"
	RADIUS_QUERY_ARG   = "radius"
	CATEGORY_QUERY_ARG = "category"
	FEATURED_QUERY_ARG = "featured"
)

// DirectoryHandler exposes the place and event catalogs over HTTP.
type DirectoryHandler struct {
	directoryService *services.DirectoryService
}

func NewDirectoryHandler(directoryService *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// GetPlaces handles GET /v1/places with optional category and featured
// filters.
func (h *DirectoryHandler) GetPlaces(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	category := vals.Get(CATEGORY_QUERY_ARG)

	featuredOnly := false
	if v := vals.Get(FEATURED_QUERY_ARG); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "Invalid argument "+FEATURED_QUERY_ARG, http.StatusBadRequest)
			return
		}
		featuredOnly = parsed
	}

	places := h.directoryService.GetPlaces()
	filtered := make([]models.Place, 0, len(places))
	for _, place := range places {
		if category != "" && place.Category != category {
			continue
		}
		if featuredOnly && !place.Featured {
			continue
		}
		filtered = append(filtered, place)
	}

	writeJSON(w, filtered)
}

// GetPlacesNearby handles GET /v1/places/nearby.
// Expects ?lat={float}&lon={float}&radius={km,float}.
func (h *DirectoryHandler) GetPlacesNearby(w http.ResponseWriter, r *http.Request) {
	lat, err := parseArgFloat64(r.URL.Query(), LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err := parseArgFloat64(r.URL.Query(), LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err := parseArgFloat64(r.URL.Query(), RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}

	places, err := h.directoryService.GetNearbyPlaces(lat, lon, radius)
	if err != nil {
		log.Println("Error loading nearby places:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, places)
}

// GetEvents handles GET /v1/events.
func (h *DirectoryHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.directoryService.GetEvents())
}

// Ping handles GET /ping
func (h *DirectoryHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}
