package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// DirectoryHandler is the handler surface the router binds routes to.
type DirectoryHandler interface {
	GetPlaces(w http.ResponseWriter, r *http.Request)
	GetPlacesNearby(w http.ResponseWriter, r *http.Request)
	GetEvents(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	directoryHandler DirectoryHandler
	router           *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	directoryHandler DirectoryHandler,
	router *mux.Router) *Router {
	return &Router{
		directoryHandler: directoryHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects optional ?category={category}&featured={bool}
	r.router.HandleFunc("/v1/places", r.directoryHandler.GetPlaces).Methods("GET")

	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={km(float)}
	r.router.HandleFunc("/v1/places/nearby", r.directoryHandler.GetPlacesNearby).Methods("GET")

	r.router.HandleFunc("/v1/events", r.directoryHandler.GetEvents).Methods("GET")

	r.router.HandleFunc("/ping", r.directoryHandler.Ping).Methods("GET")
}
