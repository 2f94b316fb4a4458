package api

import (
	"net/http"

	"github.com/aafham/Masjid-hunt/internal/api/handlers"
	"github.com/aafham/Masjid-hunt/internal/ports"
	"github.com/aafham/Masjid-hunt/internal/services"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Stations ports.StationRepository
	Locator  *services.StationLocator
	Finder   *services.MosqueFinder
	Prayer   *services.PrayerTimesService
	// MapsAPIKey enables /map-embed; empty disables it.
	MapsAPIKey string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	stationHandler := &handlers.StationHandler{Repo: d.Stations, Locator: d.Locator}
	mosqueHandler := &handlers.MosqueHandler{Finder: d.Finder}
	prayerHandler := &handlers.PrayerTimesHandler{Service: d.Prayer}
	embedHandler := &handlers.MapEmbedHandler{APIKey: d.MapsAPIKey}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/stations", stationHandler.List)
	mux.HandleFunc("/stations/nearest", stationHandler.Nearest)
	mux.HandleFunc("/mosques", mosqueHandler.List)
	mux.HandleFunc("/distance", handlers.Distance)
	mux.HandleFunc("/map-embed", embedHandler.Redirect)
	mux.HandleFunc("/prayer-times", prayerHandler.Get)

	return requestIDMiddleware(loggingMiddleware(recoverMiddleware(mux)))
}
