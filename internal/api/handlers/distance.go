package handlers

import (
	"net/http"

	"github.com/aafham/Masjid-hunt/internal/api/dto"
	"github.com/aafham/Masjid-hunt/internal/geo"
)

// Distance handles GET /distance?origin=lat,lng&dest=lat,lng.
func Distance(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	q := r.URL.Query()
	if q.Get("origin") == "" || q.Get("dest") == "" {
		writeError(w, r, http.StatusBadRequest, "origin and dest are required")
		return
	}

	origin, err := parseLatLng(q.Get("origin"))
	if err != nil {
		writeServiceError(w, r, "distance", err)
		return
	}
	dest, err := parseLatLng(q.Get("dest"))
	if err != nil {
		writeServiceError(w, r, "distance", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{DistanceMeters: geo.DistanceMeters(origin, dest)})
}
