package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aafham/Masjid-hunt/internal/api/dto"
	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/aafham/Masjid-hunt/internal/services"
)

// MosqueHandler serves mosque lookups around a station.
type MosqueHandler struct {
	Finder *services.MosqueFinder
}

// List handles GET /mosques?stationId=&radius=&sort=.
// radius defaults to 2 km and is clamped to [1,3]; unknown sort means nearest.
func (h *MosqueHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	q := r.URL.Query()

	stationID := strings.TrimSpace(q.Get("stationId"))
	if stationID == "" {
		writeError(w, r, http.StatusBadRequest, "stationId is required")
		return
	}

	radius := float64(domain.DefaultRadiusKm)
	if v := strings.TrimSpace(q.Get("radius")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "radius must be a number")
			return
		}
		radius = f
	}

	res, err := h.Finder.FindByStationID(r.Context(), stationID, radius, q.Get("sort"))
	if err != nil {
		writeServiceError(w, r, "find mosques", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewListMosquesResponse(res))
}
