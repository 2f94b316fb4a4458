package handlers

import (
	"net/http"

	"github.com/aafham/Masjid-hunt/internal/api/dto"
	"github.com/aafham/Masjid-hunt/internal/services"
)

type PrayerTimesHandler struct {
	Service *services.PrayerTimesService
}

// Get handles GET /prayer-times?lat=&lng=.
func (h *PrayerTimesHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	q := r.URL.Query()
	at, err := parseCoordinates(q.Get("lat"), q.Get("lng"))
	if err != nil {
		writeServiceError(w, r, "prayer times", err)
		return
	}

	pt, err := h.Service.Get(r.Context(), at)
	if err != nil {
		writeServiceError(w, r, "prayer times", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PrayerTimesResponse{
		Area:    string(pt.Area),
		Source:  pt.Source,
		Timings: pt.Timings,
	})
}
