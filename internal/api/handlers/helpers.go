package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/aafham/Masjid-hunt/internal/platform/obs"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps domain errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidParameters):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrOriginNotFound):
		writeError(w, r, http.StatusNotFound, "station not found")
	case errors.Is(err, domain.ErrUnsupportedArea):
		writeError(w, r, http.StatusBadRequest, "prayer times are only available for Kuala Lumpur and Selangor")
	case errors.Is(err, domain.ErrProviderUnavailable):
		log.Printf("req_id=%s %s failed: %v", obs.RequestID(r.Context()), op, err)
		writeError(w, r, http.StatusBadGateway, "upstream provider unavailable")
	default:
		log.Printf("req_id=%s %s failed: %v", obs.RequestID(r.Context()), op, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// parseLatLng parses a "lat,lng" pair.
func parseLatLng(s string) (domain.Coordinates, error) {
	latStr, lngStr, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("%w: expected \"lat,lng\", got %q", domain.ErrInvalidParameters, s)
	}
	return parseCoordinates(latStr, lngStr)
}

func parseCoordinates(latStr, lngStr string) (domain.Coordinates, error) {
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err1 != nil || err2 != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: lat/lng must be numbers", domain.ErrInvalidParameters)
	}

	c := domain.Coordinates{Lat: lat, Lon: lng}
	if err := c.Validate(); err != nil {
		return domain.Coordinates{}, err
	}
	return c, nil
}
