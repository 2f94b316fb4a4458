package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aafham/Masjid-hunt/internal/api/dto"
	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/aafham/Masjid-hunt/internal/ports"
	"github.com/aafham/Masjid-hunt/internal/services"
)

// StationHandler exposes the station reference data.
type StationHandler struct {
	Repo    ports.StationRepository
	Locator *services.StationLocator
}

// List returns all stations, or only one line type with ?line_type=LRT|MRT|ERL.
func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	raw := strings.TrimSpace(r.URL.Query().Get("line_type"))
	lineType, ok := domain.ParseLineType(raw)
	if !ok && raw != "" && !strings.EqualFold(raw, "ALL") {
		writeError(w, r, http.StatusBadRequest, "line_type must be one of ALL, LRT, MRT, ERL")
		return
	}

	stations := h.Repo.ListStations(lineType)

	res := dto.ListStationsResponse{Stations: make([]dto.StationResponse, 0, len(stations))}
	for _, s := range stations {
		res.Stations = append(res.Stations, dto.NewStationResponse(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Nearest returns the stations closest to ?lat=&lng=, plus the closest one
// per line type.
func (h *StationHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	q := r.URL.Query()
	at, err := parseCoordinates(q.Get("lat"), q.Get("lng"))
	if err != nil {
		writeServiceError(w, r, "nearest stations", err)
		return
	}

	limit := services.DefaultNearestStations
	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > services.MaxNearestStations {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 50")
			return
		}
		limit = n
	}

	nearest, err := h.Locator.Nearest(at, limit)
	if err != nil {
		writeServiceError(w, r, "nearest stations", err)
		return
	}
	byLine, err := h.Locator.NearestByLineType(at)
	if err != nil {
		writeServiceError(w, r, "nearest stations", err)
		return
	}

	res := dto.NearestStationsResponse{
		Stations:      make([]dto.NearbyStationResponse, 0, len(nearest)),
		NearestByLine: make(map[string]dto.NearbyStationResponse, len(byLine.ByLineType)),
	}
	for _, ns := range nearest {
		res.Stations = append(res.Stations, dto.NewNearbyStationResponse(ns))
	}
	if byLine.Overall != nil {
		overall := dto.NewNearbyStationResponse(*byLine.Overall)
		res.NearestOverall = &overall
	}
	for lt, ns := range byLine.ByLineType {
		res.NearestByLine[string(lt)] = dto.NewNearbyStationResponse(ns)
	}

	writeJSON(w, r, http.StatusOK, res)
}
