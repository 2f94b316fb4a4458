package dto

import (
	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/aafham/Masjid-hunt/internal/services"
)

type StationResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	LineType string  `json:"line_type"`
	LineName string  `json:"line_name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

type ListStationsResponse struct {
	Stations []StationResponse `json:"stations"`
}

type NearbyStationResponse struct {
	StationResponse
	DistanceMeters int `json:"distance_meters"`
}

type NearestStationsResponse struct {
	Stations       []NearbyStationResponse          `json:"stations"`
	NearestOverall *NearbyStationResponse           `json:"nearest_overall"`
	NearestByLine  map[string]NearbyStationResponse `json:"nearest_by_line"`
}

func NewStationResponse(s domain.Station) StationResponse {
	return StationResponse{
		ID:       s.ID,
		Name:     s.Name,
		LineType: string(s.LineType),
		LineName: s.LineName,
		Lat:      s.Coordinates.Lat,
		Lng:      s.Coordinates.Lon,
	}
}

func NewNearbyStationResponse(ns services.NearbyStation) NearbyStationResponse {
	return NearbyStationResponse{
		StationResponse: NewStationResponse(ns.Station),
		DistanceMeters:  ns.DistanceMeters,
	}
}
