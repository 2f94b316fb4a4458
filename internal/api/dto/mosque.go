package dto

import "github.com/aafham/Masjid-hunt/internal/domain"

type MosqueResponse struct {
	PlaceID         string  `json:"place_id"`
	Name            string  `json:"name"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	Address         string  `json:"address,omitempty"`
	DistanceMeters  *int    `json:"distance_meters"`
	DurationMinutes *int    `json:"duration_minutes"`
	DistanceType    string  `json:"distance_type"`
}

type ListMosquesResponse struct {
	Station  StationResponse  `json:"station"`
	RadiusKm int              `json:"radius_km"`
	Total    int              `json:"total"`
	Source   string           `json:"source"`
	Mosques  []MosqueResponse `json:"mosques"`
}

func NewListMosquesResponse(res domain.MosqueResult) ListMosquesResponse {
	out := ListMosquesResponse{
		Station:  NewStationResponse(res.Station),
		RadiusKm: res.RadiusKm,
		Total:    len(res.Mosques),
		Source:   string(res.Source),
		Mosques:  make([]MosqueResponse, 0, len(res.Mosques)),
	}
	for _, m := range res.Mosques {
		out.Mosques = append(out.Mosques, MosqueResponse{
			PlaceID:         m.PlaceID,
			Name:            m.Name,
			Lat:             m.Lat,
			Lng:             m.Lng,
			Address:         m.Address,
			DistanceMeters:  m.DistanceMeters,
			DurationMinutes: m.DurationMinutes,
			DistanceType:    string(m.DistanceType),
		})
	}
	return out
}
