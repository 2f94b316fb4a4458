package dto

type DistanceResponse struct {
	DistanceMeters int `json:"distance_meters"`
}

type PrayerTimesResponse struct {
	Area    string            `json:"area"`
	Source  string            `json:"source"`
	Timings map[string]string `json:"timings"`
}
