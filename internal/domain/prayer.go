package domain

type PrayerArea string

const (
	AreaKualaLumpur PrayerArea = "Kuala Lumpur"
	AreaSelangor    PrayerArea = "Selangor"
)

// DetectPrayerArea maps a coordinate to a supported prayer-time area.
// Kuala Lumpur is checked first because its box lies inside Selangor's.
func DetectPrayerArea(c Coordinates) (PrayerArea, bool) {
	if c.Lat >= 3.02 && c.Lat <= 3.27 && c.Lon >= 101.62 && c.Lon <= 101.78 {
		return AreaKualaLumpur, true
	}
	if c.Lat >= 2.73 && c.Lat <= 3.84 && c.Lon >= 100.7 && c.Lon <= 101.99 {
		return AreaSelangor, true
	}
	return "", false
}

// PrayerTimes holds the five daily prayer times as "HH:MM" strings.
type PrayerTimes struct {
	Area    PrayerArea        `json:"area"`
	Source  string            `json:"source"`
	Timings map[string]string `json:"timings"`
}
