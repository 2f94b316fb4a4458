package domain

import "testing"

func TestDetectPrayerArea(t *testing.T) {
	tests := []struct {
		name   string
		coord  Coordinates
		want   PrayerArea
		wantOK bool
	}{
		{name: "KL Sentral", coord: Coordinates{Lat: 3.1347, Lon: 101.6869}, want: AreaKualaLumpur, wantOK: true},
		{name: "Shah Alam", coord: Coordinates{Lat: 3.0733, Lon: 101.5185}, want: AreaSelangor, wantOK: true},
		{name: "Penang", coord: Coordinates{Lat: 5.4141, Lon: 100.3288}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectPrayerArea(tt.coord)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("DetectPrayerArea = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
