package domain

import (
	"errors"
	"math"
	"testing"
)

func TestClampRadius(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{in: 2, want: 2},
		{in: 5, want: 3},
		{in: 0, want: 1},
		{in: -4, want: 1},
		{in: 1.4, want: 1},
		{in: 2.6, want: 3},
		{in: 3, want: 3},
	}

	for _, tt := range tests {
		got, err := ClampRadius(tt.in)
		if err != nil {
			t.Fatalf("ClampRadius(%v): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ClampRadius(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampRadiusRejectsNonFinite(t *testing.T) {
	for _, in := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := ClampRadius(in); !errors.Is(err, ErrInvalidParameters) {
			t.Errorf("ClampRadius(%v) err = %v, want ErrInvalidParameters", in, err)
		}
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := map[string]SortOrder{
		"nearest":   SortNearest,
		"farthest":  SortFarthest,
		"FARTHEST ": SortFarthest,
		"":          SortNearest,
		"random":    SortNearest,
	}

	for in, want := range tests {
		if got := ParseSortOrder(in); got != want {
			t.Errorf("ParseSortOrder(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCoordinatesValidate(t *testing.T) {
	if err := (Coordinates{Lat: 3.1347, Lon: 101.6869}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := []Coordinates{
		{Lat: math.NaN(), Lon: 101},
		{Lat: 3, Lon: math.Inf(1)},
		{Lat: 91, Lon: 101},
		{Lat: 3, Lon: -181},
	}
	for _, c := range bad {
		if err := c.Validate(); !errors.Is(err, ErrInvalidParameters) {
			t.Errorf("Validate(%+v) err = %v, want ErrInvalidParameters", c, err)
		}
	}
}
