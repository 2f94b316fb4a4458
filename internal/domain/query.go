package domain

import (
	"fmt"
	"math"
	"strings"
)

const (
	MinRadiusKm     = 1
	MaxRadiusKm     = 3
	DefaultRadiusKm = 2

	// Upper bound on mosques per result, applied before distance enrichment.
	MaxResults = 40
)

type SortOrder string

const (
	SortNearest  SortOrder = "nearest"
	SortFarthest SortOrder = "farthest"
)

// ParseSortOrder maps any input outside the closed enum to SortNearest.
func ParseSortOrder(s string) SortOrder {
	if SortOrder(strings.ToLower(strings.TrimSpace(s))) == SortFarthest {
		return SortFarthest
	}
	return SortNearest
}

// ClampRadius rounds a radius to whole kilometres and clamps it to
// [MinRadiusKm, MaxRadiusKm]. Non-finite input is rejected.
func ClampRadius(km float64) (int, error) {
	if math.IsNaN(km) || math.IsInf(km, 0) {
		return 0, fmt.Errorf("%w: radius must be a finite number", ErrInvalidParameters)
	}

	r := int(math.Round(km))
	if r < MinRadiusKm {
		return MinRadiusKm, nil
	}
	if r > MaxRadiusKm {
		return MaxRadiusKm, nil
	}
	return r, nil
}
