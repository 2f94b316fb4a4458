package domain

import "strings"

type LineType string

const (
	LineLRT LineType = "LRT"
	LineMRT LineType = "MRT"
	LineERL LineType = "ERL"
)

// LineTypes lists every known line type in display order.
var LineTypes = []LineType{LineLRT, LineMRT, LineERL}

// ParseLineType normalizes a line filter. "ALL", empty or unknown input
// yields ok=false, meaning "no filter".
func ParseLineType(s string) (LineType, bool) {
	lt := LineType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range LineTypes {
		if lt == known {
			return lt, true
		}
	}
	return "", false
}

// Represents a transit station used as the origin of a mosque search.
// Stations are reference data loaded once at startup and never mutated.
type Station struct {
	ID          string
	Name        string
	LineType    LineType
	LineName    string
	Coordinates Coordinates
}
