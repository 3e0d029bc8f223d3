package util

import (
	"fmt"
	"math"
	"strconv"
)

const metersPerMile = 1609.34

// DefaultRadiusMeters is the search radius used when no distance is given:
// five miles.
const DefaultRadiusMeters = 8046.72

// ConversionError is returned for a distance that cannot be interpreted as a
// positive number of miles.
type ConversionError struct {
	Input string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("error converting distance %q to meters: %v", e.Input, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// MilesToMeters converts a distance given in miles to whole meters.
func MilesToMeters(miles string) (int, error) {
	m, err := strconv.ParseFloat(miles, 64)
	if err != nil {
		return 0, &ConversionError{Input: miles, Err: err}
	}
	if m <= 0 {
		return 0, &ConversionError{Input: miles, Err: fmt.Errorf("distance must be positive")}
	}
	return int(math.Round(m * metersPerMile)), nil
}

// MetersToMiles is the inverse, used for reporting the search radius.
func MetersToMiles(meters float64) float64 {
	return math.Round(meters/metersPerMile*100) / 100
}
