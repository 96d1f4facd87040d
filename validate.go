package utm

import (
	"errors"
	"fmt"
	"math"
)

// Range errors returned by ValidateGeodetic and ValidateCoord.
var (
	ErrLatitudeRange  = errors.New("latitude out of range")
	ErrLongitudeRange = errors.New("longitude out of range")
	ErrZoneRange      = errors.New("zone out of range")
	ErrHemisphere     = errors.New("hemisphere out of range")
	ErrEastingRange   = errors.New("easting out of range")
	ErrNorthingRange  = errors.New("northing out of range")
)

const minLatitude = -80.5 // degrees
const maxLatitude = 84.5  // degrees
const minEasting = 100000.0
const maxEasting = 900000.0
const minNorthing = 0.0
const maxNorthing = 10000000.0

// ValidateGeodetic reports whether latitude and longitude lie inside the UTM
// envelope. Forward does not call it.
func ValidateGeodetic(latitude, longitude float64) error {
	if math.IsNaN(latitude) || latitude < minLatitude || latitude >= maxLatitude {
		return fmt.Errorf("%w: %v", ErrLatitudeRange, latitude)
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return fmt.Errorf("%w: %v", ErrLongitudeRange, longitude)
	}
	return nil
}

// ValidateCoord reports whether c, zone and h describe a point on the UTM
// grid. Inverse does not call it.
func ValidateCoord(c Coord, zone int, h Hemisphere) error {
	if zone < 1 || zone > 60 {
		return fmt.Errorf("%w: %d", ErrZoneRange, zone)
	}
	if h != HemisphereNorth && h != HemisphereSouth {
		return ErrHemisphere
	}
	if math.IsNaN(c.Easting) || c.Easting < minEasting || c.Easting > maxEasting {
		return fmt.Errorf("%w: %v", ErrEastingRange, c.Easting)
	}
	if math.IsNaN(c.Northing) || c.Northing < minNorthing || c.Northing > maxNorthing {
		return fmt.Errorf("%w: %v", ErrNorthingRange, c.Northing)
	}
	return nil
}
