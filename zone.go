package utm

import "math"

// zoneFromLongitude returns the 6 degree strip containing longitude,
// counting from 1 at -180. Longitude 180 yields 61; centralMeridian(61)
// is 183, which projects identically to zone 1 at -180.
func zoneFromLongitude(longitude float64) int {
	return 1 + int(math.Floor((longitude+180)/6))
}

// centralMeridian returns the central meridian of zone in degrees.
func centralMeridian(zone int) float64 {
	return float64(3 + 6*(zone-1) - 180)
}
