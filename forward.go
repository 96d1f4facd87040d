package utm

import "math"

// Forward converts a WGS84 latitude and longitude in degrees to UTM easting
// and northing in the zone implied by the longitude.
//
// No range checking is done. Results are meaningful inside the UTM envelope
// (latitude -80 to 84); outside it the series still evaluates but the values
// are geodetically useless, and at the poles cos(latitude) is zero. Use
// ValidateGeodetic to reject such input.
//
// A point whose raw northing is negative is taken to be in the southern
// hemisphere and gets the 10000000 m false northing added.
func Forward(latitude, longitude float64) Coord {
	el := &wgs84
	phi := latitude * deg2rad
	zcm := centralMeridian(zoneFromLongitude(longitude))

	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
	tanPhi := math.Tan(phi)
	esin := el.e * sinPhi

	n := el.a / math.Sqrt(1-esin*esin)
	t := tanPhi * tanPhi
	c := el.e0sq * (cosPhi * cosPhi)
	a := (longitude - zcm) * deg2rad * cosPhi

	// Horner form; the evaluation order is part of the result.
	x := el.k0*n*a*(1+a*a*((1-t+c)/6+a*a*(5-18*t+t*t+72*c-58*el.e0sq)/120)) + FalseEasting

	m := el.a * (el.mc1*phi - el.mc2*math.Sin(2*phi) + el.mc3*math.Sin(4*phi) - el.mc4*math.Sin(6*phi))
	y := el.k0 * (m + n*tanPhi*(a*a*(1.0/2+a*a*((5-t+9*c+4*c*c)/24+a*a*(61-58*t+t*t+600*c-330*el.e0sq)/720))))
	if y < 0 {
		y += FalseNorthing
	}
	return Coord{Easting: x, Northing: y}
}
