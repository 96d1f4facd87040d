package utm

import "math"

// Inverse converts a UTM easting and northing in zone and hemisphere back to
// a WGS84 latitude and longitude in degrees.
//
// The footpoint latitude comes from a fixed four term series in e1, so there
// is no iteration and no convergence failure. Only HemisphereSouth removes
// the false northing; any other hemisphere value uses northing unchanged.
// Nothing is range checked, see ValidateCoord.
func Inverse(easting, northing float64, zone int, h Hemisphere) Geodetic {
	el := &wgs84
	if h == HemisphereSouth {
		northing -= FalseNorthing
	}

	mu := northing / el.k0 / el.mc1a
	e1 := el.e1
	phi1 := mu +
		e1*(3.0/2-27.0/32*e1*e1)*math.Sin(2*mu) +
		e1*e1*(21.0/16-55.0/32*e1*e1)*math.Sin(4*mu) +
		e1*e1*e1*(math.Sin(6*mu)*151/96+e1*math.Sin(8*mu)*1097/512)

	sinPhi1, cosPhi1 := math.Sin(phi1), math.Cos(phi1)
	tanPhi1 := math.Tan(phi1)
	esin := el.e * sinPhi1
	w := 1 - esin*esin

	c1 := el.e0sq * (cosPhi1 * cosPhi1)
	t1 := tanPhi1 * tanPhi1
	n1 := el.a / math.Sqrt(w)
	r1 := n1 * (1 - el.esq) / w

	d := (easting - FalseEasting) / (n1 * el.k0)
	dd := d * d

	corr := dd * (1.0/2 - dd*(5+3*t1+10*c1-4*c1*c1-9*el.e0sq)/24)
	corr += math.Pow(d, 6) * (61 + 90*t1 + 298*c1 + 45*t1*t1 - 252*el.e0sq - 3*c1*c1) / 720
	phi := phi1 - (n1*tanPhi1/r1)*corr

	dlng := d * (1 + dd*((-1-2*t1-c1)/6+dd*(5-2*c1+28*t1-3*c1*c1+8*el.e0sq+24*t1*t1)/120)) / cosPhi1

	return Geodetic{
		Latitude:  phi / deg2rad,
		Longitude: centralMeridian(zone) + dlng/deg2rad,
	}
}
