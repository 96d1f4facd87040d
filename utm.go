package utm

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Coord is a UTM easting/northing pair in meters. The zone and hemisphere
// it belongs to are carried by the caller.
type Coord struct {
	Easting  float64 `json:"easting"`
	Northing float64 `json:"northing"`
}

// Geodetic is a WGS84 latitude/longitude pair in decimal degrees.
type Geodetic struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LatLng returns g as an s2.LatLng.
func (g Geodetic) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(g.Latitude, g.Longitude)
}

// GeodeticFromLatLng converts an s2.LatLng to degrees.
func GeodeticFromLatLng(ll s2.LatLng) Geodetic {
	return Geodetic{Latitude: ll.Lat.Degrees(), Longitude: ll.Lng.Degrees()}
}

// ForwardLatLng is Forward for an s2.LatLng.
func ForwardLatLng(ll s2.LatLng) Coord {
	g := GeodeticFromLatLng(ll)
	return Forward(g.Latitude, g.Longitude)
}

// InverseLatLng is Inverse returning an s2.LatLng. The radian round trip
// through s1.Angle may cost the last bit of the degree values.
func InverseLatLng(c Coord, zone int, h Hemisphere) s2.LatLng {
	g := Inverse(c.Easting, c.Northing, zone, h)
	return s2.LatLng{
		Lat: s1.Angle(g.Latitude * deg2rad),
		Lng: s1.Angle(g.Longitude * deg2rad),
	}
}
