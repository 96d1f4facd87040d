/*
Package utm converts between WGS84 geodetic coordinates and Universal
Transverse Mercator grid coordinates.

Forward projects a latitude/longitude in decimal degrees to an
easting/northing in meters, using the zone implied by the longitude.
Inverse takes an easting/northing together with its zone and hemisphere
and returns the latitude/longitude.

Both directions are closed-form transverse Mercator series on the WGS84
ellipsoid. They hold no state and are safe for concurrent use.
*/
package utm
