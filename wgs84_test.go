package utm

import (
	"math"
	"testing"
)

func TestWGS84Constants(t *testing.T) {
	for _, tc := range []struct {
		name     string
		got, exp float64
	}{
		{"b", wgs84.b, 6356752.314247833},
		{"e", wgs84.e, 0.08181919083755415},
		{"esq", wgs84.esq, 0.006694379989312105},
		{"e0sq", wgs84.e0sq, 0.006739496741436008},
		{"e1", wgs84.e1, 0.0016792203861749964},
		{"mc1", wgs84.mc1, 0.9983242984530031},
		{"mc2", wgs84.mc2, 0.0025146070602067045},
		{"mc3", wgs84.mc3, 2.6370755799215665e-06},
		{"mc4", wgs84.mc4, 3.41804608532564e-09},
	} {
		if math.Abs(tc.got-tc.exp) > math.Abs(tc.exp)*1e-14 {
			t.Errorf("%s = %v, expected %v", tc.name, tc.got, tc.exp)
		}
	}
}

func TestDeriveEllipsoidIsPure(t *testing.T) {
	el := deriveEllipsoid(SemiMajorAxis, InverseFlattening, ScaleFactor)
	if el != wgs84 {
		t.Fatalf("expected %+v, got %+v", wgs84, el)
	}
	if el.mc1a != el.a*el.mc1 {
		t.Fatalf("expected mc1a = a*mc1, got %v", el.mc1a)
	}
}

func TestMeridianQuadrant(t *testing.T) {
	// the equator to pole arc on the central meridian, scaled by k0
	c := Forward(90-1e-9, 3)
	if math.Abs(c.Northing-9997964.943) > 1 {
		t.Fatalf("expected about 9997964.943, got %v", c.Northing)
	}
}

func TestZoneFromLongitude(t *testing.T) {
	for _, tc := range []struct {
		lng  float64
		zone int
		cm   float64
	}{
		{-180, 1, -177},
		{-179.999, 1, -177},
		{-174.000001, 1, -177},
		{-174, 2, -171},
		{-0.000001, 30, -3},
		{0, 31, 3},
		{5.999999, 31, 3},
		{6, 32, 9},
		{11.40618711509996, 32, 9},
		{115.857048, 50, 117},
		{174, 60, 177},
		{179.999, 60, 177},
		{180, 61, 183},
	} {
		zone := zoneFromLongitude(tc.lng)
		if zone != tc.zone {
			t.Errorf("%v: got zone %d, expected %d", tc.lng, zone, tc.zone)
		}
		if cm := centralMeridian(zone); cm != tc.cm {
			t.Errorf("%v: got central meridian %v, expected %v", tc.lng, cm, tc.cm)
		}
	}
}
