// Package geo implements great-circle geodesy and magnetic variation for
// the flight-planning core. Bearing and distance use the haversine
// approximation on a sphere of the WGS-84 mean radius, accurate to within
// about 0.5% distance error and 0.5 degrees of bearing error for legs under
// 500 NM.
package geo

import (
	"math"

	"github.com/pearjo/libefb/pkg/units"
)

// EarthRadiusNM is the mean earth radius used for the spherical
// approximation.
const EarthRadiusNM = 3440.065

// Point is a geographic position in decimal degrees.
type Point struct {
	Latitude  float64 // degrees, +north
	Longitude float64 // degrees, +east
}

func radians(d float64) float64 { return d * math.Pi / 180 }

// Distance returns the great-circle distance between a and b.
func Distance(a, b Point) units.Length {
	lat1, lon1 := radians(a.Latitude), radians(a.Longitude)
	lat2, lon2 := radians(b.Latitude), radians(b.Longitude)
	dlat, dlon := lat2-lat1, lon2-lon1

	sinDLat2 := math.Sin(dlat / 2)
	sinDLon2 := math.Sin(dlon / 2)
	h := sinDLat2*sinDLat2 + math.Cos(lat1)*math.Cos(lat2)*sinDLon2*sinDLon2
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return units.NewLength(EarthRadiusNM*c, units.NauticalMiles)
}

// Bearing returns the initial true bearing from a to b along the great
// circle connecting them.
func Bearing(a, b Point) units.Angle {
	lat1, lon1 := radians(a.Latitude), radians(a.Longitude)
	lat2, lon2 := radians(b.Latitude), radians(b.Longitude)
	dlon := lon2 - lon1

	y := math.Sin(dlon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dlon)
	theta := math.Atan2(y, x)

	return units.NewAngle(theta, units.Radians).WithUnit(units.DegreesTrue)
}

// MagneticCourse converts a true bearing to a magnetic course by adding the
// signed, east-positive variation and renormalizing into [0, 2π).
func MagneticCourse(trueBearing, variation units.Angle) units.Angle {
	return trueBearing.Add(variation).WithUnit(units.DegreesMagnetic)
}

