// pkg/geo/geodesy_test.go

package geo

import (
	"math"
	"testing"

	"github.com/pearjo/libefb/pkg/units"
)

// EDDH and EDHF, two northern-German aerodromes about 20 NM apart, used
// as a short real-world leg for the geometry checks below.
var (
	eddh = Point{Latitude: 53.630278, Longitude: 9.988333}
	edhf = Point{Latitude: 53.772222, Longitude: 10.209722}
)

func TestDistanceIsSymmetric(t *testing.T) {
	d1 := Distance(eddh, edhf)
	d2 := Distance(edhf, eddh)
	if math.Abs(d1.In(units.NauticalMiles)-d2.In(units.NauticalMiles)) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestBearingReciprocal(t *testing.T) {
	// For legs this short, bearing(a,b) + 180 == bearing(b,a) within 1 degree.
	b1 := Bearing(eddh, edhf).In(units.DegreesTrue)
	b2 := Bearing(edhf, eddh).In(units.DegreesTrue)

	diff := math.Mod(b1+180-b2+360, 360)
	if diff > 1 && diff < 359 {
		t.Errorf("bearing not reciprocal: %v and %v differ from 180 by %v", b1, b2, diff)
	}
}

func TestMagneticCourseAddsVariationAndNormalizes(t *testing.T) {
	trueBearing := units.NewAngle(355, units.DegreesTrue)
	variation := units.NewAngle(10, units.DegreesTrue) // east-positive
	mc := MagneticCourse(trueBearing, variation)
	if got := mc.In(units.DegreesMagnetic); math.Abs(got-5) > 1e-6 {
		t.Errorf("355 + 10 variation = %v, want 5 (wrapped)", got)
	}
}

func TestShortRouteDistancePlausible(t *testing.T) {
	d := Distance(eddh, edhf).In(units.NauticalMiles)
	if d < 5 || d > 40 {
		t.Errorf("EDDH-EDHF distance = %v NM, outside plausible range", d)
	}
}
