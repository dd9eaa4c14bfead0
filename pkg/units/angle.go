// pkg/units/angle.go

package units

import (
	"fmt"
	"math"
)

type AngleUnit int

const (
	Radians AngleUnit = iota
	DegreesTrue
	DegreesMagnetic
)

func (u AngleUnit) String() string {
	switch u {
	case Radians:
		return "rad"
	case DegreesTrue:
		return "°T"
	case DegreesMagnetic:
		return "°M"
	default:
		return "?"
	}
}

// isDegrees reports whether u is one of the two degree-valued tags; both
// convert to/from radians identically, the tag only changes how the value
// is labeled and which frame (true vs. magnetic) it represents.
func isDegrees(u AngleUnit) bool { return u == DegreesTrue || u == DegreesMagnetic }

// Angle is a physical angle, stored internally in radians and always
// normalized into [0, 2π) on construction.
type Angle struct {
	si   float64 // radians, in [0, 2*pi)
	unit AngleUnit
}

func normalizeRadians(r float64) float64 {
	const twoPi = 2 * math.Pi
	r = math.Mod(r, twoPi)
	if r < 0 {
		r += twoPi
	}
	return r
}

func NewAngle(v float64, u AngleUnit) Angle {
	var rad float64
	if isDegrees(u) {
		rad = v * math.Pi / 180
	} else {
		rad = v
	}
	return Angle{si: normalizeRadians(rad), unit: u}
}

func (a Angle) Unit() AngleUnit { return a.unit }
func (a Angle) SI() float64     { return a.si }

func (a Angle) In(u AngleUnit) float64 {
	if isDegrees(u) {
		return a.si * 180 / math.Pi
	}
	return a.si
}
func (a Angle) V() float64 { return a.In(a.unit) }

func (a Angle) WithUnit(u AngleUnit) Angle {
	return Angle{si: a.si, unit: u}
}

// Add sums two angles and renormalizes into [0, 2π).
func (a Angle) Add(o Angle) Angle {
	return Angle{si: normalizeRadians(a.si + o.si), unit: a.unit}
}

func (a Angle) Sub(o Angle) Angle {
	return Angle{si: normalizeRadians(a.si - o.si), unit: a.unit}
}

// SignedDifference returns the minimal signed angle to rotate from a to o,
// in (-π, π], useful for wind-correction and heading-turn computations.
func (a Angle) SignedDifference(o Angle) Angle {
	d := normalizeRadians(o.si - a.si)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	return Angle{si: d, unit: a.unit}
}

func (a Angle) Equal(o Angle) bool { return almostEqual(a.si, o.si) }

// String formats as "NNN.N°M" for magnetic, "NNN.N°T" for true, and raw
// radians otherwise.
func (a Angle) String() string {
	if isDegrees(a.unit) {
		return fmt.Sprintf("%.1f%s", a.V(), a.unit)
	}
	return fmt.Sprintf("%.4f rad", a.si)
}
