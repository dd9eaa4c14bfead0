// Package runway implements takeoff/landing performance analysis: a base
// distance interpolation followed by the ordered application of rated and
// ranged correction factors.
package runway

import (
	"fmt"

	"github.com/pearjo/libefb/pkg/fmserr"
	"github.com/pearjo/libefb/pkg/units"
)

// Target names which of a PerformanceBase's two distances a Factor
// applies to.
type Target int

const (
	GroundRoll Target = iota
	Distance50ft
	Both
)

// PerformanceBase is one POH-tabulated data point: the ground roll and
// 50ft-obstacle distance at a given temperature and pressure altitude.
type PerformanceBase struct {
	Temperature units.Temperature
	Elevation   units.VerticalDistance
	GroundRoll  units.Length
	Distance50  units.Length
}

// FactorKind distinguishes a fixed-percentage correction from one scaled
// by how far actual conditions are from a reference unit.
type FactorKind int

const (
	Rated FactorKind = iota
	Ranged
)

// Factor is one correction step applied, in configured order, to the base
// distances. A Rated factor multiplies by (1 + Coefficient); a Ranged
// factor multiplies by (1 + Value*(actual/PerUnit)), where actual is
// supplied by the caller alongside the factor when the analysis is run.
type Factor struct {
	Kind        FactorKind
	AppliesTo   Target
	Coefficient float64      // Rated
	Value       float64      // Ranged
	PerUnit     float64      // Ranged: actual is divided by this before multiplying Value
	Actual      float64      // Ranged: the observed quantity (e.g. headwind component)
	Name        string
}

// multiplier returns the factor's (1 + x) scale for the given target.
func (f Factor) multiplier() float64 {
	switch f.Kind {
	case Rated:
		return 1 + f.Coefficient
	case Ranged:
		return 1 + f.Value*(f.Actual/f.PerUnit)
	default:
		panic(fmt.Sprintf("runway: unknown factor kind %d", f.Kind))
	}
}

func (f Factor) appliesTo(t Target) bool {
	return f.AppliesTo == Both || f.AppliesTo == t
}

// Result is the outcome of a runway analysis: the corrected distances and
// the runway length remaining after the 50ft distance is subtracted.
type Result struct {
	GroundRoll        units.Length
	Distance50        units.Length
	RemainingRunway   units.Length
	InsufficientError error
}

// Analyze interpolates base (bilinearly when more than one PerformanceBase
// row is supplied; as-is otherwise — see interpolateBase) then applies
// pohFactors, in order, followed by planningFactors, in order, each to
// the distance or distances its AppliesTo names. available is the
// runway's usable length.
func Analyze(bases []PerformanceBase, temperature units.Temperature, elevation units.VerticalDistance, pohFactors, planningFactors []Factor, available units.Length) (*Result, error) {
	base := interpolateBase(bases, temperature, elevation)

	groundRoll := base.GroundRoll.SI()
	distance50 := base.Distance50.SI()

	for _, f := range append(append([]Factor{}, pohFactors...), planningFactors...) {
		if f.appliesTo(GroundRoll) {
			groundRoll *= f.multiplier()
		}
		if f.appliesTo(Distance50ft) {
			distance50 *= f.multiplier()
		}
	}

	gr := units.NewLength(groundRoll, units.Meters)
	d50 := units.NewLength(distance50, units.Meters)
	remaining := available.Sub(d50)

	var insufficient error
	if remaining.SI() < 0 {
		insufficient = &fmserr.InsufficientRunway{DeficitMeters: -remaining.In(units.Meters)}
	}

	return &Result{
		GroundRoll:        gr,
		Distance50:        d50,
		RemainingRunway:   remaining,
		InsufficientError: insufficient,
	}, nil
}

// interpolateBase returns the single applicable performance point. With
// exactly one row it is used as-is; with more than one, it bilinearly
// interpolates over temperature and pressure altitude using the two
// nearest rows on each axis (a POH table is assumed rectangular: every
// temperature column shares the same set of elevation rows).
func interpolateBase(bases []PerformanceBase, temperature units.Temperature, elevation units.VerticalDistance) PerformanceBase {
	if len(bases) == 0 {
		panic("runway: no performance base rows supplied")
	}
	if len(bases) == 1 {
		return bases[0]
	}

	lowT, highT := nearestTemperatures(bases, temperature)
	lowE, highE := nearestElevations(bases, elevation)

	q11 := findBase(bases, lowT, lowE)
	q12 := findBase(bases, lowT, highE)
	q21 := findBase(bases, highT, lowE)
	q22 := findBase(bases, highT, highE)

	tFrac := fraction(lowT.SI(), highT.SI(), temperature.SI())
	eFrac := fraction(elevationFeet(lowE), elevationFeet(highE), elevationFeet(elevation))

	gr := bilerp(q11.GroundRoll.SI(), q12.GroundRoll.SI(), q21.GroundRoll.SI(), q22.GroundRoll.SI(), tFrac, eFrac)
	d50 := bilerp(q11.Distance50.SI(), q12.Distance50.SI(), q21.Distance50.SI(), q22.Distance50.SI(), tFrac, eFrac)

	return PerformanceBase{
		Temperature: temperature,
		Elevation:   elevation,
		GroundRoll:  units.NewLength(gr, units.Meters),
		Distance50:  units.NewLength(d50, units.Meters),
	}
}

func elevationFeet(v units.VerticalDistance) float64 {
	if v.Kind() == units.VDUnlimited {
		return 0
	}
	return v.Feet()
}

func fraction(low, high, actual float64) float64 {
	if high == low {
		return 0
	}
	f := (actual - low) / (high - low)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func bilerp(q11, q12, q21, q22, tFrac, eFrac float64) float64 {
	top := q11 + (q12-q11)*eFrac
	bottom := q21 + (q22-q21)*eFrac
	return top + (bottom-top)*tFrac
}

func nearestTemperatures(bases []PerformanceBase, t units.Temperature) (units.Temperature, units.Temperature) {
	low, high := bases[0].Temperature, bases[0].Temperature
	for _, b := range bases {
		if b.Temperature.SI() <= t.SI() && (low.SI() < b.Temperature.SI() || low.SI() > t.SI()) {
			low = b.Temperature
		}
		if b.Temperature.SI() >= t.SI() && (high.SI() > b.Temperature.SI() || high.SI() < t.SI()) {
			high = b.Temperature
		}
	}
	return low, high
}

func nearestElevations(bases []PerformanceBase, e units.VerticalDistance) (units.VerticalDistance, units.VerticalDistance) {
	low, high := bases[0].Elevation, bases[0].Elevation
	for _, b := range bases {
		if b.Elevation.Compare(e) <= 0 && (low.Compare(b.Elevation) < 0 || low.Compare(e) > 0) {
			low = b.Elevation
		}
		if b.Elevation.Compare(e) >= 0 && (high.Compare(b.Elevation) > 0 || high.Compare(e) < 0) {
			high = b.Elevation
		}
	}
	return low, high
}

func findBase(bases []PerformanceBase, t units.Temperature, e units.VerticalDistance) PerformanceBase {
	for _, b := range bases {
		if b.Temperature.SI() == t.SI() && b.Elevation.Compare(e) == 0 {
			return b
		}
	}
	// Fall back to the closest row by elevation then temperature: a
	// non-rectangular table is out of scope, so this only triggers when a
	// caller supplies a sparse grid.
	best := bases[0]
	bestScore := -1.0
	for i, b := range bases {
		score := absF(b.Temperature.SI()-t.SI()) + absF(elevationFeet(b.Elevation)-elevationFeet(e))
		if i == 0 || score < bestScore {
			best, bestScore = b, score
		}
	}
	return best
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
