// Package route implements the route decoder and per-leg wind-triangle
// solver: turning a compact token string into an ordered chain of
// resolved fixes, then deriving each leg's geodesy and wind triangle.
package route

import (
	"math"

	"github.com/pearjo/libefb/pkg/fmserr"
	"github.com/pearjo/libefb/pkg/geo"
	"github.com/pearjo/libefb/pkg/units"
)

// Wind is a direction/speed pair, direction given as the compass point
// the wind blows FROM (true).
type Wind struct {
	Direction units.Angle
	Speed     units.Speed
}

// Point is a named, located route endpoint: either a fix or an airport
// resolved from the navigation database.
type Point struct {
	Ident    string
	Location geo.Point
}

// Leg is a single from-to segment of a route. The wind triangle fields
// are computed lazily and memoized; Infeasible is set once the leg has
// been solved and no usable ground speed was found.
type Leg struct {
	From, To Point
	Level    units.VerticalDistance
	Wind     Wind
	TAS      units.Speed

	Airway string // name of a traversed airway segment; Decode leaves it empty, also for legs expanded from an airway

	solved      bool
	Infeasible  bool
	bearing     units.Angle
	magCourse   units.Angle
	distance    units.Length
	wca         units.Angle
	trueHeading units.Angle
	groundSpeed units.Speed
	ete         units.Duration
}

// Bearing returns the leg's true initial bearing, solving the leg first
// if it hasn't been solved yet.
func (l *Leg) Bearing(variation geo.VariationOracle) units.Angle {
	l.ensureSolved(variation)
	return l.bearing
}

// MagneticCourse returns true bearing plus the magnetic variation at the
// leg's origin.
func (l *Leg) MagneticCourse(variation geo.VariationOracle) units.Angle {
	l.ensureSolved(variation)
	return l.magCourse
}

// Distance returns the great-circle distance of the leg.
func (l *Leg) Distance(variation geo.VariationOracle) units.Length {
	l.ensureSolved(variation)
	return l.distance
}

// WCA returns the wind-correction angle for the leg.
func (l *Leg) WCA(variation geo.VariationOracle) units.Angle {
	l.ensureSolved(variation)
	return l.wca
}

// TrueHeading returns the leg's wind-corrected true heading.
func (l *Leg) TrueHeading(variation geo.VariationOracle) units.Angle {
	l.ensureSolved(variation)
	return l.trueHeading
}

// MagneticHeading returns true heading plus variation.
func (l *Leg) MagneticHeading(variation geo.VariationOracle) units.Angle {
	l.ensureSolved(variation)
	v := variation.Variation(l.From.Location)
	return geo.MagneticCourse(l.trueHeading, v)
}

// GroundSpeed returns the leg's wind-triangle ground speed.
func (l *Leg) GroundSpeed(variation geo.VariationOracle) units.Speed {
	l.ensureSolved(variation)
	return l.groundSpeed
}

// ETE returns the leg's estimated time enroute, rounded to the nearest
// second.
func (l *Leg) ETE(variation geo.VariationOracle) units.Duration {
	l.ensureSolved(variation)
	return l.ete
}

// Invalidate clears memoized results, forcing the next accessor to
// recompute them. Called whenever a leg's inputs (TAS, wind, level)
// change.
func (l *Leg) Invalidate() {
	l.solved = false
	l.Infeasible = false
}

func (l *Leg) ensureSolved(variation geo.VariationOracle) {
	if l.solved {
		return
	}
	l.bearing = geo.Bearing(l.From.Location, l.To.Location)
	l.distance = geo.Distance(l.From.Location, l.To.Location)
	v := variation.Variation(l.From.Location)
	l.magCourse = geo.MagneticCourse(l.bearing, v)

	solveWindTriangle(l)
	l.solved = true
}

// solveWindTriangle computes WCA, true heading, ground speed and ETE per
// the standard wind-triangle equations. A leg is marked infeasible when
// the crosswind component exceeds the true airspeed (no WCA solution) or
// the resulting ground speed is non-positive.
func solveWindTriangle(l *Leg) {
	v := l.TAS.In(units.MetersPerSecond)
	if v <= 0 {
		l.Infeasible = true
		return
	}
	ws := l.Wind.Speed.In(units.MetersPerSecond)
	wd := l.Wind.Direction.In(units.Radians)
	c := l.bearing.In(units.Radians)

	sinArg := (ws / v) * math.Sin(wd-c)
	if sinArg > 1 || sinArg < -1 {
		l.Infeasible = true
		return
	}
	wca := math.Asin(sinArg)
	l.wca = units.NewAngle(wca, units.Radians)
	l.trueHeading = units.NewAngle(c+wca, units.Radians)

	gs := v*math.Cos(wca) - ws*math.Cos(wd-c)
	if gs <= 0 {
		l.Infeasible = true
		return
	}
	l.groundSpeed = units.NewSpeed(gs, units.MetersPerSecond)

	eteSeconds := l.distance.In(units.Meters) / gs
	l.ete = units.NewDuration(eteSeconds).RoundToSecond()
}

// AsInfeasibleError returns the leg's infeasibility as a boundary error,
// or nil if the leg solved cleanly.
func (l *Leg) AsInfeasibleError(index int) error {
	if !l.Infeasible {
		return nil
	}
	return &fmserr.LegInfeasible{Index: index}
}
