// Package aircraft implements the airframe description the flight-planning
// engine plans against: stations, tanks, empty weight and balance, and the
// CG envelope loaded masses are checked against.
package aircraft

import (
	"fmt"

	"github.com/pearjo/libefb/pkg/units"
)

// FuelType distinguishes the two fuel families a tank can hold; density is
// fixed per type since the core carries no fuel-temperature model.
type FuelType int

const (
	Avgas FuelType = iota
	Diesel
	JetA
)

// DensityKgPerLiter returns the planning density used to convert a volume
// of this fuel type into a mass.
func (f FuelType) DensityKgPerLiter() float64 {
	switch f {
	case Avgas:
		return 0.72
	case Diesel, JetA:
		return 0.84
	default:
		panic(fmt.Sprintf("aircraft: unknown fuel type %d", f))
	}
}

func (f FuelType) String() string {
	switch f {
	case Avgas:
		return "AVGAS"
	case Diesel:
		return "Diesel"
	case JetA:
		return "Jet A"
	default:
		return "?"
	}
}

// Station is a fixed loading point: a seat or baggage compartment at a
// given arm from the aircraft's datum.
type Station struct {
	Description string
	Arm         units.Length
}

// Tank is a fuel tank at a given arm with a fixed capacity. Tanks are
// fueled in the order they appear in Aircraft.Tanks and drained in the
// reverse order.
type Tank struct {
	Description string
	Capacity    units.Volume
	Arm         units.Length
}

// EnvelopePoint is one vertex of the CG envelope polygon, in (mass, arm)
// space.
type EnvelopePoint struct {
	Mass units.Mass
	Arm  units.Length
}

// Aircraft is the static airframe description the flight-planning engine
// and runway analysis both plan against.
type Aircraft struct {
	Registration string
	Stations     []Station
	EmptyMass    units.Mass
	EmptyBalance units.Length
	FuelType     FuelType
	Tanks        []Tank
	CGEnvelope   []EnvelopePoint
	Notes        string
}

// New validates the invariants required of an airframe description before
// returning it: every station arm must be strictly positive, every tank's
// capacity must be non-negative, the CG envelope must carry at least one
// vertex, and empty mass must be positive. These are construction-time
// invariants, not runtime errors — violating them panics.
func New(a Aircraft) *Aircraft {
	if a.EmptyMass.SI() <= 0 {
		panic("aircraft: empty mass must be positive")
	}
	if len(a.CGEnvelope) == 0 {
		panic("aircraft: CG envelope must have at least one vertex")
	}
	for _, s := range a.Stations {
		if s.Arm.SI() <= 0 {
			panic(fmt.Sprintf("aircraft: station %q has non-positive arm", s.Description))
		}
	}
	for _, tk := range a.Tanks {
		if tk.Capacity.SI() < 0 {
			panic(fmt.Sprintf("aircraft: tank %q has negative capacity", tk.Description))
		}
	}
	return &a
}

// TotalTankCapacity returns the combined capacity of every tank.
func (a *Aircraft) TotalTankCapacity() units.Volume {
	total := units.NewVolume(0, units.Liters)
	for _, t := range a.Tanks {
		total = total.Add(t.Capacity)
	}
	return total
}

// FuelMass converts a volume of the aircraft's fuel type into a mass.
func (a *Aircraft) FuelMass(v units.Volume) units.Mass {
	return v.ToMass(a.FuelType.DensityKgPerLiter() * 1000)
}

// InEnvelope reports whether the (mass, arm) point lies inside the CG
// envelope polygon, using ray casting with the even-odd rule; points
// exactly on an edge count as inside.
func (a *Aircraft) InEnvelope(mass units.Mass, arm units.Length) bool {
	return pointInPolygon(a.CGEnvelope, mass.SI(), arm.SI())
}

func pointInPolygon(poly []EnvelopePoint, x, y float64) bool {
	n := len(poly)
	if n == 0 {
		return false
	}
	if n == 1 {
		return poly[0].Mass.SI() == x && poly[0].Arm.SI() == y
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := poly[i].Mass.SI(), poly[i].Arm.SI()
		xj, yj := poly[j].Mass.SI(), poly[j].Arm.SI()

		if onSegment(xi, yi, xj, yj, x, y) {
			return true
		}

		if (yi > y) != (yj > y) {
			xCross := xi + (y-yi)*(xj-xi)/(yj-yi)
			if x < xCross {
				inside = !inside
			} else if x == xCross {
				return true
			}
		}
	}
	return inside
}

func onSegment(xi, yi, xj, yj, x, y float64) bool {
	cross := (x-xi)*(yj-yi) - (y-yi)*(xj-xi)
	if cross != 0 {
		return false
	}
	return x >= minF(xi, xj) && x <= maxF(xi, xj) && y >= minF(yi, yj) && y <= maxF(yi, yj)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
