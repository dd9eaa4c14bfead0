// Package performance implements the aircraft performance table the
// flight-planning engine queries for true airspeed and fuel flow at a
// cruise level.
package performance

import (
	"fmt"

	"github.com/pearjo/libefb/pkg/fmserr"
	"github.com/pearjo/libefb/pkg/units"
)

// FuelFlowKind tags whether a FuelFlow is volume- or mass-based, so a
// piston aircraft (avgas, L/h) and a turbine (Jet A, kg/h) both fit the
// same table without a unit hack.
type FuelFlowKind int

const (
	FuelFlowVolume FuelFlowKind = iota
	FuelFlowMass
)

// FuelFlow is a tagged variant over the two physical quantities a
// performance row's fuel consumption rate can be expressed in.
type FuelFlow struct {
	kind   FuelFlowKind
	volume units.Volume // per hour, when kind == FuelFlowVolume
	mass   units.Mass   // per hour, when kind == FuelFlowMass
}

// PerHour builds a volume-based fuel flow (liters/hour, say).
func PerHour(v units.Volume) FuelFlow { return FuelFlow{kind: FuelFlowVolume, volume: v} }

// PerHourMass builds a mass-based fuel flow (kg/hour, say).
func PerHourMass(m units.Mass) FuelFlow { return FuelFlow{kind: FuelFlowMass, mass: m} }

func (f FuelFlow) Kind() FuelFlowKind { return f.kind }

// Volume returns the hourly volume rate; it panics if this flow is
// mass-based — callers resolve the kind first via Kind().
func (f FuelFlow) Volume() units.Volume {
	if f.kind != FuelFlowVolume {
		panic("performance: Volume() called on a mass-based FuelFlow")
	}
	return f.volume
}

// Mass returns the hourly mass rate; it panics if this flow is
// volume-based.
func (f FuelFlow) Mass() units.Mass {
	if f.kind != FuelFlowMass {
		panic("performance: Mass() called on a volume-based FuelFlow")
	}
	return f.mass
}

// BurnedOver returns the fuel mass consumed by flying this flow for
// duration d, converting through densityKgPerM3 when the flow is
// volume-based.
func (f FuelFlow) BurnedOver(d units.Duration, densityKgPerM3 float64) units.Mass {
	hours := d.Hours()
	switch f.kind {
	case FuelFlowVolume:
		return units.NewVolume(f.volume.SI()*hours, units.CubicMeters).ToMass(densityKgPerM3)
	case FuelFlowMass:
		return units.NewMass(f.mass.SI()*hours, units.Kilograms)
	default:
		panic(fmt.Sprintf("performance: unknown fuel flow kind %d", f.kind))
	}
}

// BurnedVolumeOver returns the fuel volume consumed by flying this flow
// for duration d; for a mass-based flow it converts back through
// densityKgPerM3.
func (f FuelFlow) BurnedVolumeOver(d units.Duration, densityKgPerM3 float64) units.Volume {
	hours := d.Hours()
	switch f.kind {
	case FuelFlowVolume:
		return units.NewVolume(f.volume.SI()*hours, units.CubicMeters)
	case FuelFlowMass:
		return units.NewVolume(f.mass.SI()*hours/densityKgPerM3, units.CubicMeters)
	default:
		panic(fmt.Sprintf("performance: unknown fuel flow kind %d", f.kind))
	}
}

// Row is one entry of a performance table: the ceiling it applies up to,
// and the TAS/fuel-flow it yields for any query level at or below that
// ceiling (and above the previous row's ceiling).
type Row struct {
	Ceiling units.VerticalDistance
	TAS     units.Speed
	FF      FuelFlow
}

// Table is a performance table as a callback: the engine never
// introspects it, so a caller may supply an ad-hoc POH encoding behind
// the same Lookup signature instead of a Static table.
type Table interface {
	Lookup(level units.VerticalDistance) (units.Speed, FuelFlow, error)
}

// Static is a Table backed by a fixed, ascending-ceiling row list.
type Static struct {
	Rows []Row
}

// NewStatic returns a Static table over rows, which need not already be
// sorted by ceiling.
func NewStatic(rows []Row) *Static {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Ceiling.Compare(sorted[j-1].Ceiling) < 0; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return &Static{Rows: sorted}
}

// Lookup selects the first row (in ascending ceiling order) whose ceiling
// is at or above level. If level exceeds every row's ceiling, the lookup
// clamps to the highest row and returns AboveCeiling alongside it.
func (t *Static) Lookup(level units.VerticalDistance) (units.Speed, FuelFlow, error) {
	if len(t.Rows) == 0 {
		panic("performance: empty table")
	}
	for _, r := range t.Rows {
		if r.Ceiling.Compare(level) >= 0 {
			return r.TAS, r.FF, nil
		}
	}
	last := t.Rows[len(t.Rows)-1]
	return last.TAS, last.FF, &fmserr.AboveCeiling{Level: level.String()}
}
