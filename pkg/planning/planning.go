// Package planning implements the flight-planning engine: fuel policy
// resolution against a single cruise segment, tank fueling/defueling, and
// mass & balance against the aircraft's CG envelope.
package planning

import (
	"errors"
	"fmt"

	"github.com/pearjo/libefb/pkg/aircraft"
	"github.com/pearjo/libefb/pkg/fmserr"
	"github.com/pearjo/libefb/pkg/geo"
	"github.com/pearjo/libefb/pkg/performance"
	"github.com/pearjo/libefb/pkg/route"
	"github.com/pearjo/libefb/pkg/units"
)

// ErrInsufficientFuel is returned when a Manual fuel policy requests less
// fuel than the route's minimum requirement.
var ErrInsufficientFuel = errors.New("planning: manual fuel policy is below the route's minimum requirement")

// FuelPolicyKind tags which of the five resolution strategies a
// FuelPolicy carries.
type FuelPolicyKind int

const (
	Minimum FuelPolicyKind = iota
	Maximum
	Manual
	AtLanding
	Extra
)

// FuelPolicy is a closed tagged variant over the ways a fuel plan's
// on-ramp quantity may be specified.
type FuelPolicy struct {
	kind   FuelPolicyKind
	volume units.Volume // meaningful for Manual, AtLanding, Extra
}

func MinimumFuel() FuelPolicy { return FuelPolicy{kind: Minimum} }
func MaximumFuel() FuelPolicy { return FuelPolicy{kind: Maximum} }
func ManualFuel(v units.Volume) FuelPolicy      { return FuelPolicy{kind: Manual, volume: v} }
func AtLandingFuel(v units.Volume) FuelPolicy   { return FuelPolicy{kind: AtLanding, volume: v} }
func ExtraFuel(v units.Volume) FuelPolicy       { return FuelPolicy{kind: Extra, volume: v} }

func (p FuelPolicy) Kind() FuelPolicyKind { return p.kind }
func (p FuelPolicy) Volume() units.Volume { return p.volume }

// Reserve is the flight's fuel reserve; the only variant the core
// resolves is a manually specified duration flown at cruise fuel flow.
type Reserve struct {
	Duration units.Duration
}

// Inputs gathers everything the flight-planning engine needs: the
// airframe, the loads at each station (parallel to Aircraft.Stations),
// the fuel policy, taxi fuel, reserve, a performance oracle, the resolved
// route, and an optional alternate route.
type Inputs struct {
	Aircraft    *aircraft.Aircraft
	Loads       []units.Mass
	Policy      FuelPolicy
	Taxi        units.Volume
	Reserve     Reserve
	Performance performance.Table
	Route       *route.Route
	Alternate   *route.Route
	Variation   geo.VariationOracle
}

// FuelPlanning is the resolved fuel plan: every quantity is a fuel
// volume, each in the unit it was supplied or computed in; the fields do
// not share one display unit.
type FuelPlanning struct {
	Taxi        units.Volume
	Climb       units.Volume
	Trip        units.Volume
	Alternate   units.Volume
	Reserve     units.Volume
	Min         units.Volume
	Extra       units.Volume
	OnRamp      units.Volume
	AfterLanding units.Volume

	AboveCeiling error // non-nil if the cruise level exceeded the performance table
}

// MassAndBalance is the derived weight-and-balance result for a fuel
// plan: both the on-ramp and after-landing points, and whether both lie
// inside the aircraft's CG envelope.
type MassAndBalance struct {
	MassOnRamp       units.Mass
	BalanceOnRamp    units.Length
	MassAfterLanding units.Mass
	BalanceAfterLanding units.Length
	IsBalanced       bool
}

// Plan is the combined result of the flight-planning engine: the fuel
// plan, the mass & balance, and the per-tank ramp allocation (for
// callers, e.g. pkg/render, that print individual tank quantities).
type Plan struct {
	Fuel           FuelPlanning
	MassAndBalance MassAndBalance
	TankOnRamp     []units.Volume
	TankAtLanding  []units.Volume
}

// Compute resolves in.Policy against in.Route's legs and in.Aircraft's
// tanks, returning the full flight plan. It fails with OverFueling if the
// resolved on-ramp quantity exceeds total tank capacity, or
// ErrInsufficientFuel if a Manual policy requests less than the route's
// minimum.
func Compute(in Inputs) (*Plan, error) {
	tas, ff, ceilingErr := in.Performance.Lookup(in.Route.CruiseLevel)
	_ = tas

	density := in.Aircraft.FuelType.DensityKgPerLiter() * 1000

	trip := units.NewVolume(0, units.Liters)
	for _, leg := range in.Route.Legs {
		trip = trip.Add(ff.BurnedVolumeOver(leg.ETE(in.Variation), density))
	}

	reserveFuel := ff.BurnedVolumeOver(in.Reserve.Duration, density)

	alternate := units.NewVolume(0, units.Liters)
	if in.Alternate != nil {
		_, altFF, _ := in.Performance.Lookup(in.Alternate.CruiseLevel)
		for _, leg := range in.Alternate.Legs {
			alternate = alternate.Add(altFF.BurnedVolumeOver(leg.ETE(in.Variation), density))
		}
	}

	climb := units.NewVolume(0, units.Liters) // single cruise segment: no distinct climb fuel flow is modeled

	min := in.Taxi.Add(trip).Add(reserveFuel).Add(alternate)

	var onRamp, extra units.Volume
	switch in.Policy.Kind() {
	case Minimum:
		onRamp = in.Taxi.Add(trip).Add(reserveFuel)
		extra = units.NewVolume(0, units.Liters)
	case Maximum:
		onRamp = in.Aircraft.TotalTankCapacity()
		extra = onRamp.Sub(min)
	case Manual:
		onRamp = in.Policy.Volume()
		extra = onRamp.Sub(min)
		if extra.SI() < 0 {
			return nil, ErrInsufficientFuel
		}
	case AtLanding:
		onRamp = in.Policy.Volume().Add(trip).Add(in.Taxi)
		extra = onRamp.Sub(min)
	case Extra:
		onRamp = min.Add(in.Policy.Volume())
		extra = in.Policy.Volume()
	default:
		panic(fmt.Sprintf("planning: unknown fuel policy kind %d", in.Policy.Kind()))
	}

	afterLanding := onRamp.Sub(in.Taxi).Sub(trip).Sub(alternate)

	tankOnRamp, err := allocateTanks(in.Aircraft.Tanks, onRamp)
	if err != nil {
		return nil, err
	}
	tankAtLanding := drainTanksInReverse(tankOnRamp, onRamp.Sub(afterLanding))

	mb := massAndBalance(in.Aircraft, in.Loads, tankOnRamp, tankAtLanding, density)

	return &Plan{
		Fuel: FuelPlanning{
			Taxi:         in.Taxi,
			Climb:        climb,
			Trip:         trip,
			Alternate:    alternate,
			Reserve:      reserveFuel,
			Min:          min,
			Extra:        extra,
			OnRamp:       onRamp,
			AfterLanding: afterLanding,
			AboveCeiling: ceilingErr,
		},
		MassAndBalance: mb,
		TankOnRamp:     tankOnRamp,
		TankAtLanding:  tankAtLanding,
	}, nil
}

// allocateTanks fills tanks in definition order up to capacity; any
// remainder after the last tank is OverFueling.
func allocateTanks(tanks []aircraft.Tank, total units.Volume) ([]units.Volume, error) {
	out := make([]units.Volume, len(tanks))
	remaining := total
	for i, t := range tanks {
		take := t.Capacity
		if remaining.SI() < take.SI() {
			take = remaining
		}
		out[i] = take
		remaining = remaining.Sub(take)
	}
	if remaining.SI() > 1e-9 {
		capacity := units.NewVolume(0, units.Liters)
		for _, t := range tanks {
			capacity = capacity.Add(t.Capacity)
		}
		return nil, &fmserr.OverFueling{Required: total.In(units.Liters), Capacity: capacity.In(units.Liters)}
	}
	return out, nil
}

// drainTanksInReverse removes toRemove from the ramp allocation, starting
// at the last tank (the one filled last drains first) and working
// forward.
func drainTanksInReverse(ramp []units.Volume, toRemove units.Volume) []units.Volume {
	out := make([]units.Volume, len(ramp))
	copy(out, ramp)
	remaining := toRemove
	for i := len(out) - 1; i >= 0 && remaining.SI() > 0; i-- {
		take := out[i]
		if remaining.SI() < take.SI() {
			take = remaining
		}
		out[i] = out[i].Sub(take)
		remaining = remaining.Sub(take)
	}
	return out
}

func massAndBalance(a *aircraft.Aircraft, loads []units.Mass, tankOnRamp, tankAtLanding []units.Volume, density float64) MassAndBalance {
	massRamp := a.EmptyMass
	momentRamp := a.EmptyMass.SI() * a.EmptyBalance.SI()

	for i, l := range loads {
		massRamp = massRamp.Add(l)
		if i < len(a.Stations) {
			momentRamp += l.SI() * a.Stations[i].Arm.SI()
		}
	}

	massLanding := massRamp
	momentLanding := momentRamp

	for j, v := range tankOnRamp {
		m := v.ToMass(density)
		massRamp = massRamp.Add(m)
		momentRamp += m.SI() * a.Tanks[j].Arm.SI()
	}
	for j, v := range tankAtLanding {
		m := v.ToMass(density)
		massLanding = massLanding.Add(m)
		momentLanding += m.SI() * a.Tanks[j].Arm.SI()
	}

	balanceRamp := units.NewLength(momentRamp/massRamp.SI(), units.Meters)
	balanceLanding := units.NewLength(momentLanding/massLanding.SI(), units.Meters)

	return MassAndBalance{
		MassOnRamp:          massRamp,
		BalanceOnRamp:       balanceRamp,
		MassAfterLanding:    massLanding,
		BalanceAfterLanding: balanceLanding,
		IsBalanced: a.InEnvelope(massRamp, balanceRamp) &&
			a.InEnvelope(massLanding, balanceLanding),
	}
}
