package planning

import (
	"errors"
	"testing"

	"github.com/pearjo/libefb/pkg/aircraft"
	"github.com/pearjo/libefb/pkg/fmserr"
	"github.com/pearjo/libefb/pkg/geo"
	"github.com/pearjo/libefb/pkg/performance"
	"github.com/pearjo/libefb/pkg/route"
	"github.com/pearjo/libefb/pkg/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c172() *aircraft.Aircraft {
	return aircraft.New(aircraft.Aircraft{
		Registration: "D-EXYZ",
		Stations: []aircraft.Station{
			{Description: "front seats", Arm: units.NewLength(0.94, units.Meters)},
		},
		EmptyMass:    units.NewMass(807, units.Kilograms),
		EmptyBalance: units.NewLength(1.0, units.Meters),
		FuelType:     aircraft.Diesel,
		Tanks: []aircraft.Tank{
			{Description: "main", Capacity: units.NewVolume(168.8, units.Liters), Arm: units.NewLength(1.22, units.Meters)},
		},
		CGEnvelope: []aircraft.EnvelopePoint{
			{Mass: units.NewMass(0, units.Kilograms), Arm: units.NewLength(0.89, units.Meters)},
			{Mass: units.NewMass(885, units.Kilograms), Arm: units.NewLength(0.89, units.Meters)},
			{Mass: units.NewMass(1111, units.Kilograms), Arm: units.NewLength(1.02, units.Meters)},
			{Mass: units.NewMass(1111, units.Kilograms), Arm: units.NewLength(1.20, units.Meters)},
			{Mass: units.NewMass(0, units.Kilograms), Arm: units.NewLength(1.20, units.Meters)},
		},
	})
}

func c172Performance() performance.Table {
	return performance.NewStatic([]performance.Row{
		{Ceiling: units.Altitude(2500), TAS: units.NewSpeed(107, units.Knots), FF: performance.PerHour(units.NewVolume(21, units.Liters))},
	})
}

// shortCruiseRoute is a single ~32 NM northbound leg with no wind, chosen
// so that at 107 kt TAS its ETE burns close to 6 L at 21 L/h.
func shortCruiseRoute() *route.Route {
	leg := &route.Leg{
		From: route.Point{Ident: "EDDH", Location: geo.Point{Latitude: 0, Longitude: 0}},
		To:   route.Point{Ident: "EDHF", Location: geo.Point{Latitude: 0.5333, Longitude: 0}},
		TAS:  units.NewSpeed(107, units.Knots),
	}
	return &route.Route{
		Legs:        []*route.Leg{leg},
		CruiseSpeed: units.NewSpeed(107, units.Knots),
		CruiseLevel: units.Altitude(2500),
	}
}

func TestComputeC172ManualPolicyScenario(t *testing.T) {
	in := Inputs{
		Aircraft:    c172(),
		Loads:       []units.Mass{units.NewMass(80, units.Kilograms)},
		Policy:      ManualFuel(units.NewVolume(80, units.Liters)),
		Taxi:        units.NewVolume(10, units.Liters),
		Reserve:     Reserve{Duration: units.NewDurationMinutes(30)},
		Performance: c172Performance(),
		Route:       shortCruiseRoute(),
		Variation:   geo.ConstantOracle{},
	}

	plan, err := Compute(in)
	require.NoError(t, err)

	assert.InDelta(t, 6.0, plan.Fuel.Trip.In(units.Liters), 1.0)
	assert.InDelta(t, 26.0, plan.Fuel.Min.In(units.Liters), 1.0)
	assert.InDelta(t, 54.0, plan.Fuel.Extra.In(units.Liters), 1.0)
	assert.InDelta(t, 80.0, plan.Fuel.OnRamp.In(units.Liters), 1e-6)
	assert.InDelta(t, 64.0, plan.Fuel.AfterLanding.In(units.Liters), 1.0)

	assert.InDelta(t, 954.0, plan.MassAndBalance.MassOnRamp.In(units.Kilograms), 1.0)
	assert.True(t, plan.MassAndBalance.IsBalanced)
}

func TestComputeOverfuelingExceedsTankCapacity(t *testing.T) {
	small := aircraft.New(aircraft.Aircraft{
		EmptyMass:    units.NewMass(807, units.Kilograms),
		EmptyBalance: units.NewLength(1.0, units.Meters),
		FuelType:     aircraft.Diesel,
		Tanks: []aircraft.Tank{
			{Capacity: units.NewVolume(60, units.Liters), Arm: units.NewLength(1.22, units.Meters)},
		},
		CGEnvelope: []aircraft.EnvelopePoint{{Mass: units.NewMass(2000, units.Kilograms), Arm: units.NewLength(2, units.Meters)}},
	})

	in := Inputs{
		Aircraft:    small,
		Policy:      ManualFuel(units.NewVolume(80, units.Liters)),
		Taxi:        units.NewVolume(0, units.Liters),
		Reserve:     Reserve{Duration: units.NewDuration(0)},
		Performance: c172Performance(),
		Route:       shortCruiseRoute(),
		Variation:   geo.ConstantOracle{},
	}

	_, err := Compute(in)
	var of *fmserr.OverFueling
	require.True(t, errors.As(err, &of))
	assert.Equal(t, 80.0, of.Required)
	assert.Equal(t, 60.0, of.Capacity)
}

func TestComputeManualBelowMinimumFails(t *testing.T) {
	in := Inputs{
		Aircraft:    c172(),
		Policy:      ManualFuel(units.NewVolume(1, units.Liters)),
		Taxi:        units.NewVolume(10, units.Liters),
		Reserve:     Reserve{Duration: units.NewDurationMinutes(30)},
		Performance: c172Performance(),
		Route:       shortCruiseRoute(),
		Variation:   geo.ConstantOracle{},
	}

	_, err := Compute(in)
	assert.ErrorIs(t, err, ErrInsufficientFuel)
}

func TestComputeMinimumPolicyHasNoExtra(t *testing.T) {
	in := Inputs{
		Aircraft:    c172(),
		Policy:      MinimumFuel(),
		Taxi:        units.NewVolume(10, units.Liters),
		Reserve:     Reserve{Duration: units.NewDurationMinutes(30)},
		Performance: c172Performance(),
		Route:       shortCruiseRoute(),
		Variation:   geo.ConstantOracle{},
	}

	plan, err := Compute(in)
	require.NoError(t, err)
	assert.Equal(t, 0.0, plan.Fuel.Extra.In(units.Liters))
	assert.InDelta(t, plan.Fuel.OnRamp.In(units.Liters), plan.Fuel.Taxi.Add(plan.Fuel.Trip).Add(plan.Fuel.Reserve).In(units.Liters), 1e-6)
}
