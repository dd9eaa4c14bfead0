package render

import (
	"strings"
	"testing"

	"github.com/pearjo/libefb/pkg/geo"
	"github.com/pearjo/libefb/pkg/planning"
	"github.com/pearjo/libefb/pkg/route"
	"github.com/pearjo/libefb/pkg/units"
)

func oneLegRoute() *route.Route {
	leg := &route.Leg{
		From: route.Point{Ident: "EDDH", Location: geo.Point{Latitude: 53.63, Longitude: 9.99}},
		To:   route.Point{Ident: "EDHF", Location: geo.Point{Latitude: 53.77, Longitude: 10.21}},
		TAS:  units.NewSpeed(107, units.Knots),
	}
	return &route.Route{Legs: []*route.Leg{leg}}
}

func TestRouteRenderHasOneLinePerLegAfterHeader(t *testing.T) {
	out := Route(oneLegRoute(), geo.ConstantOracle{}, DefaultWidth)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 leg line, got %d lines: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "ROUTE") {
		t.Errorf("expected ROUTE header, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "EDHF") {
		t.Errorf("expected leg line to name its destination, got %q", lines[1])
	}
}

func TestFuelRenderListsEveryField(t *testing.T) {
	out := Fuel(planning.FuelPlanning{
		Taxi:         units.NewVolume(10, units.Liters),
		Trip:         units.NewVolume(6, units.Liters),
		Reserve:      units.NewVolume(10, units.Liters),
		Min:          units.NewVolume(26, units.Liters),
		Extra:        units.NewVolume(54, units.Liters),
		OnRamp:       units.NewVolume(80, units.Liters),
		AfterLanding: units.NewVolume(64, units.Liters),
	}, DefaultWidth)

	for _, want := range []string{"TAXI", "TRIP", "RESERVE", "MIN", "EXTRA", "ON RAMP", "AFTER LANDING"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected fuel section to contain %q, got:\n%s", want, out)
		}
	}
}

func TestMassAndBalanceRenderReportsBalanced(t *testing.T) {
	out := MassAndBalance(planning.MassAndBalance{
		MassOnRamp:    units.NewMass(954, units.Kilograms),
		BalanceOnRamp: units.NewLength(1.01, units.Meters),
		IsBalanced:    true,
	}, DefaultWidth)

	if !strings.Contains(out, "true") {
		t.Errorf("expected rendered balanced flag, got:\n%s", out)
	}
}
