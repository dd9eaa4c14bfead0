package performance

import (
	"errors"
	"testing"

	"github.com/pearjo/libefb/pkg/fmserr"
	"github.com/pearjo/libefb/pkg/units"
)

func c172Table() *Static {
	return NewStatic([]Row{
		{Ceiling: units.Altitude(2500), TAS: units.NewSpeed(107, units.Knots), FF: PerHour(units.NewVolume(21, units.Liters))},
		{Ceiling: units.Altitude(6500), TAS: units.NewSpeed(112, units.Knots), FF: PerHour(units.NewVolume(23, units.Liters))},
	})
}

func TestLookupSelectsSmallestSufficientCeiling(t *testing.T) {
	table := c172Table()
	tas, ff, err := table.Lookup(units.Altitude(2500))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tas.In(units.Knots) != 107 {
		t.Errorf("TAS = %v kt, want 107", tas.In(units.Knots))
	}
	if ff.Volume().In(units.Liters) != 21 {
		t.Errorf("FF = %v L/h, want 21", ff.Volume().In(units.Liters))
	}
}

func TestLookupSkipsRowsBelowQueryLevel(t *testing.T) {
	table := c172Table()
	tas, _, err := table.Lookup(units.Altitude(4000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tas.In(units.Knots) != 112 {
		t.Errorf("TAS = %v kt, want 112 (the 6500ft row is the smallest ceiling >= 4000ft)", tas.In(units.Knots))
	}
}

func TestLookupAboveHighestCeilingClampsAndFlags(t *testing.T) {
	table := c172Table()
	tas, _, err := table.Lookup(units.Altitude(10000))
	if tas.In(units.Knots) != 112 {
		t.Errorf("expected clamp to the 6500ft row, got TAS %v", tas.In(units.Knots))
	}
	var above *fmserr.AboveCeiling
	if !errors.As(err, &above) {
		t.Fatalf("expected AboveCeiling, got %v", err)
	}
}

func TestUnsortedRowsAreSortedByConstruction(t *testing.T) {
	table := NewStatic([]Row{
		{Ceiling: units.Altitude(6500), TAS: units.NewSpeed(112, units.Knots), FF: PerHour(units.NewVolume(23, units.Liters))},
		{Ceiling: units.Altitude(2500), TAS: units.NewSpeed(107, units.Knots), FF: PerHour(units.NewVolume(21, units.Liters))},
	})
	if table.Rows[0].Ceiling.Feet() != 2500 {
		t.Errorf("expected the lower ceiling row first, got %v", table.Rows[0].Ceiling)
	}
}

func TestFuelFlowVolumeBurnedOver(t *testing.T) {
	ff := PerHour(units.NewVolume(21, units.Liters))
	burned := ff.BurnedVolumeOver(units.NewDurationMinutes(30), 0.84*1000)
	if got := burned.In(units.Liters); got < 10.4 || got > 10.6 {
		t.Errorf("burned volume = %v L, want ~10.5", got)
	}
}

func TestFuelFlowMassKindPanicsOnVolumeAccessor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic calling Volume() on a mass-based flow")
		}
	}()
	PerHourMass(units.NewMass(15, units.Kilograms)).Volume()
}
