// pkg/units/units_test.go

package units

import (
	"math"
	"testing"
)

func TestLengthRoundTrip(t *testing.T) {
	tests := []struct {
		v    float64
		from LengthUnit
		to   LengthUnit
	}{
		{100, Meters, Feet},
		{5.2, NauticalMiles, Meters},
		{12, Inches, Feet},
	}
	for _, tt := range tests {
		l := NewLength(tt.v, tt.from)
		back := NewLength(l.In(tt.to), tt.to)
		if !back.Equal(l) {
			t.Errorf("round trip %v %v->%v->%v: got %v want %v", tt.v, tt.from, tt.to, tt.from, back.In(tt.from), tt.v)
		}
	}
}

func TestMassRoundTrip(t *testing.T) {
	m := NewMass(1000, Kilograms)
	back := NewMass(m.In(Pounds), Pounds)
	if !back.Equal(m) {
		t.Errorf("mass round trip: got %v kg want %v kg", back.In(Kilograms), m.In(Kilograms))
	}
}

func TestAngleNormalizesOnConstruction(t *testing.T) {
	tests := []float64{-10, 0, 359.999, 360, 720, -720.5}
	for _, d := range tests {
		a := NewAngle(d, DegreesTrue)
		if a.SI() < 0 || a.SI() >= 2*math.Pi {
			t.Errorf("NewAngle(%v) = %v rad, not in [0, 2pi)", d, a.SI())
		}
	}
}

func TestAngleAddStaysNormalized(t *testing.T) {
	a := NewAngle(350, DegreesTrue)
	b := NewAngle(20, DegreesTrue)
	sum := a.Add(b)
	if sum.SI() < 0 || sum.SI() >= 2*math.Pi {
		t.Errorf("Add result %v rad not normalized", sum.SI())
	}
	if got := sum.In(DegreesTrue); math.Abs(got-10) > 1e-6 {
		t.Errorf("350+20 degrees = %v, want 10", got)
	}
}

func TestAngleMixedUnitArithmeticPreservesLHSUnit(t *testing.T) {
	a := NewAngle(10, DegreesMagnetic)
	b := NewAngle(0.1, Radians)
	sum := a.Add(b)
	if sum.Unit() != DegreesMagnetic {
		t.Errorf("Add should preserve LHS unit, got %v", sum.Unit())
	}
}

func TestSpeedMachRoundTrip(t *testing.T) {
	s := NewSpeed(0.8, Mach)
	back := NewSpeed(s.In(Knots), Knots)
	if !back.Equal(s) {
		t.Errorf("mach round trip: got %v M want %v M", back.In(Mach), s.In(Mach))
	}
}

func TestVolumeToMass(t *testing.T) {
	v := NewVolume(100, Liters)
	// avgas ~ 0.72 kg/L
	m := v.ToMass(720)
	if got := m.In(Kilograms); math.Abs(got-72) > 1e-6 {
		t.Errorf("100L * 720kg/m3 = %v kg, want 72", got)
	}
}

func TestDurationFormat(t *testing.T) {
	d := NewDurationMinutes(125)
	if got := d.String(); got != "02:05" {
		t.Errorf("duration string = %q, want 02:05", got)
	}
}

func TestDurationRoundToSecond(t *testing.T) {
	d := NewDuration(12.6)
	if got := d.RoundToSecond().Seconds(); got != 13 {
		t.Errorf("RoundToSecond(12.6) = %v, want 13", got)
	}
}

func TestLengthDividedByDuration(t *testing.T) {
	l := NewLength(100, NauticalMiles)
	d := NewDurationHours(2)
	s := l.DividedByDuration(d)
	if got := s.In(Knots); math.Abs(got-50) > 1e-3 {
		t.Errorf("100NM / 2h = %v kt, want 50", got)
	}
}

func TestPressureRoundTrip(t *testing.T) {
	p := NewPressure(29.92, InchesOfMercury)
	back := NewPressure(p.In(Hectopascals), Hectopascals)
	if math.Abs(back.In(InchesOfMercury)-29.92) > 1e-3 {
		t.Errorf("pressure round trip: got %v inHg, want 29.92", back.In(InchesOfMercury))
	}
}

func TestTemperatureConversion(t *testing.T) {
	t0 := NewTemperature(15, Celsius)
	if got := t0.In(Kelvin); math.Abs(got-288.15) > 1e-6 {
		t.Errorf("15C in K = %v, want 288.15", got)
	}
	if got := t0.In(Fahrenheit); math.Abs(got-59) > 1e-6 {
		t.Errorf("15C in F = %v, want 59", got)
	}
}
