// pkg/units/speed.go

package units

import "fmt"

type SpeedUnit int

const (
	MetersPerSecond SpeedUnit = iota
	Knots
	Mach
)

// SpeedOfSound is the reference speed of sound used to convert to/from
// Mach. There is no atmosphere model here, so a single sea-level ISA
// value is used throughout.
const SpeedOfSound = 340.3 // m/s

func (u SpeedUnit) String() string {
	switch u {
	case MetersPerSecond:
		return "m/s"
	case Knots:
		return "kt"
	case Mach:
		return "M"
	default:
		return "?"
	}
}

func speedPerSI(u SpeedUnit) float64 {
	switch u {
	case MetersPerSecond:
		return 1
	case Knots:
		return 1.94384449244
	case Mach:
		return 1 / SpeedOfSound
	default:
		panic(fmt.Sprintf("units: unknown speed unit %d", u))
	}
}

// Speed is a physical speed, stored internally in meters per second.
type Speed struct {
	si   float64
	unit SpeedUnit
}

func NewSpeed(v float64, u SpeedUnit) Speed {
	return Speed{si: v / speedPerSI(u), unit: u}
}

func (s Speed) Unit() SpeedUnit { return s.unit }
func (s Speed) SI() float64     { return s.si }
func (s Speed) In(u SpeedUnit) float64 {
	return s.si * speedPerSI(u)
}
func (s Speed) V() float64 { return s.In(s.unit) }

func (s Speed) WithUnit(u SpeedUnit) Speed {
	return Speed{si: s.si, unit: u}
}

func (s Speed) Add(o Speed) Speed { return Speed{si: s.si + o.si, unit: s.unit} }
func (s Speed) Sub(o Speed) Speed { return Speed{si: s.si - o.si, unit: s.unit} }
func (s Speed) Scale(f float64) Speed {
	return Speed{si: s.si * f, unit: s.unit}
}
func (s Speed) LessThan(o Speed) bool    { return s.si < o.si }
func (s Speed) GreaterThan(o Speed) bool { return s.si > o.si }
func (s Speed) Equal(o Speed) bool       { return almostEqual(s.si, o.si) }

// MultipliedByDuration returns the distance covered at speed s over
// duration d, per the cross-quantity rule (speed*duration = length).
func (s Speed) MultipliedByDuration(d Duration) Length {
	return NewLength(s.si*d.si, Meters)
}

func (s Speed) String() string {
	return fmt.Sprintf("%.0f %s", s.V(), s.unit)
}
