// pkg/units/length.go

package units

import "fmt"

type LengthUnit int

const (
	Meters LengthUnit = iota
	Feet
	NauticalMiles
	Inches
)

func (u LengthUnit) String() string {
	switch u {
	case Meters:
		return "m"
	case Feet:
		return "ft"
	case NauticalMiles:
		return "NM"
	case Inches:
		return "in"
	default:
		return "?"
	}
}

// lengthPerSI gives the number of units u per meter.
func lengthPerSI(u LengthUnit) float64 {
	switch u {
	case Meters:
		return 1
	case Feet:
		return 3.28083989501
	case NauticalMiles:
		return 1 / 1852.0
	case Inches:
		return 39.3700787402
	default:
		panic(fmt.Sprintf("units: unknown length unit %d", u))
	}
}

// Length is a physical length, stored internally in meters.
type Length struct {
	si   float64
	unit LengthUnit
}

func NewLength(v float64, u LengthUnit) Length {
	return Length{si: v / lengthPerSI(u), unit: u}
}

func (l Length) Unit() LengthUnit { return l.unit }
func (l Length) SI() float64      { return l.si }

// In returns l's value converted to u.
func (l Length) In(u LengthUnit) float64 {
	return l.si * lengthPerSI(u)
}

// V returns l's value in its own display unit.
func (l Length) V() float64 { return l.In(l.unit) }

// WithUnit returns the same length, redisplayed in u.
func (l Length) WithUnit(u LengthUnit) Length {
	return Length{si: l.si, unit: u}
}

func (l Length) Add(o Length) Length {
	return Length{si: l.si + o.si, unit: l.unit}
}

func (l Length) Sub(o Length) Length {
	return Length{si: l.si - o.si, unit: l.unit}
}

func (l Length) Neg() Length {
	return Length{si: -l.si, unit: l.unit}
}

func (l Length) Scale(f float64) Length {
	return Length{si: l.si * f, unit: l.unit}
}

func (l Length) LessThan(o Length) bool    { return l.si < o.si }
func (l Length) GreaterThan(o Length) bool { return l.si > o.si }
func (l Length) Equal(o Length) bool       { return almostEqual(l.si, o.si) }

// DividedByDuration returns the average speed implied by covering l over d,
// expressed in the SI speed unit (m/s).
func (l Length) DividedByDuration(d Duration) Speed {
	return NewSpeed(l.si/d.si, MetersPerSecond)
}

// String formats in nautical miles above 1 NM, otherwise meters.
func (l Length) String() string {
	if nm := l.In(NauticalMiles); nm > 1 || nm < -1 {
		return fmt.Sprintf("%.1f NM", nm)
	}
	return fmt.Sprintf("%.0f m", l.si)
}
