// pkg/units/mass.go

package units

import "fmt"

type MassUnit int

const (
	Kilograms MassUnit = iota
	Pounds
)

func (u MassUnit) String() string {
	switch u {
	case Kilograms:
		return "kg"
	case Pounds:
		return "lb"
	default:
		return "?"
	}
}

func massPerSI(u MassUnit) float64 {
	switch u {
	case Kilograms:
		return 1
	case Pounds:
		return 2.20462262185
	default:
		panic(fmt.Sprintf("units: unknown mass unit %d", u))
	}
}

// Mass is a physical mass, stored internally in kilograms.
type Mass struct {
	si   float64
	unit MassUnit
}

func NewMass(v float64, u MassUnit) Mass {
	return Mass{si: v / massPerSI(u), unit: u}
}

func (m Mass) Unit() MassUnit { return m.unit }
func (m Mass) SI() float64    { return m.si }
func (m Mass) In(u MassUnit) float64 {
	return m.si * massPerSI(u)
}
func (m Mass) V() float64 { return m.In(m.unit) }

func (m Mass) WithUnit(u MassUnit) Mass {
	return Mass{si: m.si, unit: u}
}

func (m Mass) Add(o Mass) Mass { return Mass{si: m.si + o.si, unit: m.unit} }
func (m Mass) Sub(o Mass) Mass { return Mass{si: m.si - o.si, unit: m.unit} }
func (m Mass) Scale(f float64) Mass {
	return Mass{si: m.si * f, unit: m.unit}
}
func (m Mass) LessThan(o Mass) bool    { return m.si < o.si }
func (m Mass) GreaterThan(o Mass) bool { return m.si > o.si }
func (m Mass) Equal(o Mass) bool       { return almostEqual(m.si, o.si) }

func (m Mass) String() string {
	return fmt.Sprintf("%.1f %s", m.V(), m.unit)
}
