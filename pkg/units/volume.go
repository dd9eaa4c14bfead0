// pkg/units/volume.go

package units

import "fmt"

type VolumeUnit int

const (
	CubicMeters VolumeUnit = iota
	Liters
)

func (u VolumeUnit) String() string {
	switch u {
	case CubicMeters:
		return "m³"
	case Liters:
		return "L"
	default:
		return "?"
	}
}

func volumePerSI(u VolumeUnit) float64 {
	switch u {
	case CubicMeters:
		return 1
	case Liters:
		return 1000
	default:
		panic(fmt.Sprintf("units: unknown volume unit %d", u))
	}
}

// Volume is a physical volume, stored internally in cubic meters.
type Volume struct {
	si   float64
	unit VolumeUnit
}

func NewVolume(v float64, u VolumeUnit) Volume {
	return Volume{si: v / volumePerSI(u), unit: u}
}

func (v Volume) Unit() VolumeUnit { return v.unit }
func (v Volume) SI() float64      { return v.si }
func (v Volume) In(u VolumeUnit) float64 {
	return v.si * volumePerSI(u)
}
func (v Volume) V() float64 { return v.In(v.unit) }

func (v Volume) WithUnit(u VolumeUnit) Volume {
	return Volume{si: v.si, unit: u}
}

func (v Volume) Add(o Volume) Volume { return Volume{si: v.si + o.si, unit: v.unit} }
func (v Volume) Sub(o Volume) Volume { return Volume{si: v.si - o.si, unit: v.unit} }
func (v Volume) Scale(f float64) Volume {
	return Volume{si: v.si * f, unit: v.unit}
}
func (v Volume) LessThan(o Volume) bool    { return v.si < o.si }
func (v Volume) GreaterThan(o Volume) bool { return v.si > o.si }
func (v Volume) Equal(o Volume) bool       { return almostEqual(v.si, o.si) }

// ToMass converts a volume to a mass given a density in kilograms per cubic
// meter, per the cross-quantity rule (volume*density = mass).
func (v Volume) ToMass(densityKgPerM3 float64) Mass {
	return NewMass(v.si*densityKgPerM3, Kilograms)
}

func (v Volume) String() string {
	return fmt.Sprintf("%.1f %s", v.V(), v.unit)
}
