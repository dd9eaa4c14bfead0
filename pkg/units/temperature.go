// pkg/units/temperature.go

package units

import "fmt"

// TemperatureUnit enumerates the temperature scales used by runway
// performance correction inputs: Kelvin, Celsius and Fahrenheit, the
// conventional set for an aviation performance table.
type TemperatureUnit int

const (
	Kelvin TemperatureUnit = iota
	Celsius
	Fahrenheit
)

func (u TemperatureUnit) String() string {
	switch u {
	case Kelvin:
		return "K"
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	default:
		return "?"
	}
}

// Temperature is stored internally in kelvin.
type Temperature struct {
	si   float64
	unit TemperatureUnit
}

func NewTemperature(v float64, u TemperatureUnit) Temperature {
	var k float64
	switch u {
	case Kelvin:
		k = v
	case Celsius:
		k = v + 273.15
	case Fahrenheit:
		k = (v-32)*5/9 + 273.15
	default:
		panic(fmt.Sprintf("units: unknown temperature unit %d", u))
	}
	return Temperature{si: k, unit: u}
}

func (t Temperature) Unit() TemperatureUnit { return t.unit }
func (t Temperature) SI() float64           { return t.si }

func (t Temperature) In(u TemperatureUnit) float64 {
	switch u {
	case Kelvin:
		return t.si
	case Celsius:
		return t.si - 273.15
	case Fahrenheit:
		return (t.si-273.15)*9/5 + 32
	default:
		panic(fmt.Sprintf("units: unknown temperature unit %d", u))
	}
}
func (t Temperature) V() float64 { return t.In(t.unit) }

// Delta returns t minus o, in kelvin (equivalently Celsius degrees of
// difference).
func (t Temperature) Delta(o Temperature) float64 {
	return t.si - o.si
}

func (t Temperature) String() string {
	return fmt.Sprintf("%.1f %s", t.V(), t.unit)
}
