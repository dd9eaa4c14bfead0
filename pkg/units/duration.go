// pkg/units/duration.go

package units

import "fmt"

// Duration is a physical duration, stored as seconds directly since it has
// no alternate display unit.
type Duration struct {
	si float64 // seconds
}

func NewDuration(seconds float64) Duration {
	return Duration{si: seconds}
}

func NewDurationMinutes(minutes float64) Duration {
	return Duration{si: minutes * 60}
}

func NewDurationHours(hours float64) Duration {
	return Duration{si: hours * 3600}
}

func (d Duration) Seconds() float64 { return d.si }
func (d Duration) Minutes() float64 { return d.si / 60 }
func (d Duration) Hours() float64   { return d.si / 3600 }
func (d Duration) SI() float64      { return d.si }

func (d Duration) Add(o Duration) Duration { return Duration{si: d.si + o.si} }
func (d Duration) Sub(o Duration) Duration { return Duration{si: d.si - o.si} }
func (d Duration) Scale(f float64) Duration {
	return Duration{si: d.si * f}
}
func (d Duration) LessThan(o Duration) bool    { return d.si < o.si }
func (d Duration) GreaterThan(o Duration) bool { return d.si > o.si }
func (d Duration) Equal(o Duration) bool       { return almostEqual(d.si, o.si) }

// RoundToSecond rounds d to the nearest whole second, as the wind-triangle
// solver does for ETE.
func (d Duration) RoundToSecond() Duration {
	whole := float64(int64(d.si + 0.5))
	if d.si < 0 {
		whole = float64(int64(d.si - 0.5))
	}
	return Duration{si: whole}
}

// String formats as HH:MM, with a leading sign for negative durations.
func (d Duration) String() string {
	total := int64(d.si + 0.5)
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	h := total / 3600
	m := (total % 3600) / 60
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}
