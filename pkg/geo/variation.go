// pkg/geo/variation.go

package geo

import (
	"time"

	"github.com/pearjo/libefb/pkg/units"
	"github.com/westphae/geomag/pkg/wmm"
)

// VariationOracle is a callback variation(lat, lon, date) -> signed
// radians, east-positive. Implementations fix their epoch at construction
// and never refresh it at runtime.
type VariationOracle interface {
	Variation(p Point) units.Angle
}

// WMMOracle adapts the westphae/geomag World Magnetic Model to the
// VariationOracle contract, fixing the model epoch at construction.
type WMMOracle struct {
	model *wmm.Model
	epoch time.Time
}

// NewWMMOracle builds a WMM-backed oracle for the given epoch date. The
// epoch governs secular variation drift for every subsequent Variation
// call; there is no runtime refresh.
func NewWMMOracle(epoch time.Time) (*WMMOracle, error) {
	m, err := wmm.NewModel(epoch)
	if err != nil {
		return nil, err
	}
	return &WMMOracle{model: m, epoch: epoch}, nil
}

// Variation returns the signed magnetic variation at p for the oracle's
// fixed epoch, east-positive, normalized into [0, 2π) as an Angle (the sign
// is preserved by callers adding it directly to a true bearing before
// renormalizing; see Leg.MagneticCourse).
func (o *WMMOracle) Variation(p Point) units.Angle {
	dec := o.model.Declination(p.Latitude, p.Longitude, 0, o.epoch)
	return units.NewAngle(dec, units.DegreesTrue)
}

// ConstantOracle is a VariationOracle that returns the same variation
// everywhere, useful for tests and for small local areas where a full WMM
// evaluation is unnecessary.
type ConstantOracle struct {
	Declination units.Angle // signed, east-positive
}

func (o ConstantOracle) Variation(Point) units.Angle { return o.Declination }
