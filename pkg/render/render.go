// Package render formats a Route and a flight plan into the fixed-width
// columnar text layout used for a printed flight plan: ROUTE, FUEL and
// MASS & BALANCE sections. This is a boundary artifact, not something the
// façade state machine depends on — only external callers and this
// package's own tests exercise it.
package render

import (
	"fmt"
	"strings"

	"github.com/iancoleman/orderedmap"
	"github.com/pearjo/libefb/pkg/geo"
	"github.com/pearjo/libefb/pkg/planning"
	"github.com/pearjo/libefb/pkg/route"
	"github.com/pearjo/libefb/pkg/units"
)

// DefaultWidth is the line width every section lays its fields out
// against: a 10-column destination field and a 10-column right-aligned
// value field, with units appended after the value.
const DefaultWidth = 40

// Route renders the ROUTE section: one line per leg, naming the
// destination fix and its magnetic course, distance and ETE.
func Route(r *route.Route, variation geo.VariationOracle, width int) string {
	var b strings.Builder
	b.WriteString(header("ROUTE", width))
	for _, leg := range r.Legs {
		fields := orderedmap.New()
		fields.Set("course", fmt.Sprintf("%.0f%s", leg.MagneticCourse(variation).In(units.DegreesMagnetic), units.DegreesMagnetic))
		fields.Set("distance", leg.Distance(variation).String())
		fields.Set("ete", leg.ETE(variation).String())
		b.WriteString(row(leg.To.Ident, fields, width))
	}
	return b.String()
}

// Fuel renders the FUEL section from a resolved fuel plan.
func Fuel(fuel planning.FuelPlanning, width int) string {
	var b strings.Builder
	b.WriteString(header("FUEL", width))

	rows := orderedmap.New()
	rows.Set("TAXI", fuel.Taxi)
	rows.Set("TRIP", fuel.Trip)
	rows.Set("RESERVE", fuel.Reserve)
	rows.Set("ALTERNATE", fuel.Alternate)
	rows.Set("MIN", fuel.Min)
	rows.Set("EXTRA", fuel.Extra)
	rows.Set("ON RAMP", fuel.OnRamp)
	rows.Set("AFTER LANDING", fuel.AfterLanding)

	for _, k := range rows.Keys() {
		v, _ := rows.Get(k)
		b.WriteString(valueLine(k, v.(units.Volume).String(), width))
	}
	return b.String()
}

// MassAndBalance renders the MASS & BALANCE section.
func MassAndBalance(mb planning.MassAndBalance, width int) string {
	var b strings.Builder
	b.WriteString(header("MASS & BALANCE", width))

	rows := orderedmap.New()
	rows.Set("MASS RAMP", mb.MassOnRamp.String())
	rows.Set("BALANCE RAMP", mb.BalanceOnRamp.String())
	rows.Set("MASS LANDING", mb.MassAfterLanding.String())
	rows.Set("BALANCE LANDING", mb.BalanceAfterLanding.String())
	rows.Set("BALANCED", fmt.Sprintf("%v", mb.IsBalanced))

	for _, k := range rows.Keys() {
		v, _ := rows.Get(k)
		b.WriteString(valueLine(k, v.(string), width))
	}
	return b.String()
}

func header(title string, width int) string {
	return fmt.Sprintf("%-*s\n", width, title)
}

// row prints a destination-field line (10 columns) followed by the
// fields' values, each right-aligned into its own 10-column field with no
// separator between fields; the values carry their units already.
func row(destination string, fields *orderedmap.OrderedMap, width int) string {
	var parts []string
	for _, k := range fields.Keys() {
		v, _ := fields.Get(k)
		parts = append(parts, fmt.Sprintf("%10s", v))
	}
	line := fmt.Sprintf("%-10s%s\n", destination, strings.Join(parts, ""))
	if len(line) > width+1 {
		return line // long values overflow the nominal width rather than truncate data
	}
	return line
}

func valueLine(label, value string, width int) string {
	valueWidth := width - 10
	if valueWidth < 0 {
		valueWidth = 0
	}
	return fmt.Sprintf("%-10s%*s\n", label, valueWidth, value)
}
