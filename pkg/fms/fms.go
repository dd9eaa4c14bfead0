// Package fms implements the FMS façade: a small state machine that
// sequences navigation-database loading, route decoding and flight
// planning, invalidating downstream derivations whenever an earlier
// input changes.
package fms

import (
	"fmt"
	"io"

	"github.com/pearjo/libefb/pkg/aircraft"
	"github.com/pearjo/libefb/pkg/arinc424"
	"github.com/pearjo/libefb/pkg/fmserr"
	"github.com/pearjo/libefb/pkg/geo"
	"github.com/pearjo/libefb/pkg/log"
	"github.com/pearjo/libefb/pkg/nd"
	"github.com/pearjo/libefb/pkg/openair"
	"github.com/pearjo/libefb/pkg/planning"
	"github.com/pearjo/libefb/pkg/route"
	"github.com/pearjo/libefb/pkg/util"
)

// State is one of the façade's four lifecycle stages.
type State int

const (
	Fresh State = iota
	NDLoaded
	Routed
	Planned
)

func (s State) String() string {
	switch s {
	case Fresh:
		return "Fresh"
	case NDLoaded:
		return "NDLoaded"
	case Routed:
		return "Routed"
	case Planned:
		return "Planned"
	default:
		return "?"
	}
}

// Format names the ND source format a caller hands to ReadND.
type Format int

const (
	ARINC424 Format = iota
	OpenAir
)

// FMS sequences ND loading, route decoding and flight planning behind a
// single façade, tracking which stage each derived value is valid for.
type FMS struct {
	state State
	log   *log.Logger

	db    *nd.DB
	route *route.Route
	plan  *planning.Plan

	variation geo.VariationOracle
}

// New returns a fresh FMS in the Fresh state. variation is the oracle
// every decoded route's legs resolve magnetic course and heading
// against; it is fixed for the FMS instance's lifetime.
func New(variation geo.VariationOracle, logger *log.Logger) *FMS {
	if logger == nil {
		logger = log.Discard()
	}
	return &FMS{state: Fresh, log: logger, variation: variation, db: nd.New()}
}

// State returns the façade's current lifecycle stage.
func (f *FMS) State() State { return f.state }

// ReadND parses source against format and, for ARINC424, merges the
// result into the façade's navigation database, transitioning Fresh or
// NDLoaded to NDLoaded. OpenAir input is parsed for its diagnostics only;
// its airspaces are not stored. Parsing more than once accumulates into the same database
// (a later parse's fixes coexist with, rather than replace, an earlier
// one — see pkg/nd). Calling ReadND after a route has been decoded
// invalidates that route and any flight plan built from it, since the
// underlying database identities may have changed.
func (f *FMS) ReadND(r io.Reader, format Format) *util.Diagnostics {
	var diags *util.Diagnostics
	switch format {
	case ARINC424:
		diags = arinc424.Parse(r, f.db)
	case OpenAir:
		_, diags = openair.Parse(r)
	default:
		panic(fmt.Sprintf("fms: unknown ND format %d", format))
	}

	if diags.HaveErrors() {
		f.log.Warn("nd parse diagnostics", "format", format, "messages", diags.Messages())
	}

	f.route = nil
	f.plan = nil
	f.state = NDLoaded
	return diags
}

// Decode resolves s against the façade's navigation database, moving
// NDLoaded to Routed. It refuses to run before an ND has been read (the
// façade never transitions Fresh directly to Routed); against a loaded
// but empty database the first identifier fails with RouteUnresolved. A
// successful decode clears any flight plan built from a previous route.
func (f *FMS) Decode(s string) error {
	if f.state == Fresh {
		return fmt.Errorf("fms: cannot decode before the navigation database is loaded")
	}
	r, err := route.Decode(s, f.db)
	if err != nil {
		f.log.Warn("route decode failed", "error", err)
		return err
	}
	f.route = r
	f.plan = nil
	f.state = Routed
	return nil
}

// Route returns the currently decoded route, or nil if the façade hasn't
// reached Routed.
func (f *FMS) Route() *route.Route { return f.route }

// SetFlightPlanning resolves a flight plan for the façade's current
// route using the given aircraft, loads and policy parameters, moving
// Routed to Planned.
func (f *FMS) SetFlightPlanning(a *aircraft.Aircraft, in planning.Inputs) error {
	if f.state != Routed && f.state != Planned {
		return fmt.Errorf("fms: cannot plan before a route has been decoded")
	}
	in.Aircraft = a
	in.Route = f.route
	in.Variation = f.variation

	plan, err := planning.Compute(in)
	if err != nil {
		f.log.Warn("flight planning failed", "error", err)
		return err
	}
	if plan.Fuel.AboveCeiling != nil {
		f.log.Warn("cruise level above performance table ceiling", "error", plan.Fuel.AboveCeiling)
	}
	if !plan.MassAndBalance.IsBalanced {
		f.log.Warn("flight plan is out of the CG envelope",
			"error", &fmserr.OutOfEnvelope{
				MassKg:    plan.MassAndBalance.MassOnRamp.SI(),
				ArmMeters: plan.MassAndBalance.BalanceOnRamp.SI(),
			})
	}

	f.plan = plan
	f.state = Planned
	return nil
}

// Plan returns the currently resolved flight plan, or nil if the façade
// hasn't reached Planned.
func (f *FMS) Plan() *planning.Plan { return f.plan }
