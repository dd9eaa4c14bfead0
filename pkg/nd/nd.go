// Package nd implements the navigation database: the in-memory store of
// fixes, airports, runways and airways that every other core component
// resolves identifiers against. Lookups are keyed by ICAO/fix identifier
// and are case-insensitive; the store is append-only and frozen for
// lookups once a parse pass has populated it, the same "parse into a flat
// map, then only read" shape as a static aeronautical database.
package nd

import (
	"strings"

	"github.com/pearjo/libefb/pkg/geo"
)

// Fix is an enroute waypoint: a named point with no runway or airspace
// information attached.
type Fix struct {
	Id       string
	Location geo.Point
}

// fixRecord pairs a stored Fix with the parse generation that last set its
// location, so InsertFix can tell a same-parse correction from a
// genuinely distinct fix sharing the identifier.
type fixRecord struct {
	fix Fix
	gen uint64
}

// Runway is a single physical runway end.
type Runway struct {
	Id        string
	Heading   float64 // degrees true
	Threshold geo.Point
	Elevation float64 // feet MSL
	Length    float64 // meters
}

// Airport is an aerodrome: an identifier, a reference point and zero or
// more runway ends.
type Airport struct {
	Id        string
	Name      string
	Elevation float64 // feet MSL
	Location  geo.Point
	Runways   []Runway
}

// RunwayNamed returns the runway with the given identifier, case folded.
func (a Airport) RunwayNamed(id string) (Runway, bool) {
	for _, r := range a.Runways {
		if strings.EqualFold(r.Id, id) {
			return r, true
		}
	}
	return Runway{}, false
}

// AirwayFix is one leg-point of an airway: the fix identifier only; no
// altitude bracket is recorded.
type AirwayFix struct {
	Fix string
}

// Airway is a named, ordered chain of fixes.
type Airway struct {
	Name  string
	Fixes []AirwayFix
}

// WaypointsBetween returns the fix identifiers strictly between wp0 and
// wp1 along the airway, in the direction implied by their order. It
// reports false if either endpoint isn't found on the airway.
func (a Airway) WaypointsBetween(wp0, wp1 string) ([]string, bool) {
	start, end := -1, -1
	for i, f := range a.Fixes {
		if strings.EqualFold(f.Fix, wp0) {
			start = i
		}
		if strings.EqualFold(f.Fix, wp1) {
			end = i
		}
	}
	if start == -1 || end == -1 {
		return nil, false
	}

	delta := 1
	if start > end {
		delta = -1
	}

	var out []string
	for i := start + delta; i != end; i += delta {
		out = append(out, a.Fixes[i].Fix)
	}
	return out, true
}

// DB is the navigation database: the union of everything parsed from one
// or more ARINC 424 or OpenAir sources. Keys are stored upper-cased so
// lookups are case-insensitive without per-call normalization cost.
//
// A single identifier can legitimately name more than one fix (the same
// five-letter code reused in unrelated regions), so fixes are kept as a
// set per identifier; LookupFix returns the first one registered and
// LookupFixes returns the full set for callers, such as the route
// decoder, that can disambiguate using extra context.
//
// Primary data (a fix's location, an airport's location/elevation/name)
// follows last-in-wins within a single parse and first-in-wins across
// parses: a later record for the same identifier inside one BeginParse
// session corrects the earlier one, but once a session ends its data is
// frozen against anything a later session tries to insert under the same
// identifier. Every insert made without ever calling BeginParse shares
// generation zero and behaves as one continuous session.
type DB struct {
	fixes    map[string][]fixRecord
	airports map[string]Airport
	airways  map[string][]Airway

	gen        uint64
	airportGen map[string]uint64
}

// New returns an empty navigation database ready to be populated.
func New() *DB {
	return &DB{
		fixes:      make(map[string][]fixRecord),
		airports:   make(map[string]Airport),
		airways:    make(map[string][]Airway),
		airportGen: make(map[string]uint64),
	}
}

func key(id string) string { return strings.ToUpper(strings.TrimSpace(id)) }

// BeginParse opens a new parse session: inserts that follow correct one
// another's primary data under the same identifier, but no longer
// override what an earlier session already established. Callers that
// insert without ever calling BeginParse all share generation zero.
func (d *DB) BeginParse() {
	d.gen++
}

// InsertFix adds f to the database under its identifier. Within the
// current parse session, a later record at the same location is dropped
// as a duplicate, and a later record at a different location corrects the
// one most recently recorded under this identifier in this session.
// Across sessions, a later session's record for an identifier already
// known is kept alongside the earlier one as a distinct candidate fix
// rather than overwriting it.
func (d *DB) InsertFix(f Fix) {
	k := key(f.Id)
	records := d.fixes[k]
	for i, r := range records {
		if r.fix.Location == f.Location {
			return
		}
		if r.gen == d.gen {
			records[i] = fixRecord{fix: f, gen: d.gen}
			return
		}
	}
	d.fixes[k] = append(records, fixRecord{fix: f, gen: d.gen})
}

// InsertAirport adds or merges ap into the database. Runways always
// accumulate, since continuation records may arrive in any order and
// across any number of parses. Primary data (location, elevation, name)
// follows the same last-in-session/first-across-sessions rule as
// InsertFix: a later primary record within the session that first
// supplied this airport's primary data corrects it; a later parse that
// already inherited primary data from an earlier one leaves it alone.
func (d *DB) InsertAirport(ap Airport) {
	k := key(ap.Id)
	existing, ok := d.airports[k]
	if !ok {
		d.airports[k] = ap
		d.airportGen[k] = d.gen
		return
	}

	hasPrimary := ap.Location != (geo.Point{})
	firstPrimary := existing.Location == (geo.Point{})
	sameSession := d.airportGen[k] == d.gen

	if hasPrimary && (sameSession || firstPrimary) {
		existing.Location = ap.Location
		existing.Elevation = ap.Elevation
		if ap.Name != "" {
			existing.Name = ap.Name
		}
		d.airportGen[k] = d.gen
	}

	existing.Runways = append(existing.Runways, ap.Runways...)
	d.airports[k] = existing
}

// InsertAirway appends aw to the set of airway segments registered under
// its name; multiple same-named airway fragments from different source
// files (e.g. low and high segments) coexist side by side.
func (d *DB) InsertAirway(aw Airway) {
	k := key(aw.Name)
	d.airways[k] = append(d.airways[k], aw)
}

// LookupFix returns the first fix registered under the given identifier.
// Airports are not returned by this lookup even though they are also
// valid route endpoints; callers that accept either should fall back to
// LookupAirport.
func (d *DB) LookupFix(id string) (Fix, bool) {
	rs := d.fixes[key(id)]
	if len(rs) == 0 {
		return Fix{}, false
	}
	return rs[0].fix, true
}

// LookupFixes returns every fix registered under the given identifier,
// in insertion order.
func (d *DB) LookupFixes(id string) []Fix {
	rs := d.fixes[key(id)]
	if rs == nil {
		return nil
	}
	out := make([]Fix, len(rs))
	for i, r := range rs {
		out[i] = r.fix
	}
	return out
}

// LookupAirport returns the airport with the given ICAO identifier.
func (d *DB) LookupAirport(id string) (Airport, bool) {
	a, ok := d.airports[key(id)]
	return a, ok
}

// Airways returns every parsed segment registered under name.
func (d *DB) Airways(name string) ([]Airway, bool) {
	aws, ok := d.airways[key(name)]
	return aws, ok
}

// LookupPoint resolves any identifier (fix or airport) to a geographic
// position, the common case for route decoding where either kind of
// element can terminate a leg.
func (d *DB) LookupPoint(id string) (geo.Point, bool) {
	if f, ok := d.LookupFix(id); ok {
		return f.Location, true
	}
	if a, ok := d.LookupAirport(id); ok {
		return a.Location, true
	}
	return geo.Point{}, false
}

// Empty reports whether the database has never had anything inserted
// into it.
func (d *DB) Empty() bool {
	return len(d.fixes) == 0 && len(d.airports) == 0 && len(d.airways) == 0
}
