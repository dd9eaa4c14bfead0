// pkg/route/decode.go

package route

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pearjo/libefb/pkg/fmserr"
	"github.com/pearjo/libefb/pkg/geo"
	"github.com/pearjo/libefb/pkg/nd"
	"github.com/pearjo/libefb/pkg/units"
)

// Route is a fully resolved chain of legs plus the planning-level inputs
// that seeded every leg: cruise speed, cruise level and wind.
type Route struct {
	Legs         []*Leg
	CruiseSpeed  units.Speed
	CruiseLevel  units.VerticalDistance
	Wind         Wind
}

var (
	windToken  = regexp.MustCompile(`^(\d{3})(\d{2})KT$`)
	speedToken = regexp.MustCompile(`^N(\d{4})$`)
	machToken  = regexp.MustCompile(`^M(\d{3})$`)
	altToken   = regexp.MustCompile(`^A(\d{3,4})$`)
	flToken    = regexp.MustCompile(`^F(\d{3})$`)
)

// Decode parses a whitespace-separated route string against db and
// returns the resolved route. Resolution failures abort the whole decode
// with RouteUnresolved; an empty token sequence returns RouteEmpty.
func Decode(s string, db *nd.DB) (*Route, error) {
	tokens := strings.Fields(strings.ToUpper(strings.TrimSpace(s)))
	if len(tokens) == 0 {
		return nil, fmserr.RouteEmpty
	}

	r := &Route{
		CruiseSpeed: units.NewSpeed(0, units.Knots),
		CruiseLevel: units.Ground(),
	}

	i := 0
	if i < len(tokens) {
		if m := windToken.FindStringSubmatch(tokens[i]); m != nil {
			dir, _ := strconv.Atoi(m[1])
			spd, _ := strconv.Atoi(m[2])
			r.Wind = Wind{
				Direction: units.NewAngle(float64(dir), units.DegreesTrue),
				Speed:     units.NewSpeed(float64(spd), units.Knots),
			}
			i++
		}
	}
	if i < len(tokens) {
		if m := speedToken.FindStringSubmatch(tokens[i]); m != nil {
			kt, _ := strconv.Atoi(m[1])
			r.CruiseSpeed = units.NewSpeed(float64(kt), units.Knots)
			i++
		} else if m := machToken.FindStringSubmatch(tokens[i]); m != nil {
			hundredths, _ := strconv.Atoi(m[1])
			r.CruiseSpeed = units.NewSpeed(float64(hundredths)/100, units.Mach)
			i++
		}
	}
	if i < len(tokens) {
		switch {
		case tokens[i] == "VFR":
			r.CruiseLevel = units.Unlimited()
			i++
		default:
			if m := altToken.FindStringSubmatch(tokens[i]); m != nil {
				// The digit group is read as tens of feet and scaled by
				// 10 (A0250 = 2,500 ft).
				hft, _ := strconv.Atoi(m[1])
				r.CruiseLevel = units.Altitude(float64(hft) * 10)
				i++
			} else if m := flToken.FindStringSubmatch(tokens[i]); m != nil {
				hft, _ := strconv.Atoi(m[1])
				r.CruiseLevel = units.FlightLevel(float64(hft))
				i++
			}
		}
	}

	elements := tokens[i:]
	if len(elements) == 0 {
		return nil, fmserr.RouteEmpty
	}

	points, err := resolveElements(elements, db)
	if err != nil {
		return nil, err
	}

	for idx := 0; idx+1 < len(points); idx++ {
		r.Legs = append(r.Legs, &Leg{
			From:  points[idx],
			To:    points[idx+1],
			Level: r.CruiseLevel,
			Wind:  r.Wind,
			TAS:   r.CruiseSpeed,
		})
	}

	return r, nil
}

// resolveElements walks the element tokens (fix, or airway+exit-fix
// pairs), resolving each against db and expanding airways into their
// intermediate fixes.
func resolveElements(elements []string, db *nd.DB) ([]Point, error) {
	var points []Point

	i := 0
	for i < len(elements) {
		tok := elements[i]

		if aws, ok := db.Airways(tok); ok && len(points) > 0 && i+1 < len(elements) {
			exit := elements[i+1]
			expanded, used := expandAirway(aws, points[len(points)-1].Ident, exit, db)
			if used {
				points = append(points, expanded...)
				i += 2
				continue
			}
		}

		p, ok := resolveFix(tok, db, points)
		if !ok {
			return nil, &fmserr.RouteUnresolved{Ident: tok, Position: i}
		}
		points = append(points, p)
		i++
	}

	return points, nil
}

// expandAirway finds the airway segment (among aws, which may list
// multiple same-named fragments) that contains both entry and exit, and
// returns the points from just after entry up to and including exit.
func expandAirway(aws []nd.Airway, entry, exit string, db *nd.DB) ([]Point, bool) {
	for _, aw := range aws {
		between, ok := aw.WaypointsBetween(entry, exit)
		if !ok {
			continue
		}
		var pts []Point
		for _, ident := range between {
			if p, ok := resolveFix(ident, db, nil); ok {
				p.Ident = ident
				pts = append(pts, p)
			}
		}
		if p, ok := resolveFix(exit, db, nil); ok {
			pts = append(pts, p)
		} else {
			return nil, false
		}
		return pts, true
	}
	return nil, false
}

// resolveFix resolves a single identifier against the database in
// priority order: exact ICAO airport, named waypoint/fix, then reporting
// point (airport-suffix + code). When more than one fix shares the
// identifier, the candidate closest to the last resolved point wins,
// ties broken lexicographically by identifier.
func resolveFix(ident string, db *nd.DB, resolved []Point) (Point, bool) {
	if ap, ok := db.LookupAirport(ident); ok {
		return Point{Ident: ident, Location: ap.Location}, true
	}

	if fixes := db.LookupFixes(ident); len(fixes) > 0 {
		if len(fixes) == 1 || len(resolved) == 0 {
			return Point{Ident: ident, Location: fixes[0].Location}, true
		}
		return Point{Ident: ident, Location: closest(fixes, resolved[len(resolved)-1].Location)}, true
	}

	if len(resolved) > 0 {
		prev := resolved[len(resolved)-1]
		if p, ok := resolveReportingPoint(ident, prev, db); ok {
			return p, true
		}
	}

	return Point{}, false
}

// resolveReportingPoint interprets ident as a two-letter airport suffix
// plus code (e.g. "DHN2" against airport "EDDH") when the previously
// resolved point is that airport. The reporting point itself must still
// be present in the database under its own identifier.
func resolveReportingPoint(ident string, prev Point, db *nd.DB) (Point, bool) {
	if len(ident) < 3 || len(prev.Ident) < 2 {
		return Point{}, false
	}
	suffix := prev.Ident[len(prev.Ident)-2:]
	if !strings.HasPrefix(ident, suffix) {
		return Point{}, false
	}
	if fixes := db.LookupFixes(ident); len(fixes) > 0 {
		return Point{Ident: ident, Location: fixes[0].Location}, true
	}
	return Point{}, false
}

// closest returns the location of the fix in fixes nearest to from,
// breaking ties by lexicographically smallest identifier.
func closest(fixes []nd.Fix, from geo.Point) geo.Point {
	sorted := make([]nd.Fix, len(fixes))
	copy(sorted, fixes)
	sort.SliceStable(sorted, func(i, j int) bool {
		di := geo.Distance(from, sorted[i].Location).SI()
		dj := geo.Distance(from, sorted[j].Location).SI()
		if di != dj {
			return di < dj
		}
		return sorted[i].Id < sorted[j].Id
	})
	return sorted[0].Location
}
