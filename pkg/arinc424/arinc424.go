// Package arinc424 parses ARINC 424 fixed-column navigation data records
// (the format FAA CIFP cycles are distributed in) into the waypoints,
// airports, runways and airways that populate a navigation database.
// Malformed records are skipped with a diagnostic rather than aborting
// the whole file: one bad record in a multi-thousand-line cycle must not
// cost the rest of the database. Records of unrecognized sections are
// skipped silently.
package arinc424

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pearjo/libefb/pkg/fmserr"
	"github.com/pearjo/libefb/pkg/geo"
	"github.com/pearjo/libefb/pkg/nd"
	"github.com/pearjo/libefb/pkg/util"
	fixedwidth "github.com/wallaceicy06/go-fixedwidth"
)

// LineLength is the fixed record length of an ARINC 424 line, including
// its trailing carriage return and newline.
const LineLength = 134

// header carries the columns every record type shares, decoded once per
// line to pick a dispatch path before a type-specific struct is decoded.
type header struct {
	RecordType  string `fixed:"1,1"`
	SectionCode string `fixed:"5,5"`
}

type navaidRecord struct {
	SubsectionCode string `fixed:"7,7"`
	Id             string `fixed:"14,17"`
	Name           string `fixed:"94,123"`
	VORLatitude    string `fixed:"33,41"`
	VORLongitude   string `fixed:"42,51"`
	DMELatitude    string `fixed:"56,64"`
	DMELongitude   string `fixed:"65,74"`
}

type enrouteWaypointRecord struct {
	SubsectionCode string `fixed:"6,6"`
	Id             string `fixed:"14,18"`
	Latitude       string `fixed:"33,41"`
	Longitude      string `fixed:"42,51"`
}

type enrouteAirwayRecord struct {
	SubsectionCode string `fixed:"6,6"`
	RouteId        string `fixed:"14,18"`
	SequenceNumber string `fixed:"26,29"`
	FixId          string `fixed:"30,34"`
	DescriptionEnd string `fixed:"41,41"`
}

type airportPrimaryRecord struct {
	Icao           string `fixed:"7,10"`
	SubsectionCode string `fixed:"13,13"`
	Latitude       string `fixed:"33,41"`
	Longitude      string `fixed:"42,51"`
	Elevation      string `fixed:"57,61"`
}

type airportRunwayRecord struct {
	Icao           string `fixed:"7,10"`
	SubsectionCode string `fixed:"13,13"`
	Continuation   string `fixed:"22,22"`
	RunwayId       string `fixed:"14,18"`
	Heading        string `fixed:"28,31"`
	Latitude       string `fixed:"33,41"`
	Longitude      string `fixed:"42,51"`
	Elevation      string `fixed:"67,71"`
}

// Parse reads ARINC 424 records from r and inserts every recognized
// record into db. Diagnostics describes every malformed record it skipped
// and why; records it does not recognize are skipped without one. It
// never aborts the scan.
func Parse(r io.Reader, db *nd.DB) *util.Diagnostics {
	diags := &util.Diagnostics{}
	diags.Push("arinc424")
	defer diags.Pop()

	db.BeginParse()

	airways := make(map[string]map[string]nd.AirwayFix) // route -> seq -> fix

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(line) < 6 {
			continue
		}

		var h header
		if err := fixedwidth.Unmarshal([]byte(line), &h); err != nil {
			diags.Addf("line %d: %v", lineNo, err)
			continue
		}
		if h.RecordType != "S" {
			continue
		}

		switch h.SectionCode {
		case "D":
			parseNavaid(line, db, diags, lineNo)
		case "E":
			parseEnroute(line, db, airways, diags, lineNo)
		case "P":
			parseAirport(line, db, diags, lineNo)
		default:
			// Unrecognized section (procedures, airspace, etc. are out of
			// scope here): silently skipped.
		}
	}
	if err := scanner.Err(); err != nil {
		diags.Addf("scan error: %v", err)
	}

	flushAirways(airways, db)

	return diags
}

func parseNavaid(line string, db *nd.DB, diags *util.Diagnostics, lineNo int) {
	var rec navaidRecord
	if err := fixedwidth.Unmarshal([]byte(line), &rec); err != nil {
		diags.Addf("line %d: navaid record: %v", lineNo, err)
		return
	}
	id := strings.TrimSpace(rec.Id)
	if len(id) < 3 {
		return
	}

	lat, lon := rec.VORLatitude, rec.VORLongitude
	if strings.TrimSpace(lat) == "" {
		lat, lon = rec.DMELatitude, rec.DMELongitude
	}
	p, ok := decodeLatLong(lat, lon)
	if !ok {
		diags.Add(&fmserr.ParseMalformed{Line: lineNo, Column: 33, Reason: "malformed coordinate for navaid " + id})
		return
	}
	db.InsertFix(nd.Fix{Id: id, Location: p})
}

func parseEnroute(line string, db *nd.DB, airways map[string]map[string]nd.AirwayFix, diags *util.Diagnostics, lineNo int) {
	if len(line) < 7 {
		return
	}
	switch line[5] {
	case 'A':
		var rec enrouteWaypointRecord
		if err := fixedwidth.Unmarshal([]byte(line), &rec); err != nil {
			diags.Addf("line %d: enroute waypoint record: %v", lineNo, err)
			return
		}
		id := strings.TrimSpace(rec.Id)
		p, ok := decodeLatLong(rec.Latitude, rec.Longitude)
		if !ok {
			diags.Add(&fmserr.ParseMalformed{Line: lineNo, Column: 33, Reason: "malformed coordinate for fix " + id})
			return
		}
		db.InsertFix(nd.Fix{Id: id, Location: p})

	case 'R':
		var rec enrouteAirwayRecord
		if err := fixedwidth.Unmarshal([]byte(line), &rec); err != nil {
			diags.Addf("line %d: airway record: %v", lineNo, err)
			return
		}
		route := strings.TrimSpace(rec.RouteId)
		seq := strings.TrimSpace(rec.SequenceNumber)
		fix := strings.TrimSpace(rec.FixId)
		if route == "" || fix == "" {
			return
		}
		if airways[route] == nil {
			airways[route] = make(map[string]nd.AirwayFix)
		}
		airways[route][seq] = nd.AirwayFix{Fix: fix}

		if rec.DescriptionEnd == "E" {
			a := nd.Airway{Name: route}
			for _, s := range util.SortedMapKeys(airways[route]) {
				a.Fixes = append(a.Fixes, airways[route][s])
			}
			db.InsertAirway(a)
			delete(airways, route)
		}
	}
}

func parseAirport(line string, db *nd.DB, diags *util.Diagnostics, lineNo int) {
	if len(line) < 13 {
		return
	}
	switch line[12] {
	case 'A':
		var rec airportPrimaryRecord
		if err := fixedwidth.Unmarshal([]byte(line), &rec); err != nil {
			diags.Addf("line %d: airport primary record: %v", lineNo, err)
			return
		}
		icao := strings.TrimSpace(rec.Icao)
		p, ok := decodeLatLong(rec.Latitude, rec.Longitude)
		if !ok {
			diags.Add(&fmserr.ParseMalformed{Line: lineNo, Column: 33, Reason: "malformed coordinate for airport " + icao})
			return
		}
		elev, _ := strconv.Atoi(strings.TrimSpace(rec.Elevation))
		db.InsertAirport(nd.Airport{Id: icao, Location: p, Elevation: float64(elev)})

	case 'G':
		var rec airportRunwayRecord
		if err := fixedwidth.Unmarshal([]byte(line), &rec); err != nil {
			diags.Addf("line %d: runway record: %v", lineNo, err)
			return
		}
		if rec.Continuation != "0" && rec.Continuation != "1" {
			return
		}
		icao := strings.TrimSpace(rec.Icao)
		rwy := strings.TrimSpace(rec.RunwayId)
		rwy = strings.TrimPrefix(rwy, "RW")
		rwy = strings.TrimPrefix(rwy, "0")

		heading, headingErr := strconv.Atoi(strings.TrimSpace(rec.Heading))
		if headingErr != nil {
			// seaports and similar records carry no runway heading
			return
		}
		p, ok := decodeLatLong(rec.Latitude, rec.Longitude)
		if !ok {
			diags.Add(&fmserr.ParseMalformed{Line: lineNo, Column: 33, Reason: fmt.Sprintf("malformed coordinate for runway %s/%s", icao, rwy)})
			return
		}
		elev, _ := strconv.Atoi(strings.TrimSpace(rec.Elevation))

		db.InsertAirport(nd.Airport{
			Id: icao,
			Runways: []nd.Runway{{
				Id:        rwy,
				Heading:   float64(heading) / 10,
				Threshold: p,
				Elevation: float64(elev),
			}},
		})
	}
}

func flushAirways(wip map[string]map[string]nd.AirwayFix, db *nd.DB) {
	for route, seqs := range wip {
		a := nd.Airway{Name: route}
		for _, s := range util.SortedMapKeys(seqs) {
			a.Fixes = append(a.Fixes, seqs[s])
		}
		db.InsertAirway(a)
	}
}

// decodeLatLong decodes the packed ARINC 424 N|SDDMMSSss / E|WDDDMMSSss
// coordinate pair into a geographic point.
func decodeLatLong(lat, lon string) (geo.Point, bool) {
	if len(lat) != 9 || len(lon) != 10 {
		return geo.Point{}, false
	}

	latVal, ok1 := decodeDMS(lat[1:3], lat[3:5], lat[5:9])
	lonVal, ok2 := decodeDMS(lon[1:4], lon[4:6], lon[6:10])
	if !ok1 || !ok2 {
		return geo.Point{}, false
	}

	if lat[0] == 'S' {
		latVal = -latVal
	} else if lat[0] != 'N' {
		return geo.Point{}, false
	}
	if lon[0] == 'W' {
		lonVal = -lonVal
	} else if lon[0] != 'E' {
		return geo.Point{}, false
	}

	return geo.Point{Latitude: latVal, Longitude: lonVal}, true
}

func decodeDMS(d, m, s string) (float64, bool) {
	deg, err1 := strconv.Atoi(d)
	min, err2 := strconv.Atoi(m)
	sec, err3 := strconv.Atoi(s)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, false
	}
	return float64(deg) + float64(min)/60 + float64(sec)/100/3600, true
}
