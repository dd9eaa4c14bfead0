// pkg/openair/openair_test.go

package openair

import (
	"strings"
	"testing"
)

const sample = `* sample restricted area
AC R
AN EDR123 TEST AREA
AH FL100
AL GND
DP 53:30:00 N 010:00:00 E
DP 53:35:00 N 010:05:00 E
DP 53:32:00 N 010:10:00 E
AC D
AN TEST CTR
AH 2500ft MSL
AL GND
DP 53:00:00 N 009:50:00 E
DP 53:05:00 N 009:55:00 E
`

func TestParseTwoAirspaces(t *testing.T) {
	spaces, diags := Parse(strings.NewReader(sample))
	if diags.HaveErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Messages())
	}
	if len(spaces) != 2 {
		t.Fatalf("expected 2 airspaces, got %d", len(spaces))
	}
	if spaces[0].Name != "EDR123 TEST AREA" || spaces[0].Class != "R" {
		t.Errorf("unexpected first airspace: %+v", spaces[0])
	}
	if len(spaces[0].Points) != 3 {
		t.Errorf("expected 3 vertices, got %d", len(spaces[0].Points))
	}
	if spaces[1].Name != "TEST CTR" {
		t.Errorf("unexpected second airspace: %+v", spaces[1])
	}
}

func TestParseCommentsStripped(t *testing.T) {
	spaces, diags := Parse(strings.NewReader("AC R\nAN X\n* a comment line\nDP 53:00:00 N 010:00:00 E * trailing comment\n"))
	if diags.HaveErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Messages())
	}
	if len(spaces) != 1 || len(spaces[0].Points) != 1 {
		t.Fatalf("unexpected parse result: %+v", spaces)
	}
}

func TestParseDPWithoutACIsDiagnosed(t *testing.T) {
	_, diags := Parse(strings.NewReader("DP 53:00:00 N 010:00:00 E\n"))
	if !diags.HaveErrors() {
		t.Error("expected a diagnostic for a vertex outside any AC block")
	}
}

func TestParseMalformedCoordinate(t *testing.T) {
	_, diags := Parse(strings.NewReader("AC R\nDP garbage\n"))
	if !diags.HaveErrors() {
		t.Error("expected a diagnostic for a malformed coordinate")
	}
}
