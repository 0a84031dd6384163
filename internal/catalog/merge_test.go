package catalog

import (
	"reflect"
	"testing"
)

func TestMergeScenario(t *testing.T) {
	existing := []Entry{{Name: "Crimson", R: 220, G: 20, B: 60}}
	records := []Record{
		{Hex: "#dc143c", Name: "crimson"},
		{Hex: "#00ff00", Name: "Green"},
	}

	merged, report := Merge(existing, records, Normalizer{})

	want := Catalog{
		{Name: "Crimson", R: 220, G: 20, B: 60},
		{Name: "Green", R: 0, G: 255, B: 0},
	}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("merged = %+v, want %+v", merged, want)
	}
	if report.Added != 1 {
		t.Errorf("added = %d, want 1", report.Added)
	}
	if len(report.Rejected) != 1 || report.Rejected[0].Reason != RejectDuplicateHex {
		t.Errorf("rejections = %+v, want one duplicate_hex", report.Rejected)
	}
}

func TestMergeIdempotent(t *testing.T) {
	records := []Record{
		{Hex: "#dc143c", Name: "crimson"},
		{Hex: "#00ff00", Name: "green"},
		{Hex: "#8b4513", Name: "saddle brown"},
	}

	first, firstReport := Merge(nil, records, Normalizer{})
	if firstReport.Added != 3 {
		t.Fatalf("first run added = %d, want 3", firstReport.Added)
	}

	second, secondReport := Merge(first, records, Normalizer{})
	if secondReport.Added != 0 {
		t.Errorf("second run added = %d, want 0", secondReport.Added)
	}
	if !reflect.DeepEqual(second, first) {
		t.Errorf("second run changed the catalog:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestMergeExistingWinsConflicts(t *testing.T) {
	existing := []Entry{{Name: "Midnight", R: 25, G: 25, B: 112}}

	records := []Record{
		// Same hex, different name: existing values must survive untouched.
		{Hex: "#191970", Name: "navy shadow"},
		// Same name (case-insensitive), different hex: rejected.
		{Hex: "#101060", Name: "MIDNIGHT"},
	}

	merged, report := Merge(existing, records, Normalizer{})

	if len(merged) != 1 || merged[0] != existing[0] {
		t.Fatalf("merged = %+v, want existing entry only", merged)
	}
	if report.Added != 0 {
		t.Errorf("added = %d, want 0", report.Added)
	}
	reasons := report.ByReason()
	if reasons[RejectDuplicateHex] != 1 || reasons[RejectDuplicateName] != 1 {
		t.Errorf("rejection tally = %v, want one duplicate_hex and one duplicate_name", reasons)
	}
}

func TestMergeFirstSeenWinsAmongRecords(t *testing.T) {
	records := []Record{
		{Hex: "#ff0000", Name: "red"},
		{Hex: "#ff0000", Name: "cherry"},
		{Hex: "#ee0000", Name: "Red"},
	}

	merged, report := Merge(nil, records, Normalizer{})

	if len(merged) != 1 || merged[0].Name != "Red" || merged[0].HexKey() != "ff0000" {
		t.Fatalf("merged = %+v, want just Red ff0000", merged)
	}
	if report.Added != 1 || len(report.Rejected) != 2 {
		t.Errorf("report = %+v, want 1 added and 2 rejected", report)
	}
}

func TestMergeDropsMalformedRecords(t *testing.T) {
	records := []Record{
		{Hex: "", Name: "no hex"},
		{Hex: "#abcdef", Name: ""},
		{Hex: "#xyzxyz", Name: "bad hex"},
		{Hex: "#abcdef", Name: "   "},
		{Hex: "#00ced1", Name: "dark turquoise"},
	}

	merged, report := Merge(nil, records, Normalizer{})

	if len(merged) != 1 || merged[0].Name != "Dark Turquoise" {
		t.Fatalf("merged = %+v, want only Dark Turquoise", merged)
	}
	if report.Added != 1 {
		t.Errorf("added = %d, want 1", report.Added)
	}
	// Missing name or hex is dropped silently; invalid hex and
	// whitespace-only name are auditable rejections.
	reasons := report.ByReason()
	if reasons[RejectInvalidHex] != 1 || reasons[RejectEmptyName] != 1 || len(report.Rejected) != 2 {
		t.Errorf("rejections = %+v, want one invalid_hex and one empty_name", report.Rejected)
	}
}

func TestMergeRejectsControlCharacterNames(t *testing.T) {
	records := []Record{
		{Hex: "#123456", Name: "foo\nbar"},
		{Hex: "#654321", Name: "col\tumn"},
		{Hex: "#00ced1", Name: "dark turquoise"},
	}

	merged, report := Merge(nil, records, Normalizer{})

	if len(merged) != 1 || merged[0].Name != "Dark Turquoise" {
		t.Fatalf("merged = %+v, want only Dark Turquoise", merged)
	}
	if report.Added != 1 {
		t.Errorf("added = %d, want 1", report.Added)
	}
	if reasons := report.ByReason(); reasons[RejectInvalidName] != 2 {
		t.Errorf("rejections = %+v, want two invalid_name", report.Rejected)
	}
}

func TestMergeEmptyExternalLeavesCatalogUnchanged(t *testing.T) {
	existing := []Entry{
		{Name: "Black", R: 0, G: 0, B: 0},
		{Name: "White", R: 255, G: 255, B: 255},
	}

	merged, report := Merge(existing, nil, Normalizer{})

	if !reflect.DeepEqual(merged, Catalog(existing)) {
		t.Errorf("merged = %+v, want existing unchanged", merged)
	}
	if report.Added != 0 || len(report.Rejected) != 0 {
		t.Errorf("report = %+v, want empty", report)
	}
}

func TestMergeOutputSatisfiesInvariants(t *testing.T) {
	existing := []Entry{
		{Name: "Crimson", R: 220, G: 20, B: 60},
		{Name: "Teal", R: 0, G: 128, B: 128},
	}
	records := []Record{
		{Hex: "#008080", Name: "ocean teal"},
		{Hex: "#ffa500", Name: "orange"},
		{Hex: "#FFA500", Name: "amber"},
		{Hex: "#ff4500", Name: "ORANGE"},
		{Hex: "#4b0082", Name: "indigo"},
	}

	merged, _ := Merge(existing, records, Normalizer{})
	if err := merged.Validate(); err != nil {
		t.Errorf("merged catalog violates invariants: %v", err)
	}
}
