package catalog

import (
	"errors"
	"strings"
)

// RejectReason classifies why an external record was not admitted.
type RejectReason string

const (
	RejectInvalidHex    RejectReason = "invalid_hex"
	RejectEmptyName     RejectReason = "empty_name"
	RejectInvalidName   RejectReason = "invalid_name"
	RejectDuplicateHex  RejectReason = "duplicate_hex"
	RejectDuplicateName RejectReason = "duplicate_name"
)

// Rejection records one external record that was dropped during a merge,
// with the raw values as supplied by the source.
type Rejection struct {
	Name   string       `json:"name"`
	Hex    string       `json:"hex"`
	Reason RejectReason `json:"reason"`
}

// Report summarizes a merge: how many records were admitted and an
// auditable list of every record that was not.
type Report struct {
	Added    int         `json:"added"`
	Rejected []Rejection `json:"rejected,omitempty"`
}

// ByReason tallies rejections per reason.
func (r Report) ByReason() map[RejectReason]int {
	counts := make(map[RejectReason]int)
	for _, rej := range r.Rejected {
		counts[rej.Reason]++
	}
	return counts
}

// Merge combines existing entries with external records into a fresh
// catalog. Existing entries are kept verbatim, in order, and always win
// conflicts on hex key or case-insensitive name. External records are
// normalized and admitted in source order, first seen wins. Records with a
// missing name or hex are skipped silently; all other drops are recorded
// in the report.
//
// Merge is pure and reentrant: it never mutates its inputs and builds all
// state fresh per call.
func Merge(existing []Entry, records []Record, n Normalizer) (Catalog, Report) {
	seenHex := make(map[string]struct{}, len(existing)+len(records))
	seenName := make(map[string]struct{}, len(existing)+len(records))

	out := make(Catalog, 0, len(existing)+len(records))
	for _, e := range existing {
		out = append(out, e)
		seenHex[e.HexKey()] = struct{}{}
		seenName[strings.ToLower(e.Name)] = struct{}{}
	}

	var report Report
	for _, rec := range records {
		if rec.Name == "" || rec.Hex == "" {
			continue
		}

		entry, err := n.Normalize(rec.Name, rec.Hex)
		if err != nil {
			reason := RejectInvalidHex
			switch {
			case errors.Is(err, ErrEmptyName):
				reason = RejectEmptyName
			case errors.Is(err, ErrInvalidName):
				reason = RejectInvalidName
			}
			report.Rejected = append(report.Rejected, Rejection{Name: rec.Name, Hex: rec.Hex, Reason: reason})
			continue
		}

		key := entry.HexKey()
		if _, dup := seenHex[key]; dup {
			report.Rejected = append(report.Rejected, Rejection{Name: rec.Name, Hex: rec.Hex, Reason: RejectDuplicateHex})
			continue
		}
		lower := strings.ToLower(entry.Name)
		if _, dup := seenName[lower]; dup {
			report.Rejected = append(report.Rejected, Rejection{Name: rec.Name, Hex: rec.Hex, Reason: RejectDuplicateName})
			continue
		}

		out = append(out, entry)
		seenHex[key] = struct{}{}
		seenName[lower] = struct{}{}
		report.Added++
	}

	return out, report
}
