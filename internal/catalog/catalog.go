// Package catalog implements the curated color catalog: normalization of
// raw color records, the merge/dedup pipeline, and nearest-name lookup.
package catalog

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Entry is a single named color. Entries are immutable once admitted to a
// catalog; the uint8 fields are the source of truth and the hex form is
// always derived from them.
type Entry struct {
	Name string `json:"name"`
	R    uint8  `json:"r"`
	G    uint8  `json:"g"`
	B    uint8  `json:"b"`
}

// HexKey returns the bare lowercase 6-digit hex string for the entry.
// This is the canonical dedup key.
func (e Entry) HexKey() string {
	return fmt.Sprintf("%02x%02x%02x", e.R, e.G, e.B)
}

// Hex returns the display form "#rrggbb".
func (e Entry) Hex() string {
	return "#" + e.HexKey()
}

// Record is a raw (name, hex) pair from an external source, prior to
// normalization.
type Record struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Catalog is an ordered sequence of entries. Order is the output order:
// existing entries first, then admitted external entries in source order.
type Catalog []Entry

// Nearest returns the entry closest to (r, g, b) by Euclidean distance in
// RGB space. Ties go to the earlier entry. The second return is false only
// for an empty catalog.
func (c Catalog) Nearest(r, g, b uint8) (Entry, bool) {
	minDist := math.MaxFloat64
	var closest Entry
	found := false
	for _, e := range c {
		d := distance(r, g, b, e.R, e.G, e.B)
		if d < minDist {
			minDist = d
			closest = e
			found = true
		}
	}
	return closest, found
}

// Name returns the name of the nearest entry, or "Unknown" if the catalog
// is empty.
func (c Catalog) Name(r, g, b uint8) string {
	e, ok := c.Nearest(r, g, b)
	if !ok {
		return "Unknown"
	}
	return e.Name
}

// Lookup returns the entry with the given hex key, if present. The key may
// carry a leading '#' and is matched case-insensitively.
func (c Catalog) Lookup(hexKey string) (Entry, bool) {
	key := strings.ToLower(strings.TrimPrefix(hexKey, "#"))
	for _, e := range c {
		if e.HexKey() == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Validate checks the catalog invariants: unique hex keys, unique
// case-insensitive names, non-empty names. It returns the first violation.
func (c Catalog) Validate() error {
	seenHex := make(map[string]string, len(c))
	seenName := make(map[string]string, len(c))
	for _, e := range c {
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("entry %s: empty name", e.Hex())
		}
		if strings.ContainsFunc(e.Name, unicode.IsControl) {
			return fmt.Errorf("entry %s: control character in name %q", e.Hex(), e.Name)
		}
		key := e.HexKey()
		if prev, ok := seenHex[key]; ok {
			return fmt.Errorf("duplicate hex %s: %q and %q", e.Hex(), prev, e.Name)
		}
		seenHex[key] = e.Name
		lower := strings.ToLower(e.Name)
		if prev, ok := seenName[lower]; ok {
			return fmt.Errorf("duplicate name %q: %s and %s", e.Name, prev, e.Hex())
		}
		seenName[lower] = e.Hex()
	}
	return nil
}

func distance(r1, g1, b1, r2, g2, b2 uint8) float64 {
	dr := float64(r2) - float64(r1)
	dg := float64(g2) - float64(g1)
	db := float64(b2) - float64(b1)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
