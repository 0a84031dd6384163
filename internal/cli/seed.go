package cli

import (
	"fmt"

	"golang.org/x/image/colornames"

	"github.com/colorvane/colorvane/internal/catalog"
)

// SeedCatalog builds a starter catalog from the SVG 1.1 color names,
// in their canonical (alphabetical) order. The set contains aliases that
// share a hex value (aqua/cyan, the gray/grey pairs); the merge keeps the
// first of each and reports the rest, so the result satisfies the catalog
// invariants.
func SeedCatalog(n catalog.Normalizer) (catalog.Catalog, catalog.Report) {
	records := make([]catalog.Record, 0, len(colornames.Names))
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		records = append(records, catalog.Record{
			Name: name,
			Hex:  fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
		})
	}
	return catalog.Merge(nil, records, n)
}
