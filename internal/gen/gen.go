// Package gen renders the catalog as a generated, self-contained Go
// source file (the colornamer package) and extracts entries back out of
// previously generated files.
//
// The rendered file is scaffolding around a single insertion point: one
// rgb("Name", r, g, b) line per entry. Extraction scans for that exact
// construction pattern, so any file this package writes can be read back.
package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/colorvane/colorvane/internal/catalog"
)

const header = `// Code generated by colorvane; DO NOT EDIT.

// Package colornamer maps RGB colors to natural-language names using a
// curated, deduplicated catalog of named colors.
package colornamer

import "math"

// namedColor is one catalog entry.
type namedColor struct {
	name    string
	r, g, b uint8
}

func rgb(name string, r, g, b uint8) namedColor {
	return namedColor{name: name, r: r, g: g, b: b}
}

// table is the curated color list, existing entries first.
var table = []namedColor{
`

const footer = `}

// Name returns the closest natural-language name for the given color,
// by Euclidean distance in RGB space. It returns "Unknown" only when the
// table is empty.
func Name(r, g, b uint8) string {
	minDist := math.MaxFloat64
	closest := "Unknown"
	for _, c := range table {
		d := dist(r, g, b, c.r, c.g, c.b)
		if d < minDist {
			minDist = d
			closest = c.name
		}
	}
	return closest
}

func dist(r1, g1, b1, r2, g2, b2 uint8) float64 {
	dr := float64(r2) - float64(r1)
	dg := float64(g2) - float64(g1)
	db := float64(b2) - float64(b1)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
`

// entryPattern matches one rgb(...) construction: a quoted name (escapes
// allowed) and three decimal integers, with arbitrary whitespace.
var entryPattern = regexp.MustCompile(`rgb\s*\(\s*"((?:[^"\\]|\\.)*)"\s*,\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)`)

var nameEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

var nameUnescaper = strings.NewReplacer(`\\`, `\`, `\"`, `"`)

// Render serializes the catalog into the full generated-file text, one
// entry line per catalog entry, in order.
func Render(c catalog.Catalog) string {
	var sb strings.Builder
	sb.WriteString(header)
	for _, e := range c {
		fmt.Fprintf(&sb, "\trgb(\"%s\", %d, %d, %d),\n", nameEscaper.Replace(e.Name), e.R, e.G, e.B)
	}
	sb.WriteString(footer)
	return sb.String()
}

// Extract scans generated-file text for entry constructions, in text
// order. Matches whose integer literals exceed 255 are skipped; range is
// otherwise guaranteed by the renderer.
func Extract(text string) catalog.Catalog {
	var c catalog.Catalog
	for _, m := range entryPattern.FindAllStringSubmatch(text, -1) {
		var rgb [3]uint8
		ok := true
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(m[2+i], 10, 8)
			if err != nil {
				ok = false
				break
			}
			rgb[i] = uint8(v)
		}
		if !ok {
			continue
		}
		c = append(c, catalog.Entry{
			Name: nameUnescaper.Replace(m[1]),
			R:    rgb[0],
			G:    rgb[1],
			B:    rgb[2],
		})
	}
	return c
}

// ExtractFile extracts entries from the generated file at path.
func ExtractFile(path string) (catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Extract(string(data)), nil
}

// WriteFile renders the catalog and writes the artifact atomically:
// temp file in the target directory, then rename.
func WriteFile(path string, c catalog.Catalog) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(Render(c)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
