// Package catfile reads and writes the catalog's structured storage
// format: a line-oriented, schema-versioned text file with one
// hex-key/name pair per line, in catalog order.
//
// Example:
//
//	# colorvane catalog v1
//	dc143c	Crimson
//	008080	Teal
//
// The format is deliberately decoupled from the generated Go artifact;
// rendering that artifact is a separate step (see the gen package).
package catfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/colorvane/colorvane/internal/catalog"
)

// Header identifies the current schema version. Decoders reject files
// whose first line does not match.
const Header = "# colorvane catalog v1"

// ErrBadHeader is returned when a file does not start with a recognized
// schema header.
var ErrBadHeader = errors.New("unrecognized catalog header")

// Encode writes the catalog in storage form.
func Encode(w io.Writer, c catalog.Catalog) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Header)
	for _, e := range c {
		fmt.Fprintf(bw, "%s\t%s\n", e.HexKey(), e.Name)
	}
	return bw.Flush()
}

// Decode parses a stored catalog. Blank lines and comment lines after the
// header are ignored. Stored names are taken verbatim; only the hex key is
// validated, so a written catalog always round-trips exactly.
func Decode(r io.Reader) (catalog.Catalog, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, ErrBadHeader
	}
	if strings.TrimSpace(sc.Text()) != Header {
		return nil, fmt.Errorf("%w: %q", ErrBadHeader, sc.Text())
	}

	// Identity name policy: display names were canonicalized when the
	// entries were admitted.
	n := catalog.Normalizer{Name: func(s string) string { return s }}

	var c catalog.Catalog
	line := 1
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, name, ok := strings.Cut(text, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: expected hex<TAB>name, got %q", line, text)
		}
		entry, err := n.Normalize(name, key)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		c = append(c, entry)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and decodes the catalog file at path.
func Load(path string) (catalog.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Write encodes the catalog to a temporary file next to path and renames
// it into place, so a failed run never leaves a partial catalog behind.
func Write(path string, c catalog.Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, c); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
