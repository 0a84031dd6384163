package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalization failures. Callers that drop bad records match on these with
// errors.Is.
var (
	ErrInvalidHex  = errors.New("invalid hex color")
	ErrEmptyName   = errors.New("empty color name")
	ErrInvalidName = errors.New("control character in color name")
)

// NamePolicy canonicalizes a raw color name into its display form.
type NamePolicy func(string) string

// TitleCase returns a NamePolicy that title-cases names per the rules of
// the given language. This is the default policy; alternate catalogs can
// supply their own.
func TitleCase(tag language.Tag) NamePolicy {
	return func(s string) string {
		// Casers are stateful, so build one per call to keep the
		// policy safe for concurrent use.
		return cases.Title(tag).String(s)
	}
}

// Normalizer canonicalizes raw (name, hex) pairs into validated entries.
// The zero value uses English title casing.
type Normalizer struct {
	Name NamePolicy
}

// ParseHex parses a color string with an optional leading '#' and exactly
// six hex digits into its components.
func ParseHex(s string) (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		rgb[i] = uint8(v)
	}
	return rgb[0], rgb[1], rgb[2], nil
}

// Normalize validates rawHex (optionally '#'-prefixed, exactly six hex
// digits) and canonicalizes rawName, returning a validated entry. It is a
// pure function: no side effects, safe from any goroutine.
func (n Normalizer) Normalize(rawName, rawHex string) (Entry, error) {
	r, g, b, err := ParseHex(rawHex)
	if err != nil {
		return Entry{}, err
	}

	policy := n.Name
	if policy == nil {
		policy = TitleCase(language.English)
	}
	name := strings.TrimSpace(policy(rawName))
	if name == "" {
		return Entry{}, fmt.Errorf("%w: %q", ErrEmptyName, rawName)
	}
	// Names are stored one per line, tab-separated from the hex key, and
	// embedded in generated source. Control characters would break both.
	if strings.ContainsFunc(name, unicode.IsControl) {
		return Entry{}, fmt.Errorf("%w: %q", ErrInvalidName, rawName)
	}

	return Entry{Name: name, R: r, G: g, B: b}, nil
}
