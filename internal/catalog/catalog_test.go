package catalog

import "testing"

func TestEntryHex(t *testing.T) {
	e := Entry{Name: "Crimson", R: 220, G: 20, B: 60}
	if got := e.HexKey(); got != "dc143c" {
		t.Errorf("HexKey = %q, want %q", got, "dc143c")
	}
	if got := e.Hex(); got != "#dc143c" {
		t.Errorf("Hex = %q, want %q", got, "#dc143c")
	}

	// Zero-padding on small components.
	e = Entry{Name: "Near Black", R: 0, G: 1, B: 15}
	if got := e.HexKey(); got != "00010f" {
		t.Errorf("HexKey = %q, want %q", got, "00010f")
	}
}

func TestCatalogName(t *testing.T) {
	c := Catalog{
		{Name: "Red", R: 255, G: 0, B: 0},
		{Name: "Black", R: 0, G: 0, B: 0},
	}

	tests := []struct {
		r, g, b uint8
		want    string
	}{
		{250, 10, 10, "Red"},
		{0, 0, 0, "Black"},
		{255, 0, 0, "Red"},
		{20, 20, 20, "Black"},
	}
	for _, tt := range tests {
		if got := c.Name(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("Name(%d, %d, %d) = %q, want %q", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestCatalogNameEmpty(t *testing.T) {
	var c Catalog
	if got := c.Name(120, 45, 200); got != "Unknown" {
		t.Errorf("Name on empty catalog = %q, want %q", got, "Unknown")
	}
	if _, ok := c.Nearest(0, 0, 0); ok {
		t.Error("Nearest on empty catalog reported a match")
	}
}

func TestCatalogNameTieBreaksToFirst(t *testing.T) {
	// Two entries equidistant from the query; the earlier one must win
	// because the comparison is strict.
	c := Catalog{
		{Name: "Low", R: 100, G: 0, B: 0},
		{Name: "High", R: 120, G: 0, B: 0},
	}
	if got := c.Name(110, 0, 0); got != "Low" {
		t.Errorf("tie broke to %q, want %q", got, "Low")
	}
}

func TestCatalogLookup(t *testing.T) {
	c := Catalog{{Name: "Crimson", R: 220, G: 20, B: 60}}

	for _, key := range []string{"dc143c", "#dc143c", "DC143C", "#DC143C"} {
		e, ok := c.Lookup(key)
		if !ok || e.Name != "Crimson" {
			t.Errorf("Lookup(%q) = %+v, %v; want Crimson", key, e, ok)
		}
	}
	if _, ok := c.Lookup("000000"); ok {
		t.Error("Lookup found an entry that is not in the catalog")
	}
}

func TestCatalogValidate(t *testing.T) {
	valid := Catalog{
		{Name: "Red", R: 255, G: 0, B: 0},
		{Name: "Green", R: 0, G: 255, B: 0},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid catalog rejected: %v", err)
	}

	dupHex := Catalog{
		{Name: "Red", R: 255, G: 0, B: 0},
		{Name: "Cherry", R: 255, G: 0, B: 0},
	}
	if err := dupHex.Validate(); err == nil {
		t.Error("duplicate hex not detected")
	}

	dupName := Catalog{
		{Name: "Red", R: 255, G: 0, B: 0},
		{Name: "RED", R: 200, G: 0, B: 0},
	}
	if err := dupName.Validate(); err == nil {
		t.Error("case-insensitive duplicate name not detected")
	}

	emptyName := Catalog{{Name: "  ", R: 1, G: 2, B: 3}}
	if err := emptyName.Validate(); err == nil {
		t.Error("empty name not detected")
	}

	controlName := Catalog{{Name: "Foo\nBar", R: 1, G: 2, B: 3}}
	if err := controlName.Validate(); err == nil {
		t.Error("control character in name not detected")
	}
}
