package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/colorvane/colorvane/internal/catalog"
)

func TestDecodeRecordsListShape(t *testing.T) {
	body := `[
		{"name": "Crimson", "hex": "#dc143c"},
		{"name": "", "hex": "#000000"},
		{"name": "No Hex"},
		{"hex": "#ffffff"},
		{"name": "Teal", "hex": "#008080"}
	]`

	records, raw, err := DecodeRecords([]byte(body))
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	if raw != 5 {
		t.Errorf("raw count = %d, want 5", raw)
	}
	want := []catalog.Record{
		{Name: "Crimson", Hex: "#dc143c"},
		{Name: "Teal", Hex: "#008080"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("records = %+v, want %+v", records, want)
	}
}

func TestDecodeRecordsMapShape(t *testing.T) {
	body := `{"#dc143c": "Crimson", "#008080": "Teal", "#ffd700": "Gold"}`

	records, raw, err := DecodeRecords([]byte(body))
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	if raw != 3 {
		t.Errorf("raw count = %d, want 3", raw)
	}
	// Map-shaped input is sorted by hex for deterministic output.
	want := []catalog.Record{
		{Name: "Teal", Hex: "#008080"},
		{Name: "Crimson", Hex: "#dc143c"},
		{Name: "Gold", Hex: "#ffd700"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("records = %+v, want %+v", records, want)
	}
}

func TestDecodeRecordsRejectsOtherShapes(t *testing.T) {
	for _, body := range []string{
		`"just a string"`,
		`42`,
		`not json at all`,
	} {
		if _, _, err := DecodeRecords([]byte(body)); err == nil {
			t.Errorf("DecodeRecords(%q) succeeded, want error", body)
		}
	}
}

func TestFetch(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`[{"name": "Crimson", "hex": "#dc143c"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	records, raw, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if raw != 1 || len(records) != 1 || records[0].Name != "Crimson" {
		t.Errorf("Fetch = %+v (raw %d), want one Crimson record", records, raw)
	}
	if gotAgent != DefaultUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotAgent, DefaultUserAgent)
	}
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, _, err := New(srv.URL).Fetch(context.Background()); err == nil {
		t.Error("Fetch succeeded against a 503, want error")
	}
}

func TestFetchBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>definitely not json</html>`))
	}))
	defer srv.Close()

	if _, _, err := New(srv.URL).Fetch(context.Background()); err == nil {
		t.Error("Fetch succeeded on non-JSON body, want error")
	}
}

func TestNewDefaults(t *testing.T) {
	c := New("")
	if c.URL != DefaultURL {
		t.Errorf("URL = %q, want DefaultURL", c.URL)
	}
}
