package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
catalog_path = "/tmp/colors.catalog"
source_url = "https://example.test/colors.json"
fetch_timeout = "5s"

[server]
host = "0.0.0.0"
port = 9000
`
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.CatalogPath != "/tmp/colors.catalog" {
		t.Errorf("CatalogPath = %q", cfg.CatalogPath)
	}
	if cfg.SourceURL != "https://example.test/colors.json" {
		t.Errorf("SourceURL = %q", cfg.SourceURL)
	}
	if cfg.FetchTimeoutDuration() != 5*time.Second {
		t.Errorf("FetchTimeoutDuration = %v, want 5s", cfg.FetchTimeoutDuration())
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 9000 {
		t.Errorf("Server = %+v", cfg.Server)
	}
	// Unset fields keep their defaults.
	if cfg.ArtifactPath != Default().ArtifactPath {
		t.Errorf("ArtifactPath = %q, want default", cfg.ArtifactPath)
	}
	if cfg.NameLanguage != "en" {
		t.Errorf("NameLanguage = %q, want en", cfg.NameLanguage)
	}
}

func TestLoadFileBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile on invalid TOML succeeded, want error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	// UserConfigDir honors XDG_CONFIG_HOME on linux.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := Default()
	want.SourceURL = "https://example.test/colors.json"
	want.Server.Port = 9123

	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round trip changed config:\nsaved  %+v\nloaded %+v", want, got)
	}
}

func TestFetchTimeoutDefault(t *testing.T) {
	var cfg Config
	if cfg.FetchTimeoutDuration() != 30*time.Second {
		t.Errorf("FetchTimeoutDuration = %v, want 30s", cfg.FetchTimeoutDuration())
	}

	cfg.FetchTimeout = "garbage"
	if cfg.FetchTimeoutDuration() != 30*time.Second {
		t.Errorf("unparseable timeout FetchTimeoutDuration = %v, want 30s", cfg.FetchTimeoutDuration())
	}
}
