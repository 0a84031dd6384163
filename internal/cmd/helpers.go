package cmd

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/language"

	"github.com/colorvane/colorvane/internal/catalog"
	"github.com/colorvane/colorvane/internal/catfile"
	"github.com/colorvane/colorvane/internal/gen"
	"github.com/colorvane/colorvane/internal/runlog"
)

// normalizer builds the configured name-canonicalization policy.
func normalizer() catalog.Normalizer {
	tag, err := language.Parse(cfg.NameLanguage)
	if err != nil {
		runlog.Log.Warn("Bad name_language in config, using English", "tag", cfg.NameLanguage)
		tag = language.English
	}
	return catalog.Normalizer{Name: catalog.TitleCase(tag)}
}

// loadCatalog loads the catalog for read-only commands: the catalog file
// if present, otherwise entries extracted from the generated artifact.
func loadCatalog() (catalog.Catalog, error) {
	c, err := catfile.Load(cfg.CatalogPath)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	c, aerr := gen.ExtractFile(cfg.ArtifactPath)
	if aerr != nil {
		return nil, fmt.Errorf("no catalog at %s; run 'colorvane seed' or 'colorvane update' first", cfg.CatalogPath)
	}
	return c, nil
}
