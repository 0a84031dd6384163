package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/colorvane/colorvane/internal/catalog"
	"github.com/colorvane/colorvane/internal/catfile"
	"github.com/colorvane/colorvane/internal/gen"
	"github.com/colorvane/colorvane/internal/runlog"
)

// Fetcher supplies external color records. provider.Client is the real
// implementation; tests substitute their own.
type Fetcher interface {
	Fetch(ctx context.Context) ([]catalog.Record, int, error)
}

// UpdateOptions configures a catalog update run.
type UpdateOptions struct {
	CatalogPath  string
	ArtifactPath string
	Fetcher      Fetcher
	Normalizer   catalog.Normalizer
	DryRun       bool // Report without writing anything
	NoArtifact   bool // Write the catalog file but skip artifact rendering
	Stdout       io.Writer
}

// Updater runs the fetch/merge/regenerate pipeline.
type Updater struct {
	opts UpdateOptions
}

// NewUpdater creates an updater.
func NewUpdater(opts UpdateOptions) *Updater {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	return &Updater{opts: opts}
}

// Run executes one full update: load existing entries, fetch external
// records, merge, and rewrite catalog and artifact. A failed fetch
// degrades to a merge with zero external records; unreadable or
// unwritable files are fatal.
func (u *Updater) Run(ctx context.Context) (catalog.Catalog, catalog.Report, error) {
	existing, err := u.loadExisting()
	if err != nil {
		return nil, catalog.Report{}, err
	}
	fmt.Fprintf(u.opts.Stdout, "Found %d existing entries.\n", len(existing))

	var records []catalog.Record
	if u.opts.Fetcher != nil {
		fetched, raw, err := u.opts.Fetcher.Fetch(ctx)
		if err != nil {
			fmt.Fprintf(u.opts.Stdout, "Warning: fetch failed (%v); proceeding with existing entries only.\n", err)
			runlog.Log.Warn("Dataset fetch failed", "error", err)
		} else {
			records = fetched
			fmt.Fprintf(u.opts.Stdout, "Fetched %d items (raw).\n", raw)
			fmt.Fprintf(u.opts.Stdout, "Parsed %d valid records.\n", len(records))
		}
	}

	merged, report := catalog.Merge(existing, records, u.opts.Normalizer)

	if runlog.Log.Enabled() {
		for _, rej := range report.Rejected {
			runlog.Log.Debug("Record rejected", "name", rej.Name, "hex", rej.Hex, "reason", rej.Reason)
		}
	}
	fmt.Fprintf(u.opts.Stdout, "Added %d new entries.\n", report.Added)
	if len(report.Rejected) > 0 {
		fmt.Fprintf(u.opts.Stdout, "Rejected %d records (%s).\n", len(report.Rejected), reasonSummary(report))
	}
	fmt.Fprintf(u.opts.Stdout, "Total: %d entries.\n", len(merged))

	if u.opts.DryRun {
		fmt.Fprintln(u.opts.Stdout, "Dry run; nothing written.")
		return merged, report, nil
	}

	if err := catfile.Write(u.opts.CatalogPath, merged); err != nil {
		return nil, report, fmt.Errorf("write catalog: %w", err)
	}
	fmt.Fprintf(u.opts.Stdout, "Catalog written to %s.\n", u.opts.CatalogPath)

	if !u.opts.NoArtifact {
		if err := gen.WriteFile(u.opts.ArtifactPath, merged); err != nil {
			return nil, report, fmt.Errorf("write artifact: %w", err)
		}
		fmt.Fprintf(u.opts.Stdout, "Artifact written to %s.\n", u.opts.ArtifactPath)
	}

	return merged, report, nil
}

// loadExisting reads the catalog file, falling back to extracting entries
// from a previously generated artifact when only that exists.
func (u *Updater) loadExisting() ([]catalog.Entry, error) {
	existing, err := catfile.Load(u.opts.CatalogPath)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	extracted, aerr := gen.ExtractFile(u.opts.ArtifactPath)
	if aerr != nil {
		return nil, fmt.Errorf("no catalog at %s and no artifact at %s; run 'colorvane seed' first",
			u.opts.CatalogPath, u.opts.ArtifactPath)
	}
	runlog.Log.Info("Catalog file missing, extracted entries from artifact",
		"artifact", u.opts.ArtifactPath, "entries", len(extracted))
	return extracted, nil
}

func reasonSummary(report catalog.Report) string {
	counts := report.ByReason()
	reasons := make([]string, 0, len(counts))
	for reason := range counts {
		reasons = append(reasons, string(reason))
	}
	sort.Strings(reasons)

	out := ""
	for i, reason := range reasons {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s=%d", reason, counts[catalog.RejectReason(reason)])
	}
	return out
}
