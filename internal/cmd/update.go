package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/colorvane/colorvane/internal/cli"
	"github.com/colorvane/colorvane/internal/provider"
)

var (
	updateDryRun     bool
	updateNoFetch    bool
	updateNoArtifact bool
	updateSourceURL  string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch the external dataset, merge, and regenerate",
	Long: `Fetch the external color-name dataset, merge it into the existing
catalog, and regenerate both the catalog file and the Go artifact.

Existing entries always win conflicts: an external record whose hex or
name (case-insensitive) is already taken is rejected. A failed fetch is
not fatal; the run proceeds with existing entries only.

Examples:
  colorvane update                 # full refresh
  colorvane update --dry-run       # report without writing
  colorvane update --no-fetch      # re-merge and re-render local data only
  colorvane update --source URL    # alternate dataset`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&updateDryRun, "dry-run", false, "report what would change without writing")
	updateCmd.Flags().BoolVar(&updateNoFetch, "no-fetch", false, "skip the dataset fetch")
	updateCmd.Flags().BoolVar(&updateNoArtifact, "no-artifact", false, "skip regenerating the Go artifact")
	updateCmd.Flags().StringVar(&updateSourceURL, "source", "", "dataset URL (overrides config)")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var fetcher cli.Fetcher
	if !updateNoFetch {
		url := updateSourceURL
		if url == "" {
			url = cfg.SourceURL
		}
		client := provider.New(url)
		if cfg.UserAgent != "" {
			client.UserAgent = cfg.UserAgent
		}
		client.HTTPClient = &http.Client{Timeout: cfg.FetchTimeoutDuration()}
		fetcher = client
	}

	u := cli.NewUpdater(cli.UpdateOptions{
		CatalogPath:  cfg.CatalogPath,
		ArtifactPath: cfg.ArtifactPath,
		Fetcher:      fetcher,
		Normalizer:   normalizer(),
		DryRun:       updateDryRun,
		NoArtifact:   updateNoArtifact,
	})

	_, _, err := u.Run(ctx)
	return err
}
