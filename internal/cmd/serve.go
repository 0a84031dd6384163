package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/colorvane/colorvane/internal/server"
)

var (
	serveHost    string
	servePort    int
	serveNoWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve nearest-name lookups over HTTP",
	Long: `Serve the catalog over a read-only REST API.

Endpoints:
  GET /api/v1/name?hex=rrggbb   nearest catalog name
  GET /api/v1/colors            full catalog
  GET /api/v1/colors/{hex}      exact entry
  GET /healthz                  liveness
  GET /metrics                  Prometheus metrics

The catalog file is watched and reloaded on change unless --no-watch is
given.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "bind host (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "bind port (overrides config)")
	serveCmd.Flags().BoolVar(&serveNoWatch, "no-watch", false, "do not reload the catalog on file changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	srvCfg := server.DefaultConfig()
	if cfg.Server.Host != "" {
		srvCfg.Host = cfg.Server.Host
	}
	if cfg.Server.Port != 0 {
		srvCfg.Port = cfg.Server.Port
	}
	if serveHost != "" {
		srvCfg.Host = serveHost
	}
	if servePort != 0 {
		srvCfg.Port = servePort
	}
	srvCfg.Watch = !serveNoWatch

	s, err := server.New(cfg.CatalogPath, srvCfg)
	if err != nil {
		return err
	}

	fmt.Printf("Serving %d colors on http://%s\n", len(s.Catalog()), s.Addr())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}
