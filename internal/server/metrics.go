package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "colorvane",
		Subsystem: "server",
		Name:      "lookups_total",
		Help:      "Total nearest-name lookups, by outcome.",
	}, []string{"outcome"})

	catalogSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "colorvane",
		Subsystem: "server",
		Name:      "catalog_size",
		Help:      "Number of entries in the loaded catalog.",
	})

	catalogReloads = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "colorvane",
		Subsystem: "server",
		Name:      "catalog_reloads_total",
		Help:      "Total successful catalog reloads from disk.",
	})
)
