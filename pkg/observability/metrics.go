// Package observability holds the Prometheus instruments exposed on
// /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search result sources, used as the "source" label value.
const (
	SourceRemote  = "remote"
	SourceOffline = "offline"
	SourceCache   = "cache"
)

var (
	// SearchesTotal counts searches by the source that produced the
	// returned result set.
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "locato_searches_total",
		Help: "Completed searches by result source.",
	}, []string{"source"})

	// RemoteFailuresTotal counts place search calls that failed or came
	// back empty and were served from the offline catalog instead.
	RemoteFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "locato_remote_search_failures_total",
		Help: "Place search calls that fell back to the offline catalog.",
	})
)
