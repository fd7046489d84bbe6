package astar

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcomes used as the "outcome" label.
const (
	outcomeFound       = "found"
	outcomeUnreachable = "unreachable"
	outcomeAborted     = "aborted"
	outcomeError       = "error"
)

var (
	// searchesTotal counts finished sessions by outcome.
	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridpath_searches_total",
			Help: "Total number of path searches by outcome",
		},
		[]string{"outcome"},
	)

	// searchIterations observes expansions per finished session.
	searchIterations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gridpath_search_iterations",
			Help:    "Expansion steps executed per search",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	// searchPoolSize observes how many paths a session discovered.
	searchPoolSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gridpath_search_pool_size",
			Help:    "Paths discovered per search, start path included",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		},
	)
)
