package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	GraphQLRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smellview_graphql_requests_total",
		Help: "Total number of GraphQL operations sent to the backend.",
	}, []string{"operation", "outcome"})

	GraphQLRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "smellview_graphql_request_seconds",
		Help:    "Round-trip time of a GraphQL operation.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	DuplicateSmellsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smellview_duplicate_smells_dropped_total",
		Help: "Total number of bad smells removed by snippet deduplication.",
	})

	SmellCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smellview_smell_cache_total",
		Help: "Bad-smell cache lookups by result.",
	}, []string{"result"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smellview_http_requests_total",
		Help: "Dashboard API requests by route pattern and status code.",
	}, []string{"route", "code"})
)
