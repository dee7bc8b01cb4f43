package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	leadsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_submitted_total",
			Help: "Total number of stored lead submissions",
		},
		[]string{"category", "source"},
	)

	leadsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_rejected_total",
			Help: "Total number of lead submissions that were not stored",
		},
		[]string{"reason"},
	)

	leadScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lead_score",
			Help:    "Distribution of lead scores",
			Buckets: prometheus.LinearBuckets(0, 3, 7),
		},
	)
)
