package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RowsParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "climateedu_rows_parsed_total",
			Help: "Total dataset CSV rows parsed",
		},
		[]string{"dataset"},
	)

	RowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "climateedu_rows_skipped_total",
			Help: "Total dataset CSV rows skipped",
		},
		[]string{"dataset", "reason"},
	)

	DatasetFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "climateedu_dataset_fetches_total",
			Help: "Total dataset download attempts",
		},
		[]string{"scheme", "status"},
	)

	RegressionsComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "climateedu_regressions_total",
			Help: "Total linear regressions computed",
		},
	)
)
