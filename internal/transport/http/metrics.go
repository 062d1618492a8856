package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// resolutionsTotal counts pattern resolutions by kind and outcome
	resolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "momentum",
		Name:      "target_date_resolutions_total",
		Help:      "Number of target-date resolutions, by pattern kind and outcome.",
	}, []string{"kind", "outcome"})

	// volatilityRunsTotal counts volatility computations by outcome
	volatilityRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "momentum",
		Name:      "volatility_runs_total",
		Help:      "Number of volatility report computations, by outcome.",
	}, []string{"outcome"})
)
