package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	DisputesFiledTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "disputes",
			Subsystem: "engine",
			Name:      "filed_total",
			Help:      "Disputes filed, labelled by the status the policy assigned",
		},
		[]string{"status"},
	)

	VerificationOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "disputes",
			Subsystem: "engine",
			Name:      "verification_outcomes_total",
			Help:      "Normalized verification oracle outcomes",
		},
		[]string{"outcome"},
	)

	ReconcilerRunsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "disputes",
			Subsystem: "reconciler",
			Name:      "runs_total",
			Help:      "Completed reconciliation scans",
		},
	)

	ReconcilerPromotionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "disputes",
			Subsystem: "reconciler",
			Name:      "promotions_total",
			Help:      "Manual-review disputes auto-approved after the dwell period",
		},
	)

	ReconcilerRecordFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "disputes",
			Subsystem: "reconciler",
			Name:      "record_failures_total",
			Help:      "Per-record failures skipped during reconciliation scans",
		},
	)
)

func init() {
	Registry.MustRegister(
		DisputesFiledTotal,
		VerificationOutcomesTotal,
		ReconcilerRunsTotal,
		ReconcilerPromotionsTotal,
		ReconcilerRecordFailuresTotal,
	)
}
