package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Hot search metrics
	HotSearchesAdded *prometheus.CounterVec
	HotSearchCount   prometheus.Gauge

	// Purchase metrics
	RankPurchases  *prometheus.CounterVec
	PurchaseAmount prometheus.Histogram

	// Vote metrics
	VotesApplied *prometheus.CounterVec
	VoteRequests *prometheus.CounterVec

	// Request metrics
	RequestErrors *prometheus.CounterVec
}

// New creates all metrics and registers them on reg. A nil reg registers on
// the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		HotSearchesAdded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hotsearch_entries_added_total",
				Help: "Total number of hot searches added",
			},
			[]string{"kind"}, // regular, boosted
		),
		HotSearchCount: factory.NewGauge(prometheus.GaugeOpts{
			Name: "hotsearch_entries",
			Help: "Current number of hot searches on the list",
		}),
		RankPurchases: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hotsearch_rank_purchases_total",
				Help: "Total number of rank purchases by outcome",
			},
			[]string{"outcome"},
		),
		PurchaseAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "hotsearch_purchase_amount",
			Help:    "Amounts of successful rank purchases",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		}),
		VotesApplied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hotsearch_votes_applied_total",
				Help: "Total number of votes credited to hot searches",
			},
			[]string{"kind"},
		),
		VoteRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hotsearch_vote_requests_total",
				Help: "Total number of vote requests by status",
			},
			[]string{"status"},
		),
		RequestErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hotsearch_request_errors_total",
				Help: "Total number of rejected requests",
			},
			[]string{"operation", "reason"},
		),
	}
}

// RecordAdd records a hot search being added.
func (m *Metrics) RecordAdd(boosted bool, count int) {
	m.HotSearchesAdded.WithLabelValues(entryKind(boosted)).Inc()
	m.HotSearchCount.Set(float64(count))
}

// RecordPurchase records a rank purchase attempt.
func (m *Metrics) RecordPurchase(outcome string, amount int64) {
	m.RankPurchases.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		m.PurchaseAmount.Observe(float64(amount))
	}
}

// RecordVotes records votes credited to a hot search.
func (m *Metrics) RecordVotes(boosted bool, credited int64) {
	m.VoteRequests.WithLabelValues("success").Inc()
	m.VotesApplied.WithLabelValues(entryKind(boosted)).Add(float64(credited))
}

// RecordError records a rejected request.
func (m *Metrics) RecordError(operation, reason string) {
	m.RequestErrors.WithLabelValues(operation, reason).Inc()
	if operation == "vote" {
		m.VoteRequests.WithLabelValues("error").Inc()
	}
}

func entryKind(boosted bool) string {
	if boosted {
		return "boosted"
	}
	return "regular"
}
