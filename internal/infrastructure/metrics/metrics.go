package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the draft engine.
type Metrics struct {
	// Draft metrics
	DraftsCreated   prometheus.Counter
	DraftsDiscarded prometheus.Counter
	LineMutations   *prometheus.CounterVec
	Evaluations     *prometheus.CounterVec

	// Journal metrics
	JournalsPosted prometheus.Counter

	// Account metrics
	AccountsCreated prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		DraftsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "journaldraft_drafts_created_total",
			Help: "Total number of drafts opened",
		}),
		DraftsDiscarded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "journaldraft_drafts_discarded_total",
			Help: "Total number of drafts abandoned without posting",
		}),
		LineMutations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "journaldraft_line_mutations_total",
				Help: "Total number of line mutations by operation",
			},
			[]string{"op"},
		),
		Evaluations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "journaldraft_evaluations_total",
				Help: "Total number of balance evaluations by readiness verdict",
			},
			[]string{"readiness"},
		),
		JournalsPosted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "journaldraft_journals_posted_total",
			Help: "Total number of journals posted from ready drafts",
		}),
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "journaldraft_accounts_created_total",
			Help: "Total number of chart-of-accounts entries created",
		}),
	}
}
