package obs

import (
	"time"

	"github.com/hance08/txengine/internal/ledger"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters of a single run. It uses its own registry so
// repeated runs in one process never collide.
type Metrics struct {
	registry     *prometheus.Registry
	transactions *prometheus.CounterVec
	batches      prometheus.Counter
	accounts     *prometheus.GaugeVec
	duration     prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transactions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txengine_transactions_total",
				Help: "Transaction records processed, by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		batches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "txengine_batches_total",
			Help: "Batches handed to the engine.",
		}),
		accounts: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "txengine_accounts",
				Help: "Accounts at the end of the run, by state.",
			},
			[]string{"state"},
		),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "txengine_run_duration_seconds",
			Help: "Wall time of the last run.",
		}),
	}

	m.registry.MustRegister(m.transactions, m.batches, m.accounts, m.duration)

	return m
}

// ObserveBatch records the tally of one Engine.Process call.
func (m *Metrics) ObserveBatch(stats ledger.Stats) {
	m.batches.Inc()
	for key, n := range stats.Counts {
		m.transactions.WithLabelValues(key.Kind.String(), key.Outcome.String()).Add(float64(n))
	}
}

func (m *Metrics) ObserveAccounts(active, locked int) {
	m.accounts.WithLabelValues("active").Set(float64(active))
	m.accounts.WithLabelValues("locked").Set(float64(locked))
}

func (m *Metrics) ObserveDuration(d time.Duration) {
	m.duration.Set(d.Seconds())
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
