// Package metrics defines the custom Prometheus collectors for the
// supermarket API. It is the single source of truth for metric names,
// labels and help strings.
//
// Collectors are registered on the Registerer passed to New so that tests can
// use an isolated prometheus.NewRegistry(). A nil *Metrics is valid and
// records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "supermercado"

// Metrics groups every domain collector.
type Metrics struct {
	// RegistrationsTotal counts account creations.
	// Label:
	//   - role: "ADMIN" or "BALCONISTA"
	RegistrationsTotal *prometheus.CounterVec

	// LoginsTotal counts login attempts.
	// Label:
	//   - result: "success", "not_found", "bad_password", "throttled"
	LoginsTotal *prometheus.CounterVec

	// SalesRecordedTotal counts sales stored by clerks.
	SalesRecordedTotal prometheus.Counter

	// SaleAmount observes the computed total of each recorded sale.
	SaleAmount prometheus.Histogram

	// ClerksDeletedTotal counts clerk accounts removed by administrators.
	ClerksDeletedTotal prometheus.Counter
}

// New creates and registers all collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RegistrationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "registrations_total",
				Help:      "Total number of accounts created, by role.",
			},
			[]string{"role"},
		),
		LoginsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "logins_total",
				Help:      "Total number of login attempts, by result.",
			},
			[]string{"result"},
		),
		SalesRecordedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_recorded_total",
			Help:      "Total number of sales recorded.",
		}),
		SaleAmount: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sale_amount",
			Help:      "Distribution of recorded sale totals.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}),
		ClerksDeletedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clerks_deleted_total",
			Help:      "Total number of clerk accounts deleted.",
		}),
	}
}

func (m *Metrics) Registration(role string) {
	if m == nil {
		return
	}
	m.RegistrationsTotal.WithLabelValues(role).Inc()
}

func (m *Metrics) Login(result string) {
	if m == nil {
		return
	}
	m.LoginsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) SaleRecorded(total float64) {
	if m == nil {
		return
	}
	m.SalesRecordedTotal.Inc()
	m.SaleAmount.Observe(total)
}

func (m *Metrics) ClerkDeleted() {
	if m == nil {
		return
	}
	m.ClerksDeletedTotal.Inc()
}
