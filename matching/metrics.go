package matching

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records what a Matcher does. A nil *Metrics records nothing.
type Metrics struct {
	Matches   *prometheus.CounterVec
	Fragments prometheus.Histogram
	Cells     prometheus.Counter
	Duration  prometheus.Histogram
}

// Outcomes used for the "outcome" label of Metrics.Matches.
const (
	OutcomeFound    = "found"
	OutcomeEmpty    = "empty"
	OutcomeCanceled = "canceled"
)

// NewMetrics creates the matcher metrics and registers them with reg. If reg
// is nil, the metrics are created but not registered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "torsmatch",
			Name:      "matches_total",
			Help:      "Selection matches computed, by outcome.",
		}, []string{"outcome"}),
		Fragments: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "torsmatch",
			Name:      "fragments",
			Help:      "Fragments per selection match.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64},
		}),
		Cells: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "torsmatch",
			Name:      "distance_cells_total",
			Help:      "Residue pairs compared in distance matrices.",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "torsmatch",
			Name:      "match_duration_seconds",
			Help:      "Time spent matching two selections.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{
		m.Matches, m.Fragments, m.Cells, m.Duration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(outcome string, cells, frags int, seconds float64) {
	if m == nil {
		return
	}
	m.Matches.WithLabelValues(outcome).Inc()
	m.Cells.Add(float64(cells))
	m.Duration.Observe(seconds)
	if outcome != OutcomeCanceled {
		m.Fragments.Observe(float64(frags))
	}
}
