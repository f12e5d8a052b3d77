package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service holds the engine's Prometheus collectors. A nil *Service is a
// no-op, so wiring metrics stays optional.
type Service struct {
	recomputeRuns     *prometheus.CounterVec
	recomputeDuration *prometheus.HistogramVec
	tableReads        *prometheus.CounterVec
}

// NewHandler returns the scrape endpoint handler for the given gatherer,
// defaulting to the global one.
func NewHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the collectors. If no registerer is
// provided it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		recomputeRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "records_recompute_runs_total",
			Help: "The total number of recompute runs by operation and outcome.",
		}, []string{"operation", "status"}),
		recomputeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "records_recompute_duration_seconds",
			Help:    "The duration of recompute runs.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"operation"}),
		tableReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "records_table_reads_total",
			Help: "The total number of league table reads by table kind.",
		}, []string{"kind"}),
	}

	reg.MustRegister(
		s.recomputeRuns,
		s.recomputeDuration,
		s.tableReads,
	)

	return s
}

func (s *Service) ObserveRecompute(operation, status string, seconds float64) {
	if s == nil {
		return
	}
	s.recomputeRuns.WithLabelValues(operation, status).Inc()
	s.recomputeDuration.WithLabelValues(operation).Observe(seconds)
}

func (s *Service) IncTableRead(kind string) {
	if s == nil {
		return
	}
	s.tableReads.WithLabelValues(kind).Inc()
}
