package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los contadores del gateway y de la reconciliación.
// Implementa httpclient.Recorder y reconcile.Recorder.
type Metrics struct {
	reg *prometheus.Registry

	// Llamadas al backend por método y resultado (ok, http_error, ...).
	RemoteRequests *prometheus.CounterVec

	// Mutaciones que quedaron solo en local, por operación.
	Fallbacks *prometheus.CounterVec

	// Lecturas que degradaron a vacío, por operación.
	DegradedReads *prometheus.CounterVec
}

// New registra todo en un registry propio (uno por proceso; tests crean el suyo).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		RemoteRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "petcare_remote_requests_total",
			Help: "Requests to the remote backend by method and outcome",
		}, []string{"method", "outcome"}),
		Fallbacks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "petcare_reconcile_fallbacks_total",
			Help: "Mutations applied locally only after a backend failure",
		}, []string{"operation"}),
		DegradedReads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "petcare_reconcile_degraded_reads_total",
			Help: "Bulk reads that returned an empty collection after a backend failure",
		}, []string{"operation"}),
	}
}

func (m *Metrics) ObserveRequest(method, outcome string) {
	if m != nil {
		m.RemoteRequests.WithLabelValues(method, outcome).Inc()
	}
}

func (m *Metrics) Fallback(op string) {
	if m != nil {
		m.Fallbacks.WithLabelValues(op).Inc()
	}
}

func (m *Metrics) ReadDegraded(op string) {
	if m != nil {
		m.DegradedReads.WithLabelValues(op).Inc()
	}
}

// Handler expone el registry para /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
