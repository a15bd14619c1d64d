package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "postlist"

const (
	ResultSuccess = "success"
	ResultFailure = "failure"

	SurfaceHTML = "html"
	SurfaceJSON = "json"
	SurfaceRPC  = "rpc"
)

// Metrics holds the service counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry
	loads    *prometheus.CounterVec
	views    *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Post collection loads by result.",
		}, []string{"result"}),
		views: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "views_total",
			Help:      "Rendered listing pages by surface.",
		}, []string{"surface"}),
	}

	m.registry.MustRegister(m.loads, m.views)

	return m
}

// ObserveLoad counts a finished load.
func (m *Metrics) ObserveLoad(err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	m.loads.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveView(surface string) {
	m.views.WithLabelValues(surface).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
