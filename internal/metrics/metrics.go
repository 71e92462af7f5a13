package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	ConnectionsOpen prometheus.Gauge
	MessagesRelayed prometheus.Counter
	EventsDropped   prometheus.Counter
}

// New creates and registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ConnectionsOpen: factory.NewGauge(prometheus.GaugeOpts{
			Name: "chatrelay_connections_open",
			Help: "Number of currently open WebSocket connections.",
		}),
		MessagesRelayed: factory.NewCounter(prometheus.CounterOpts{
			Name: "chatrelay_messages_relayed_total",
			Help: "Chat messages broadcast to a room.",
		}),
		EventsDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "chatrelay_events_dropped_total",
			Help: "Outbound events dropped because a client's buffer was full.",
		}),
	}
}

// Handler exposes the registry for a /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
