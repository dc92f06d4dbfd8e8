package sv2svc

import "github.com/prometheus/client_golang/prometheus"

// serverMetrics groups the observability-only Prometheus instruments this
// core exposes for a ServerService. None of these gate dispatch behavior;
// they exist purely so operators can graph client counts and setup
// outcomes, the way chimera-pool-core wires prometheus/client_golang
// throughout its service layer.
type serverMetrics struct {
	clients          prometheus.Gauge
	setupConnections *prometheus.CounterVec
	messagesSent     prometheus.Counter
}

func newServerMetrics(reg prometheus.Registerer) *serverMetrics {
	m := &serverMetrics{
		clients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sv2_server_clients",
			Help: "Number of currently connected clients.",
		}),
		setupConnections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sv2_server_setup_connections_total",
			Help: "SetupConnection outcomes handled by the server dispatcher.",
		}, []string{"outcome"}),
		messagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sv2_server_messages_sent_total",
			Help: "Messages written to any client IO by the dispatcher.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.clients, m.setupConnections, m.messagesSent)
	}
	return m
}

const (
	setupOutcomeSuccess             = "success"
	setupOutcomeUnsupportedProtocol = "unsupported_protocol"
	setupOutcomeVersionMismatch     = "version_mismatch"
	setupOutcomeUnsupportedFlags    = "unsupported_flags"
)
