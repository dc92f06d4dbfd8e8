package sv2svc

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// ProtocolConfig is the per-subprotocol configuration slot named in spec.md
// §6. Its presence, together with whether the matching handler is null,
// determines whether a protocol is "supported" (spec.md §3).
type ProtocolConfig struct {
	SupportedFlags uint32
}

// TCPConfig holds the server's listener parameters, grounded in goPool's
// TLS/keypair setup (tls_cert.go) but expressed with btcec key types since
// this core's minimal transport (§6A) uses a static-key handshake rather
// than TLS certificates.
type TCPConfig struct {
	ListenAddress string
	PrivateKey    *btcec.PrivateKey
	CertValidity  time.Duration
}

// ServerConfig is immutable after NewServerService validates it (spec.md
// §3 "Server configuration").
type ServerConfig struct {
	MinSupportedVersion uint16
	MaxSupportedVersion uint16
	InactivityLimit     time.Duration
	TCP                 TCPConfig

	Mining                *ProtocolConfig
	JobDeclaration        *ProtocolConfig
	TemplateDistribution  *ProtocolConfig

	// MaxConcurrentOnboarding bounds the sizedwaitgroup guarding onboarding
	// of newly accepted connections. Zero selects a small sane default.
	MaxConcurrentOnboarding int

	Logger *zap.Logger

	// MetricsRegisterer, if non-nil, receives the server's Prometheus
	// gauge/counters (sv2_server_clients, sv2_server_setup_connections_total,
	// sv2_server_messages_sent_total) so an operator can scrape them. A nil
	// registerer still gets working in-memory instruments; they just aren't
	// exposed on a /metrics endpoint.
	MetricsRegisterer prometheus.Registerer
}

// validateProtocolConsistency enforces spec.md §3's bidirectional rule:
// a protocol is supported iff its config is present and its handler is
// non-null; mismatches in either direction fail construction (spec.md §8
// invariant 6).
func validateProtocolConsistency(protocol Protocol, cfg *ProtocolConfig, handlerIsNull bool) error {
	supported := cfg != nil
	switch {
	case supported && handlerIsNull:
		return &ServerError{Kind: ServerErrNullHandlerForSupportedProtocol, Protocol: protocol}
	case !supported && !handlerIsNull:
		return &ServerError{Kind: ServerErrNonNullHandlerForUnsupportedProtocol, Protocol: protocol}
	}
	return nil
}

func (c *ServerConfig) validate() error {
	if c.MinSupportedVersion > c.MaxSupportedVersion {
		return fmt.Errorf("sv2svc: min_supported_version %d exceeds max_supported_version %d", c.MinSupportedVersion, c.MaxSupportedVersion)
	}
	if c.MaxConcurrentOnboarding <= 0 {
		c.MaxConcurrentOnboarding = 64
	}
	if c.Logger == nil {
		c.Logger = newNopLogger()
	}
	return nil
}
