package sv2svc

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"go.uber.org/zap"
)

// ClientProtocolConfig is the client-side analogue of ProtocolConfig,
// additionally carrying the user_identity field named in spec.md §6.
type ClientProtocolConfig struct {
	Flags        uint32
	UserIdentity string
}

// ClientConfig is immutable after NewClientService validates it (spec.md
// §3 "Client configuration").
type ClientConfig struct {
	ServerAddress string
	// AuthPublicKey, if non-nil, selects the encrypted transport and pins
	// the server's static public key (spec.md §6).
	AuthPublicKey *btcec.PublicKey

	MinVersion uint16
	MaxVersion uint16

	Mining               *ClientProtocolConfig
	TemplateDistribution *ClientProtocolConfig

	EndpointHost    string
	EndpointPort    uint16
	Vendor          string
	HardwareVersion string
	Firmware        string
	DeviceID        string

	Logger *zap.Logger
}

func (c *ClientConfig) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("sv2svc: client config requires a server address")
	}
	if c.MinVersion > c.MaxVersion {
		return fmt.Errorf("sv2svc: min version %d exceeds max version %d", c.MinVersion, c.MaxVersion)
	}
	if c.Logger == nil {
		c.Logger = newNopLogger()
	}
	return nil
}
