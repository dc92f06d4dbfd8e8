package sv2svc

// Protocol identifies one of the three Sv2 subprotocols negotiated by
// SetupConnection.
type Protocol uint8

const (
	ProtocolMining Protocol = iota
	ProtocolJobDeclaration
	ProtocolTemplateDistribution
)

func (p Protocol) String() string {
	switch p {
	case ProtocolMining:
		return "Mining"
	case ProtocolJobDeclaration:
		return "JobDeclaration"
	case ProtocolTemplateDistribution:
		return "TemplateDistribution"
	default:
		return "Unknown"
	}
}

// SetupConnection is the mandatory first message on any Sv2 connection.
type SetupConnection struct {
	Protocol         Protocol
	MinVersion       uint16
	MaxVersion       uint16
	Flags            uint32
	EndpointHost     string
	EndpointPort     uint16
	Vendor           string
	HardwareVersion  string
	Firmware         string
	DeviceID         string
}

// SetupConnectionSuccess is the server's reply once SetupConnection has been
// validated and accepted.
type SetupConnectionSuccess struct {
	UsedVersion uint16
	Flags       uint32
}

// SetupConnectionError is the server's reply when SetupConnection cannot be
// honored. ErrorCode is one of the three reserved ASCII codes this core
// knows about (see ErrorCode* constants) or a handler-specific code.
type SetupConnectionError struct {
	Flags     uint32
	ErrorCode string
}

// The three SetupConnection error codes this core is responsible for.
const (
	ErrorCodeUnsupportedProtocol     = "unsupported-protocol"
	ErrorCodeProtocolVersionMismatch = "protocol-version-mismatch"
	ErrorCodeUnsupportedFeatureFlags = "unsupported-feature-flags"
)

// AnyMessage is the sum type of every message this core knows how to route.
// Like goPool's decoded wire-frame values, a concrete AnyMessage is always
// one of the message structs declared in this package; handlers and the
// dispatcher recover the concrete type with a type switch.
type AnyMessage any
