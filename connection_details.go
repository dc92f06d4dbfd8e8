package sv2svc

// ConnectionDetails holds the negotiated SetupConnection fields for one
// client, written at most once by the setup negotiator on its success path
// (spec.md §3 invariant (b)).
type ConnectionDetails struct {
	Protocol        Protocol
	MinVersion      uint16
	MaxVersion      uint16
	Flags           uint32
	EndpointHost    string
	EndpointPort    uint16
	Vendor          string
	HardwareVersion string
	Firmware        string
	DeviceID        string
}
