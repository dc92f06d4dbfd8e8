package sv2svc

// handleSetupConnectionTrigger implements the client-side setup initiator
// (spec.md §4.4): it builds a SetupConnection from the client's configured
// endpoint/vendor/version fields and the triggered protocol/flags, and sends
// it over the established transport.
func (c *ClientService) handleSetupConnectionTrigger(r SetupConnectionTriggerRequest) (ResponseFromClient, error) {
	io := c.getIO()
	if io == nil {
		return nil, newClientErr(ClientErrIsNotConnected)
	}

	msg := SetupConnection{
		Protocol:        r.Protocol,
		MinVersion:      c.cfg.MinVersion,
		MaxVersion:      c.cfg.MaxVersion,
		Flags:           r.Flags,
		EndpointHost:    c.cfg.EndpointHost,
		EndpointPort:    c.cfg.EndpointPort,
		Vendor:          c.cfg.Vendor,
		HardwareVersion: c.cfg.HardwareVersion,
		Firmware:        c.cfg.Firmware,
		DeviceID:        c.cfg.DeviceID,
	}
	if err := io.SendMessage(msg); err != nil {
		return nil, newClientMsgErr(ClientErrConnectionError, err.Error())
	}
	c.state.Store(int32(stateNegotiating))
	return ClientOk{}, nil
}

// handleSetupConnectionSuccess transitions Negotiating -> Established.
// Receiving it outside Negotiating is UnsupportedMessage (spec.md §4.3
// "state machine", applied symmetrically to the client).
func (c *ClientService) handleSetupConnectionSuccess(msg SetupConnectionSuccess) (ResponseFromClient, error) {
	if connectionState(c.state.Load()) != stateNegotiating {
		return nil, newClientErr(ClientErrUnsupportedMessage)
	}
	c.state.Store(int32(stateEstablished))
	return ClientConnectionEstablished{}, nil
}

// handleSetupConnectionError surfaces the server's refusal and closes the
// connection state (spec.md §4.4).
func (c *ClientService) handleSetupConnectionError(msg SetupConnectionError) (ResponseFromClient, error) {
	c.state.Store(int32(stateClosed))
	return nil, newClientRefusedErr(msg.ErrorCode)
}
