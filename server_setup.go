package sv2svc

// handleSetupConnection runs the negotiation algorithm from spec.md §4.3
// against an already-accepted client. Both error and success paths are
// returned as a ServerTriggerNewRequest wrapping a SendMessagesToClientRequest
// so that the dispatcher, not the negotiator, is the one component that ever
// touches client IO.
func (s *ServerService) handleSetupConnection(msg SetupConnection, clientID uint32) (ResponseFromServer, error) {
	cfg, supported := s.protocolConfig(msg.Protocol)
	if !supported {
		s.observeSetupOutcome(setupOutcomeUnsupportedProtocol)
		return s.setupErrorResponse(clientID, 0, ErrorCodeUnsupportedProtocol), nil
	}

	if msg.MaxVersion < s.cfg.MinSupportedVersion || msg.MinVersion > s.cfg.MaxSupportedVersion {
		s.observeSetupOutcome(setupOutcomeVersionMismatch)
		return s.setupErrorResponse(clientID, 0, ErrorCodeProtocolVersionMismatch), nil
	}

	usedVersion := msg.MaxVersion
	if s.cfg.MaxSupportedVersion < usedVersion {
		usedVersion = s.cfg.MaxSupportedVersion
	}

	unsupported := msg.Flags &^ cfg.SupportedFlags
	if unsupported != 0 {
		// Preserved observed-behavior quirk (spec.md §9 open question): the
		// protocol handler still sees add_client for a connection that is
		// about to be refused. Its error, if any, is intentionally not
		// surfaced here — the refusal response is what the peer observes.
		_, _ = s.addClientToHandler(msg.Protocol, clientID, msg.Flags)
		s.observeSetupOutcome(setupOutcomeUnsupportedFlags)
		return s.setupErrorResponse(clientID, unsupported, ErrorCodeUnsupportedFeatureFlags), nil
	}

	rec, ok := s.getClientRecord(clientID)
	if !ok {
		return nil, newServerErr(ServerErrIDNotFound)
	}
	if rec.Connection() != nil {
		// Connection details are committed at most once per record.
		return nil, newServerErr(ServerErrUnsupportedMessage)
	}
	rec.setConnection(ConnectionDetails{
		Protocol:        msg.Protocol,
		MinVersion:      msg.MinVersion,
		MaxVersion:      msg.MaxVersion,
		Flags:           msg.Flags,
		EndpointHost:    msg.EndpointHost,
		EndpointPort:    msg.EndpointPort,
		Vendor:          msg.Vendor,
		HardwareVersion: msg.HardwareVersion,
		Firmware:        msg.Firmware,
		DeviceID:        msg.DeviceID,
	})

	successFlags, err := s.addClientToHandler(msg.Protocol, clientID, msg.Flags)
	if err != nil {
		return nil, err
	}

	s.observeSetupOutcome(setupOutcomeSuccess)
	return ServerTriggerNewRequest{
		Request: SendMessagesToClientRequest{
			ClientID: clientID,
			Messages: []AnyMessage{SetupConnectionSuccess{UsedVersion: usedVersion, Flags: successFlags}},
		},
	}, nil
}

func (s *ServerService) setupErrorResponse(clientID uint32, flags uint32, code string) ResponseFromServer {
	return ServerTriggerNewRequest{
		Request: SendMessagesToClientRequest{
			ClientID: clientID,
			Messages: []AnyMessage{SetupConnectionError{Flags: flags, ErrorCode: code}},
		},
	}
}

func (s *ServerService) observeSetupOutcome(outcome string) {
	s.metrics.setupConnections.WithLabelValues(outcome).Inc()
}

// protocolConfig reports whether protocol p is configured as supported and
// returns its config.
func (s *ServerService) protocolConfig(p Protocol) (*ProtocolConfig, bool) {
	var cfg *ProtocolConfig
	switch p {
	case ProtocolMining:
		cfg = s.cfg.Mining
	case ProtocolJobDeclaration:
		cfg = s.cfg.JobDeclaration
	case ProtocolTemplateDistribution:
		cfg = s.cfg.TemplateDistribution
	default:
		return nil, false
	}
	return cfg, cfg != nil
}

// addClientToHandler calls AddClient on the handler for protocol p,
// returning the setup_connection_success flags it reports.
func (s *ServerService) addClientToHandler(p Protocol, clientID uint32, flags uint32) (uint32, error) {
	switch p {
	case ProtocolMining:
		return s.mining.AddClient(clientID, flags)
	case ProtocolJobDeclaration:
		return s.jobDeclaration.AddClient(clientID, flags)
	case ProtocolTemplateDistribution:
		return s.templateDistribution.AddClient(clientID, flags)
	default:
		return 0, newServerProtoErr(ServerErrUnsupportedProtocol, p)
	}
}
