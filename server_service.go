package sv2svc

import (
	"context"
	"net"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// maxDispatchDepth bounds the TriggerNewRequest recursion named in spec.md
// §4.1 and §9: one Call follows at most maxDispatchDepth chained requests;
// a further TriggerNewRequest fails with BadRouting instead of recursing.
const maxDispatchDepth = 2

// ServerService is the server half: it accepts connections (via a separate
// connection manager, see server_connection_manager.go), holds the client
// registry, and dispatches RequestToServer values to the configured
// subprotocol handlers. It is deliberately small and cheap to copy by
// pointer across many goroutines, mirroring the "clonable service" design
// note in spec.md §9 — shared state lives behind the pointer, never copied.
type ServerService struct {
	cfg ServerConfig

	clients      sync.Map // uint32 -> *ClientRecord
	clientCount  atomic.Int64
	idGen        *clientIDGenerator

	mining               MiningServerHandler
	jobDeclaration       JobDeclarationServerHandler
	templateDistribution TemplateDistributionServerHandler

	sibling *SiblingServerServiceIo

	logger  *zap.Logger
	metrics *serverMetrics

	addr      atomic.Value
	listening chan struct{}
}

// NewServerService validates cfg against the supplied handlers and
// constructs a ready-to-start ServerService. A nil handler argument is
// treated as the designated null handler for that subprotocol. Construction
// fails fast on any of the consistency violations named in spec.md §8
// invariant 6.
func NewServerService(cfg ServerConfig, mining MiningServerHandler, jobDeclaration JobDeclarationServerHandler, templateDistribution TemplateDistributionServerHandler, sibling *SiblingServerServiceIo) (*ServerService, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if mining == nil {
		mining = NullMiningServerHandler
	}
	if jobDeclaration == nil {
		jobDeclaration = NullJobDeclarationServerHandler
	}
	if templateDistribution == nil {
		templateDistribution = NullTemplateDistributionServerHandler
	}

	if err := validateProtocolConsistency(ProtocolMining, cfg.Mining, mining.IsNull()); err != nil {
		return nil, err
	}
	if err := validateProtocolConsistency(ProtocolJobDeclaration, cfg.JobDeclaration, jobDeclaration.IsNull()); err != nil {
		return nil, err
	}
	if err := validateProtocolConsistency(ProtocolTemplateDistribution, cfg.TemplateDistribution, templateDistribution.IsNull()); err != nil {
		return nil, err
	}

	s := &ServerService{
		cfg:                  cfg,
		idGen:                newClientIDGenerator(),
		mining:               mining,
		jobDeclaration:       jobDeclaration,
		templateDistribution: templateDistribution,
		sibling:              sibling,
		logger:               cfg.Logger,
		metrics:              newServerMetrics(cfg.MetricsRegisterer),
		listening:            make(chan struct{}),
	}
	return s, nil
}

// Addr returns the listener's bound address. It is only valid once the
// channel returned by Listening is closed.
func (s *ServerService) Addr() net.Addr {
	v, _ := s.addr.Load().(net.Addr)
	return v
}

// Listening returns a channel that closes once Start's listener is bound,
// letting callers (tests, readiness probes) synchronize with an ephemeral
// port.
func (s *ServerService) Listening() <-chan struct{} {
	return s.listening
}

// ClientCount returns the number of client records currently registered.
func (s *ServerService) ClientCount() int {
	return int(s.clientCount.Load())
}

func (s *ServerService) addClientRecord(rec *ClientRecord) {
	s.clients.Store(rec.ID, rec)
	s.clientCount.Add(1)
	s.metrics.clients.Inc()
}

func (s *ServerService) getClientRecord(id uint32) (*ClientRecord, bool) {
	v, ok := s.clients.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*ClientRecord), true
}

// removeClientRecord shuts down the client's IO exactly once and invokes
// RemoveClient on every non-null subprotocol handler exactly once
// (spec.md §8 invariant 3).
func (s *ServerService) removeClientRecord(id uint32) {
	v, ok := s.clients.LoadAndDelete(id)
	if !ok {
		return
	}
	rec := v.(*ClientRecord)
	rec.shutdown()
	s.clientCount.Add(-1)
	s.metrics.clients.Dec()
	if !s.mining.IsNull() {
		s.mining.RemoveClient(id)
	}
	if !s.jobDeclaration.IsNull() {
		s.jobDeclaration.RemoveClient(id)
	}
	if !s.templateDistribution.IsNull() {
		s.templateDistribution.RemoveClient(id)
	}
}

// removeAllClientRecords drains the registry, used by cancellation and
// shutdown (spec.md §4.2 "Shutdown").
func (s *ServerService) removeAllClientRecords() {
	ids := make([]uint32, 0)
	s.clients.Range(func(key, _ any) bool {
		ids = append(ids, key.(uint32))
		return true
	})
	for _, id := range ids {
		s.removeClientRecord(id)
	}
}

// Ready reports whether every non-null subprotocol handler is ready
// (spec.md §4.1 "Readiness").
func (s *ServerService) Ready() bool {
	if !s.mining.IsNull() && !s.mining.Ready() {
		return false
	}
	if !s.jobDeclaration.IsNull() && !s.jobDeclaration.Ready() {
		return false
	}
	if !s.templateDistribution.IsNull() && !s.templateDistribution.Ready() {
		return false
	}
	return true
}

// Call dispatches one RequestToServer, recursively re-entering itself for
// any TriggerNewRequest response the handler or negotiator returns
// (spec.md §4.1).
func (s *ServerService) Call(ctx context.Context, req RequestToServer) (ResponseFromServer, error) {
	return s.call(ctx, req, 0)
}

func (s *ServerService) call(ctx context.Context, req RequestToServer, depth int) (ResponseFromServer, error) {
	resp, err := s.dispatch(ctx, req)
	if err != nil {
		return resp, err
	}
	if trigger, ok := resp.(ServerTriggerNewRequest); ok {
		if depth >= maxDispatchDepth {
			return nil, newServerMsgErr(ServerErrBadRouting, "trigger chain exceeded maximum dispatch depth")
		}
		return s.call(ctx, trigger.Request, depth+1)
	}
	return resp, nil
}

func (s *ServerService) dispatch(ctx context.Context, req RequestToServer) (ResponseFromServer, error) {
	switch r := req.(type) {
	case IncomingMessageToServer:
		return s.dispatchIncomingMessage(ctx, r)
	case MiningTriggerRequest:
		if s.mining.IsNull() {
			return nil, newServerProtoErr(ServerErrUnsupportedProtocol, ProtocolMining)
		}
		return s.mining.OnTrigger(r.Trigger)
	case SendMessagesToClientRequest:
		return s.dispatchSendMessagesToClient(r)
	case SendMessagesToClientsRequest:
		for _, batch := range r.Batches {
			if _, err := s.dispatchSendMessagesToClient(batch); err != nil {
				return nil, err
			}
		}
		return ServerOk{}, nil
	case SendRequestToSiblingClientServiceRequest:
		if s.sibling == nil {
			return nil, newServerErr(ServerErrNoSiblingClientService)
		}
		if err := s.sibling.Send(r.Request); err != nil {
			return nil, newServerMsgErr(ServerErrFailedToSendRequestToSibling, err.Error())
		}
		return ServerOk{}, nil
	case MultipleRequestsToServer:
		for _, inner := range r.Requests {
			if _, err := s.call(ctx, inner, 0); err != nil {
				return nil, err
			}
		}
		return ServerOk{}, nil
	default:
		return nil, newServerErr(ServerErrBadRouting)
	}
}

func (s *ServerService) dispatchSendMessagesToClient(r SendMessagesToClientRequest) (ResponseFromServer, error) {
	rec, ok := s.getClientRecord(r.ClientID)
	if !ok {
		return nil, newServerErr(ServerErrIDNotFound)
	}
	for _, msg := range r.Messages {
		if err := rec.IO.SendMessage(msg); err != nil {
			return nil, newServerMsgErr(ServerErrFailedToSendResponseToClient, err.Error())
		}
		s.metrics.messagesSent.Inc()
	}
	return ServerOk{}, nil
}

func (s *ServerService) dispatchIncomingMessage(ctx context.Context, r IncomingMessageToServer) (ResponseFromServer, error) {
	if _, isSetup := r.Message.(SetupConnection); isSetup {
		if r.ClientID == nil {
			return nil, newServerErr(ServerErrIDMustBeSome)
		}
		return s.handleSetupConnection(r.Message.(SetupConnection), *r.ClientID)
	}

	switch msg := r.Message.(type) {
	case SetupConnectionSuccess, SetupConnectionError:
		return nil, newServerErr(ServerErrUnsupportedMessage)

	case OpenStandardMiningChannel:
		return s.dispatchMining(r.ClientID, func(id uint32) (ResponseFromServer, error) {
			return s.mining.OnOpenStandardMiningChannel(id, msg)
		})
	case OpenExtendedMiningChannel:
		return s.dispatchMining(r.ClientID, func(id uint32) (ResponseFromServer, error) {
			return s.mining.OnOpenExtendedMiningChannel(id, msg)
		})
	case UpdateChannel:
		return s.dispatchMining(r.ClientID, func(id uint32) (ResponseFromServer, error) {
			return s.mining.OnUpdateChannel(id, msg)
		})
	case SubmitSharesStandard:
		return s.dispatchMining(r.ClientID, func(id uint32) (ResponseFromServer, error) {
			return s.mining.OnSubmitSharesStandard(id, msg)
		})
	case SubmitSharesExtended:
		return s.dispatchMining(r.ClientID, func(id uint32) (ResponseFromServer, error) {
			return s.mining.OnSubmitSharesExtended(id, msg)
		})
	case SetCustomMiningJob:
		return s.dispatchMining(r.ClientID, func(id uint32) (ResponseFromServer, error) {
			return s.mining.OnSetCustomMiningJob(id, msg)
		})
	case CloseChannel:
		return s.dispatchMining(r.ClientID, func(id uint32) (ResponseFromServer, error) {
			return s.mining.OnCloseChannel(id, msg)
		})

	case OpenStandardMiningChannelSuccess, OpenExtendedMiningChannelSuccess, OpenMiningChannelError,
		UpdateChannelError, NewMiningJob, NewExtendedMiningJob, SetNewPrevHashMining, SetTarget,
		SetGroupChannel, SetExtranoncePrefix, SubmitSharesSuccess, SubmitSharesError,
		SetCustomMiningJobSuccess, SetCustomMiningJobError:
		return nil, newServerErr(ServerErrUnsupportedMessage)

	case RequestTransactionData:
		return s.dispatchTemplateDistribution(r.ClientID, func(id uint32) (ResponseFromServer, error) {
			return s.templateDistribution.OnRequestTransactionData(id, msg)
		})
	case SubmitSolution:
		return s.dispatchTemplateDistribution(r.ClientID, func(id uint32) (ResponseFromServer, error) {
			return s.templateDistribution.OnSubmitSolution(id, msg)
		})
	case CoinbaseOutputConstraints:
		return s.dispatchTemplateDistribution(r.ClientID, func(id uint32) (ResponseFromServer, error) {
			return s.templateDistribution.OnCoinbaseOutputConstraints(id, msg)
		})
	case NewTemplate, SetNewPrevHash, RequestTransactionDataSuccess, RequestTransactionDataError:
		return nil, newServerErr(ServerErrUnsupportedMessage)

	case AllocateMiningJobToken:
		return s.dispatchJobDeclaration(r.ClientID, func(id uint32) (ResponseFromServer, error) {
			return s.jobDeclaration.OnAllocateMiningJobToken(id, msg)
		})
	case DeclareMiningJob:
		return s.dispatchJobDeclaration(r.ClientID, func(id uint32) (ResponseFromServer, error) {
			return s.jobDeclaration.OnDeclareMiningJob(id, msg)
		})
	case AllocateMiningJobTokenSuccess, DeclareMiningJobSuccess, DeclareMiningJobError:
		return nil, newServerErr(ServerErrUnsupportedMessage)

	default:
		return nil, newServerErr(ServerErrUnsupportedMessage)
	}
}

func (s *ServerService) dispatchMining(clientID *uint32, fn func(uint32) (ResponseFromServer, error)) (ResponseFromServer, error) {
	if s.mining.IsNull() {
		return nil, newServerProtoErr(ServerErrUnsupportedProtocol, ProtocolMining)
	}
	if clientID == nil {
		return nil, newServerErr(ServerErrIDMustBeSome)
	}
	return fn(*clientID)
}

func (s *ServerService) dispatchTemplateDistribution(clientID *uint32, fn func(uint32) (ResponseFromServer, error)) (ResponseFromServer, error) {
	if s.templateDistribution.IsNull() {
		return nil, newServerProtoErr(ServerErrUnsupportedProtocol, ProtocolTemplateDistribution)
	}
	if clientID == nil {
		return nil, newServerErr(ServerErrIDMustBeSome)
	}
	return fn(*clientID)
}

func (s *ServerService) dispatchJobDeclaration(clientID *uint32, fn func(uint32) (ResponseFromServer, error)) (ResponseFromServer, error) {
	if s.jobDeclaration.IsNull() {
		return nil, newServerProtoErr(ServerErrUnsupportedProtocol, ProtocolJobDeclaration)
	}
	if clientID == nil {
		return nil, newServerErr(ServerErrIDMustBeSome)
	}
	return fn(*clientID)
}
