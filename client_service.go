package sv2svc

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// connectionState is the three-state (plus terminal Closed) machine from
// spec.md §4.3, applied symmetrically to the client half per §4.4.
type connectionState int32

const (
	stateAccepted connectionState = iota
	stateNegotiating
	stateEstablished
	stateClosed
)

// ClientService is the client half: it dials a single upstream server,
// emits SetupConnection, and dispatches RequestToClient values to the
// configured subprotocol handlers once established.
type ClientService struct {
	cfg ClientConfig

	mining               MiningClientHandler
	templateDistribution TemplateDistributionClientHandler

	sibling *SiblingClientServiceIo

	ioMu sync.RWMutex
	io   FramedMessageIo

	state atomic.Int32

	logger *zap.Logger
}

// NewClientService validates cfg against the supplied handlers and
// constructs a ClientService that has not yet dialed anything; call
// Start to connect.
func NewClientService(cfg ClientConfig, mining MiningClientHandler, templateDistribution TemplateDistributionClientHandler, sibling *SiblingClientServiceIo) (*ClientService, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if mining == nil {
		mining = NullMiningClientHandler
	}
	if templateDistribution == nil {
		templateDistribution = NullTemplateDistributionClientHandler
	}

	if err := validateClientProtocolConsistency(ProtocolMining, cfg.Mining, mining.IsNull()); err != nil {
		return nil, err
	}
	if err := validateClientProtocolConsistency(ProtocolTemplateDistribution, cfg.TemplateDistribution, templateDistribution.IsNull()); err != nil {
		return nil, err
	}

	c := &ClientService{
		cfg:                  cfg,
		mining:               mining,
		templateDistribution: templateDistribution,
		sibling:              sibling,
		logger:               cfg.Logger,
	}
	c.state.Store(int32(stateAccepted))
	return c, nil
}

func validateClientProtocolConsistency(protocol Protocol, cfg *ClientProtocolConfig, handlerIsNull bool) error {
	supported := cfg != nil
	switch {
	case supported && handlerIsNull:
		return &ClientError{Kind: ClientErrNullHandlerForSupportedProtocol, Protocol: protocol}
	case !supported && !handlerIsNull:
		return &ClientError{Kind: ClientErrNonNullHandlerForUnsupportedProtocol, Protocol: protocol}
	}
	return nil
}

func (c *ClientService) Ready() bool {
	if !c.mining.IsNull() && !c.mining.Ready() {
		return false
	}
	if !c.templateDistribution.IsNull() && !c.templateDistribution.Ready() {
		return false
	}
	return true
}

func (c *ClientService) setIO(io FramedMessageIo) {
	c.ioMu.Lock()
	defer c.ioMu.Unlock()
	c.io = io
}

func (c *ClientService) getIO() FramedMessageIo {
	c.ioMu.RLock()
	defer c.ioMu.RUnlock()
	return c.io
}

// Call dispatches one RequestToClient, recursively re-entering itself for
// any TriggerNewRequest response a handler returns.
func (c *ClientService) Call(ctx context.Context, req RequestToClient) (ResponseFromClient, error) {
	return c.call(ctx, req, 0)
}

func (c *ClientService) call(ctx context.Context, req RequestToClient, depth int) (ResponseFromClient, error) {
	resp, err := c.dispatch(ctx, req)
	if err != nil {
		return resp, err
	}
	if trigger, ok := resp.(ClientTriggerNewRequest); ok {
		if depth >= maxDispatchDepth {
			return nil, newClientMsgErr(ClientErrBadRouting, "trigger chain exceeded maximum dispatch depth")
		}
		return c.call(ctx, trigger.Request, depth+1)
	}
	if send, ok := resp.(ClientSendToServer); ok {
		return c.sendToServer(send.Message)
	}
	return resp, nil
}

func (c *ClientService) dispatch(ctx context.Context, req RequestToClient) (ResponseFromClient, error) {
	switch r := req.(type) {
	case SetupConnectionTriggerRequest:
		return c.handleSetupConnectionTrigger(r)
	case IncomingMessageToClient:
		return c.dispatchIncomingMessage(r)
	case MiningTriggerClientRequest:
		if c.mining.IsNull() {
			return nil, newClientProtoErr(ClientErrUnsupportedProtocol, ProtocolMining)
		}
		return c.mining.OnTrigger(r.Trigger)
	case TemplateDistributionTriggerRequest:
		if c.templateDistribution.IsNull() {
			return nil, newClientProtoErr(ClientErrUnsupportedProtocol, ProtocolTemplateDistribution)
		}
		return c.templateDistribution.OnTrigger(r.Trigger)
	case SendMessageToMiningServerRequest:
		return c.sendToServer(r.Message)
	case SendMessageToTemplateDistributionServerRequest:
		return c.sendToServer(r.Message)
	case SendRequestToSiblingServerServiceRequest:
		if c.sibling == nil {
			return nil, newClientErr(ClientErrNoSiblingServerService)
		}
		if err := c.sibling.Send(r.Request); err != nil {
			return nil, newClientMsgErr(ClientErrFailedToSendRequestToSibling, err.Error())
		}
		return ClientOk{}, nil
	case MultipleRequestsToClient:
		for _, inner := range r.Requests {
			if _, err := c.call(ctx, inner, 0); err != nil {
				return nil, err
			}
		}
		return ClientOk{}, nil
	default:
		return nil, newClientErr(ClientErrBadRouting)
	}
}

func (c *ClientService) sendToServer(msg AnyMessage) (ResponseFromClient, error) {
	if connectionState(c.state.Load()) != stateEstablished {
		return nil, newClientErr(ClientErrIsNotConnected)
	}
	io := c.getIO()
	if io == nil {
		return nil, newClientErr(ClientErrIsNotConnected)
	}
	if err := io.SendMessage(msg); err != nil {
		return nil, newClientMsgErr(ClientErrConnectionError, err.Error())
	}
	return ClientOk{}, nil
}

func (c *ClientService) dispatchIncomingMessage(r IncomingMessageToClient) (ResponseFromClient, error) {
	switch msg := r.Message.(type) {
	case SetupConnectionSuccess:
		return c.handleSetupConnectionSuccess(msg)
	case SetupConnectionError:
		return c.handleSetupConnectionError(msg)
	case SetupConnection:
		return nil, newClientErr(ClientErrUnsupportedMessage)

	case OpenStandardMiningChannelSuccess:
		return c.dispatchMiningResponse(func() (ResponseFromClient, error) { return c.mining.OnOpenStandardMiningChannelSuccess(msg) })
	case OpenExtendedMiningChannelSuccess:
		return c.dispatchMiningResponse(func() (ResponseFromClient, error) { return c.mining.OnOpenExtendedMiningChannelSuccess(msg) })
	case OpenMiningChannelError:
		return c.dispatchMiningResponse(func() (ResponseFromClient, error) { return c.mining.OnOpenMiningChannelError(msg) })
	case UpdateChannelError:
		return c.dispatchMiningResponse(func() (ResponseFromClient, error) { return c.mining.OnUpdateChannelError(msg) })
	case NewMiningJob:
		return c.dispatchMiningResponse(func() (ResponseFromClient, error) { return c.mining.OnNewMiningJob(msg) })
	case NewExtendedMiningJob:
		return c.dispatchMiningResponse(func() (ResponseFromClient, error) { return c.mining.OnNewExtendedMiningJob(msg) })
	case SetNewPrevHashMining:
		return c.dispatchMiningResponse(func() (ResponseFromClient, error) { return c.mining.OnSetNewPrevHashMining(msg) })
	case SetTarget:
		return c.dispatchMiningResponse(func() (ResponseFromClient, error) { return c.mining.OnSetTarget(msg) })
	case SetGroupChannel:
		return c.dispatchMiningResponse(func() (ResponseFromClient, error) { return c.mining.OnSetGroupChannel(msg) })
	case SetExtranoncePrefix:
		return c.dispatchMiningResponse(func() (ResponseFromClient, error) { return c.mining.OnSetExtranoncePrefix(msg) })
	case SubmitSharesSuccess:
		return c.dispatchMiningResponse(func() (ResponseFromClient, error) { return c.mining.OnSubmitSharesSuccess(msg) })
	case SubmitSharesError:
		return c.dispatchMiningResponse(func() (ResponseFromClient, error) { return c.mining.OnSubmitSharesError(msg) })
	case SetCustomMiningJobSuccess:
		return c.dispatchMiningResponse(func() (ResponseFromClient, error) { return c.mining.OnSetCustomMiningJobSuccess(msg) })
	case SetCustomMiningJobError:
		return c.dispatchMiningResponse(func() (ResponseFromClient, error) { return c.mining.OnSetCustomMiningJobError(msg) })

	case OpenStandardMiningChannel, OpenExtendedMiningChannel, UpdateChannel, SubmitSharesStandard,
		SubmitSharesExtended, SetCustomMiningJob, CloseChannel:
		return nil, newClientErr(ClientErrUnsupportedMessage)

	case NewTemplate:
		return c.dispatchTemplateDistributionResponse(func() (ResponseFromClient, error) { return c.templateDistribution.OnNewTemplate(msg) })
	case SetNewPrevHash:
		return c.dispatchTemplateDistributionResponse(func() (ResponseFromClient, error) { return c.templateDistribution.OnSetNewPrevHash(msg) })
	case RequestTransactionDataSuccess:
		return c.dispatchTemplateDistributionResponse(func() (ResponseFromClient, error) {
			return c.templateDistribution.OnRequestTransactionDataSuccess(msg)
		})
	case RequestTransactionDataError:
		return c.dispatchTemplateDistributionResponse(func() (ResponseFromClient, error) {
			return c.templateDistribution.OnRequestTransactionDataError(msg)
		})

	case RequestTransactionData, SubmitSolution, CoinbaseOutputConstraints:
		return nil, newClientErr(ClientErrUnsupportedMessage)

	default:
		return nil, newClientErr(ClientErrUnsupportedMessage)
	}
}

func (c *ClientService) dispatchMiningResponse(fn func() (ResponseFromClient, error)) (ResponseFromClient, error) {
	if c.mining.IsNull() {
		return nil, newClientProtoErr(ClientErrUnsupportedProtocol, ProtocolMining)
	}
	return fn()
}

func (c *ClientService) dispatchTemplateDistributionResponse(fn func() (ResponseFromClient, error)) (ResponseFromClient, error) {
	if c.templateDistribution.IsNull() {
		return nil, newClientProtoErr(ClientErrUnsupportedProtocol, ProtocolTemplateDistribution)
	}
	return fn()
}
