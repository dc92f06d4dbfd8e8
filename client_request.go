package sv2svc

// RequestToClient is the tagged request envelope accepted by
// ClientService.Call (spec.md §3, client side).
type RequestToClient interface {
	isRequestToClient()
}

// SetupConnectionTriggerRequest asks the client service to build and send a
// SetupConnection for the given protocol using its configured endpoint and
// version fields (spec.md §4.4).
type SetupConnectionTriggerRequest struct {
	Protocol Protocol
	Flags    uint32
}

func (SetupConnectionTriggerRequest) isRequestToClient() {}

// IncomingMessageToClient lifts one decoded wire frame received from the
// server this client is connected to.
type IncomingMessageToClient struct {
	Message AnyMessage
}

func (IncomingMessageToClient) isRequestToClient() {}

// TemplateDistributionTrigger mirrors MiningServerTrigger on the client side
// (SPEC_FULL.md supplement 2): it feeds NewTemplate / SetNewPrevHash pushes
// into the co-located Template Distribution client handler.
type TemplateDistributionTrigger interface {
	isTemplateDistributionTrigger()
}

type TDTriggerOnNewTemplate struct {
	Template NewTemplate
}

func (TDTriggerOnNewTemplate) isTemplateDistributionTrigger() {}

type TDTriggerOnSetNewPrevHash struct {
	SetNewPrevHash SetNewPrevHash
}

func (TDTriggerOnSetNewPrevHash) isTemplateDistributionTrigger() {}

// MiningTriggerClientRequest drives the client-side mining handler directly.
type MiningTriggerClientRequest struct {
	Trigger MiningServerTrigger
}

func (MiningTriggerClientRequest) isRequestToClient() {}

// TemplateDistributionTriggerRequest wraps a TemplateDistributionTrigger as
// a RequestToClient.
type TemplateDistributionTriggerRequest struct {
	Trigger TemplateDistributionTrigger
}

func (TemplateDistributionTriggerRequest) isRequestToClient() {}

// SendMessageToMiningServerRequest asks the dispatcher to send one message
// to the upstream mining server over this client's transport.
type SendMessageToMiningServerRequest struct {
	Message AnyMessage
}

func (SendMessageToMiningServerRequest) isRequestToClient() {}

// SendMessageToTemplateDistributionServerRequest is the Template
// Distribution analogue of SendMessageToMiningServerRequest.
type SendMessageToTemplateDistributionServerRequest struct {
	Message AnyMessage
}

func (SendMessageToTemplateDistributionServerRequest) isRequestToClient() {}

// SendRequestToSiblingServerServiceRequest forwards a RequestToServer to the
// paired server service over sibling IO, if one is configured.
type SendRequestToSiblingServerServiceRequest struct {
	Request RequestToServer
}

func (SendRequestToSiblingServerServiceRequest) isRequestToClient() {}

// MultipleRequestsToClient dispatches each request in order; the first
// failure aborts the remainder.
type MultipleRequestsToClient struct {
	Requests []RequestToClient
}

func (MultipleRequestsToClient) isRequestToClient() {}
