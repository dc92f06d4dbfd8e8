package sv2svc

// RequestToServer is the tagged request envelope accepted by
// ServerService.Call (spec.md §3 "Request envelope", server side). Every
// concrete variant below implements the marker method so a stray value of
// the wrong half is a compile error, not a runtime BadRouting surprise; the
// dispatcher still returns BadRouting for any variant it has no case for.
type RequestToServer interface {
	isRequestToServer()
}

// IncomingMessageToServer lifts one decoded wire frame from a client. ClientID
// is nil only for the very first SetupConnection frame path in some
// transports; the dispatcher treats a nil ClientID arriving with a
// SetupConnection message as IdMustBeSome (spec.md §4.1).
type IncomingMessageToServer struct {
	Message  AnyMessage
	ClientID *uint32
}

func (IncomingMessageToServer) isRequestToServer() {}

// MiningServerTrigger is a non-message-originated request that drives the
// mining handler directly, bypassing the wire. Start signals the handler may
// begin background work; NewTemplateTrigger/SetNewPrevHashTrigger carry
// pushes forwarded from a sibling Template Distribution client service
// (original_source's RequestToSv2MiningServer, see SPEC_FULL.md supplement 3).
type MiningServerTrigger interface {
	isMiningServerTrigger()
}

type MiningTriggerStart struct{}

func (MiningTriggerStart) isMiningServerTrigger() {}

type MiningTriggerNewTemplate struct {
	Template NewTemplate
}

func (MiningTriggerNewTemplate) isMiningServerTrigger() {}

type MiningTriggerSetNewPrevHash struct {
	SetNewPrevHash SetNewPrevHash
}

func (MiningTriggerSetNewPrevHash) isMiningServerTrigger() {}

// MiningTriggerRequest wraps a MiningServerTrigger as a RequestToServer.
type MiningTriggerRequest struct {
	Trigger MiningServerTrigger
}

func (MiningTriggerRequest) isRequestToServer() {}

// SendMessagesToClientRequest asks the dispatcher to deliver messages, in
// order, to one client. The first send failure aborts the remainder
// (spec.md §4.1).
type SendMessagesToClientRequest struct {
	ClientID uint32
	Messages []AnyMessage
}

func (SendMessagesToClientRequest) isRequestToServer() {}

// SendMessagesToClientsRequest is a batch of per-client sends, each handled
// as SendMessagesToClientRequest, sequentially.
type SendMessagesToClientsRequest struct {
	Batches []SendMessagesToClientRequest
}

func (SendMessagesToClientsRequest) isRequestToServer() {}

// SendRequestToSiblingClientServiceRequest forwards a RequestToClient to the
// paired client service over sibling IO, if one is configured.
type SendRequestToSiblingClientServiceRequest struct {
	Request RequestToClient
}

func (SendRequestToSiblingClientServiceRequest) isRequestToServer() {}

// MultipleRequestsToServer dispatches each request in order; the first
// failure aborts the remainder (spec.md §4.1, §8 round-trip law).
type MultipleRequestsToServer struct {
	Requests []RequestToServer
}

func (MultipleRequestsToServer) isRequestToServer() {}
