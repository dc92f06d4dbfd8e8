package sv2svc

// ResponseFromClient is the shared response envelope shape (spec.md §3)
// instantiated for the client half.
type ResponseFromClient interface {
	isResponseFromClient()
}

// ClientConnectionEstablished acknowledges that SetupConnectionSuccess was
// received and the connection reached the Established state.
type ClientConnectionEstablished struct{}

func (ClientConnectionEstablished) isResponseFromClient() {}

// ClientSendToServer asks the dispatcher to send one message to the server
// over this client's transport. Unlike ClientTriggerNewRequest it does not
// re-enter the dispatcher with a new request; Call performs the send
// directly and returns its outcome (ClientOk, or a connection error) to the
// original caller.
type ClientSendToServer struct {
	Message AnyMessage
}

func (ClientSendToServer) isResponseFromClient() {}

// ClientTriggerNewRequest asks the dispatcher to immediately re-enter Call
// with Request before returning to the original caller.
type ClientTriggerNewRequest struct {
	Request RequestToClient
}

func (ClientTriggerNewRequest) isResponseFromClient() {}

// ClientOk is the bare acknowledgement for requests with nothing further to
// report.
type ClientOk struct{}

func (ClientOk) isResponseFromClient() {}

// ClientTemplateDistributionTriggerAck is returned by the Template
// Distribution client handler's trigger entry points in place of a bare Ok,
// preserving the distinct acknowledgement shape the original implementation
// carries (SPEC_FULL.md supplement 1).
type ClientTemplateDistributionTriggerAck struct {
	TemplateID uint64
}

func (ClientTemplateDistributionTriggerAck) isResponseFromClient() {}
