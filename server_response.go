package sv2svc

// ResponseFromServer is the shared response envelope shape (spec.md §3)
// instantiated for the server half.
type ResponseFromServer interface {
	isResponseFromServer()
}

// ServerConnectionEstablished acknowledges that a connection reached the
// Established state.
type ServerConnectionEstablished struct{}

func (ServerConnectionEstablished) isResponseFromServer() {}

// ServerTriggerNewRequest asks the dispatcher to immediately re-enter Call
// with Request before returning to the original caller (spec.md §4.1). The
// dispatcher follows at most maxDispatchDepth such chained requests per Call.
type ServerTriggerNewRequest struct {
	Request RequestToServer
}

func (ServerTriggerNewRequest) isResponseFromServer() {}

// ServerOk is the bare acknowledgement returned by handler methods and
// send-shaped requests that completed with nothing further to report.
type ServerOk struct{}

func (ServerOk) isResponseFromServer() {}
