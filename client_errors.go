package sv2svc

// ClientErrorKind enumerates the service-layer error taxonomy from
// spec.md §7 for the client half.
type ClientErrorKind int

const (
	ClientErrBadRouting ClientErrorKind = iota
	ClientErrUnsupportedMessage
	ClientErrUnsupportedProtocol
	ClientErrIsNotConnected
	ClientErrConnectionError
	ClientErrFailedToSendMessage
	ClientErrNoSiblingServerService
	ClientErrFailedToSendRequestToSibling
	ClientErrNullHandlerForSupportedProtocol
	ClientErrNonNullHandlerForUnsupportedProtocol
	ClientErrMissingConfigForSupportedProtocol
	ClientErrSetupConnectionRefused
	ClientErrServiceNotReady
	ClientErrFailedToStartHandler
	ClientErrMiningHandler
	ClientErrTemplateDistributionHandler
)

// ClientError is the concrete error type returned by ClientService.Call and
// NewClientService.
type ClientError struct {
	Kind      ClientErrorKind
	Protocol  Protocol
	ErrorCode string
	Message   string
}

func (e *ClientError) Error() string {
	switch e.Kind {
	case ClientErrBadRouting:
		return "sv2svc: request submitted to the wrong half"
	case ClientErrUnsupportedMessage:
		return "sv2svc: unsupported message for current state"
	case ClientErrUnsupportedProtocol:
		return "sv2svc: unsupported protocol: " + e.Protocol.String()
	case ClientErrIsNotConnected:
		return "sv2svc: outbound send requested before connection established"
	case ClientErrConnectionError:
		return "sv2svc: connection error: " + e.Message
	case ClientErrFailedToSendMessage:
		return "sv2svc: failed to send message to server"
	case ClientErrNoSiblingServerService:
		return "sv2svc: no sibling server service configured"
	case ClientErrFailedToSendRequestToSibling:
		return "sv2svc: failed to send request to sibling server service"
	case ClientErrNullHandlerForSupportedProtocol:
		return "sv2svc: protocol " + e.Protocol.String() + " is supported but a null handler was provided"
	case ClientErrNonNullHandlerForUnsupportedProtocol:
		return "sv2svc: protocol " + e.Protocol.String() + " is not supported but a non-null handler was provided"
	case ClientErrMissingConfigForSupportedProtocol:
		return "sv2svc: protocol " + e.Protocol.String() + " is supported but no config was provided"
	case ClientErrSetupConnectionRefused:
		return "sv2svc: server refused SetupConnection: " + e.ErrorCode
	case ClientErrServiceNotReady:
		return "sv2svc: service not ready"
	case ClientErrFailedToStartHandler:
		return "sv2svc: failed to start handler: " + e.Message
	case ClientErrMiningHandler:
		return "sv2svc: mining handler error: " + e.Message
	case ClientErrTemplateDistributionHandler:
		return "sv2svc: template distribution handler error: " + e.Message
	default:
		return "sv2svc: client error"
	}
}

func newClientErr(kind ClientErrorKind) *ClientError {
	return &ClientError{Kind: kind}
}

func newClientProtoErr(kind ClientErrorKind, protocol Protocol) *ClientError {
	return &ClientError{Kind: kind, Protocol: protocol}
}

func newClientMsgErr(kind ClientErrorKind, msg string) *ClientError {
	return &ClientError{Kind: kind, Message: msg}
}

func newClientRefusedErr(code string) *ClientError {
	return &ClientError{Kind: ClientErrSetupConnectionRefused, ErrorCode: code}
}
