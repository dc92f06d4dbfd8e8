package sv2svc

import "errors"

// Sentinel errors shared by both service halves' sibling IO.
var (
	ErrFailedToSendToSiblingClient = errors.New("failed to send request to sibling client service")
	ErrFailedToSendToSiblingServer = errors.New("failed to send request to sibling server service")
)

// ServerErrorKind enumerates the service-layer error taxonomy from
// spec.md §7 for the server half.
type ServerErrorKind int

const (
	ServerErrBadRouting ServerErrorKind = iota
	ServerErrUnsupportedMessage
	ServerErrUnsupportedProtocol
	ServerErrIDMustBeSome
	ServerErrIDNotFound
	ServerErrConnectionError
	ServerErrFailedToSendResponseToClient
	ServerErrNoSiblingClientService
	ServerErrFailedToSendRequestToSibling
	ServerErrNullHandlerForSupportedProtocol
	ServerErrNonNullHandlerForUnsupportedProtocol
	ServerErrMissingConfigForSupportedProtocol
	ServerErrTCPServerError
	ServerErrServiceNotReady
	ServerErrFailedToStartHandler
	ServerErrMiningHandler
	ServerErrJobDeclarationHandler
	ServerErrTemplateDistributionHandler
)

// ServerError is the concrete error type returned by ServerService.Call and
// NewServerService.
type ServerError struct {
	Kind     ServerErrorKind
	Protocol Protocol
	Message  string
}

func (e *ServerError) Error() string {
	switch e.Kind {
	case ServerErrBadRouting:
		return "sv2svc: request submitted to the wrong half"
	case ServerErrUnsupportedMessage:
		return "sv2svc: unsupported message for current state"
	case ServerErrUnsupportedProtocol:
		return "sv2svc: unsupported protocol: " + e.Protocol.String()
	case ServerErrIDMustBeSome:
		return "sv2svc: client id must be present"
	case ServerErrIDNotFound:
		return "sv2svc: client id not found"
	case ServerErrConnectionError:
		return "sv2svc: connection error: " + e.Message
	case ServerErrFailedToSendResponseToClient:
		return "sv2svc: failed to send response to client"
	case ServerErrNoSiblingClientService:
		return "sv2svc: no sibling client service configured"
	case ServerErrFailedToSendRequestToSibling:
		return "sv2svc: failed to send request to sibling client service"
	case ServerErrNullHandlerForSupportedProtocol:
		return "sv2svc: protocol " + e.Protocol.String() + " is supported but a null handler was provided"
	case ServerErrNonNullHandlerForUnsupportedProtocol:
		return "sv2svc: protocol " + e.Protocol.String() + " is not supported but a non-null handler was provided"
	case ServerErrMissingConfigForSupportedProtocol:
		return "sv2svc: protocol " + e.Protocol.String() + " is supported but no config was provided"
	case ServerErrTCPServerError:
		return "sv2svc: tcp server failed to start: " + e.Message
	case ServerErrServiceNotReady:
		return "sv2svc: service not ready"
	case ServerErrFailedToStartHandler:
		return "sv2svc: failed to start handler: " + e.Message
	case ServerErrMiningHandler:
		return "sv2svc: mining handler error: " + e.Message
	case ServerErrJobDeclarationHandler:
		return "sv2svc: job declaration handler error: " + e.Message
	case ServerErrTemplateDistributionHandler:
		return "sv2svc: template distribution handler error: " + e.Message
	default:
		return "sv2svc: server error"
	}
}

func newServerErr(kind ServerErrorKind) *ServerError {
	return &ServerError{Kind: kind}
}

func newServerProtoErr(kind ServerErrorKind, protocol Protocol) *ServerError {
	return &ServerError{Kind: kind, Protocol: protocol}
}

func newServerMsgErr(kind ServerErrorKind, msg string) *ServerError {
	return &ServerError{Kind: kind, Message: msg}
}
