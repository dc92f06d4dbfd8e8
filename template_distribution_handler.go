package sv2svc

import "context"

// TemplateDistributionServerHandler covers the Template Distribution
// subprotocol on the server half: the three client-to-server message types
// (RequestTransactionData, SubmitSolution, CoinbaseOutputConstraints).
type TemplateDistributionServerHandler interface {
	IsNull() bool
	Start(ctx context.Context) error
	Ready() bool
	AddClient(clientID uint32, flags uint32) (setupConnectionSuccessFlags uint32, err error)
	RemoveClient(clientID uint32)

	OnCoinbaseOutputConstraints(clientID uint32, msg CoinbaseOutputConstraints) (ResponseFromServer, error)
	OnRequestTransactionData(clientID uint32, msg RequestTransactionData) (ResponseFromServer, error)
	OnSubmitSolution(clientID uint32, msg SubmitSolution) (ResponseFromServer, error)
}

type nullTemplateDistributionServerHandler struct{}

// NullTemplateDistributionServerHandler is the shared null Template
// Distribution server handler instance.
var NullTemplateDistributionServerHandler TemplateDistributionServerHandler = nullTemplateDistributionServerHandler{}

func (nullTemplateDistributionServerHandler) IsNull() bool { return true }

func (nullTemplateDistributionServerHandler) Start(ctx context.Context) error {
	panic("sv2svc: Start invoked on null template distribution handler")
}

func (nullTemplateDistributionServerHandler) Ready() bool { return true }

func (nullTemplateDistributionServerHandler) AddClient(uint32, uint32) (uint32, error) {
	panic("sv2svc: AddClient invoked on null template distribution handler")
}

func (nullTemplateDistributionServerHandler) RemoveClient(uint32) {
	panic("sv2svc: RemoveClient invoked on null template distribution handler")
}

func (nullTemplateDistributionServerHandler) OnCoinbaseOutputConstraints(uint32, CoinbaseOutputConstraints) (ResponseFromServer, error) {
	panic("sv2svc: OnCoinbaseOutputConstraints invoked on null template distribution handler")
}

func (nullTemplateDistributionServerHandler) OnRequestTransactionData(uint32, RequestTransactionData) (ResponseFromServer, error) {
	panic("sv2svc: OnRequestTransactionData invoked on null template distribution handler")
}

func (nullTemplateDistributionServerHandler) OnSubmitSolution(uint32, SubmitSolution) (ResponseFromServer, error) {
	panic("sv2svc: OnSubmitSolution invoked on null template distribution handler")
}
