package sv2svc

import "context"

// TemplateDistributionClientHandler handles the server-to-client Template
// Distribution messages, grounded in
// original_source/examples/template-distribution-client/src/handler.rs.
type TemplateDistributionClientHandler interface {
	IsNull() bool
	Start(ctx context.Context) error
	Ready() bool

	OnNewTemplate(msg NewTemplate) (ResponseFromClient, error)
	OnSetNewPrevHash(msg SetNewPrevHash) (ResponseFromClient, error)
	OnRequestTransactionDataSuccess(msg RequestTransactionDataSuccess) (ResponseFromClient, error)
	OnRequestTransactionDataError(msg RequestTransactionDataError) (ResponseFromClient, error)

	// OnTrigger handles a TemplateDistributionTrigger pushed in directly,
	// e.g. from a sibling mining server that needs a fresh template
	// (SPEC_FULL.md supplement 2).
	OnTrigger(trigger TemplateDistributionTrigger) (ResponseFromClient, error)
}

type nullTemplateDistributionClientHandler struct{}

// NullTemplateDistributionClientHandler is the shared null Template
// Distribution client handler instance.
var NullTemplateDistributionClientHandler TemplateDistributionClientHandler = nullTemplateDistributionClientHandler{}

func (nullTemplateDistributionClientHandler) IsNull() bool { return true }

func (nullTemplateDistributionClientHandler) Start(ctx context.Context) error {
	panic("sv2svc: Start invoked on null template distribution client handler")
}

func (nullTemplateDistributionClientHandler) Ready() bool { return true }

func (nullTemplateDistributionClientHandler) OnNewTemplate(NewTemplate) (ResponseFromClient, error) {
	panic("sv2svc: OnNewTemplate invoked on null template distribution client handler")
}

func (nullTemplateDistributionClientHandler) OnSetNewPrevHash(SetNewPrevHash) (ResponseFromClient, error) {
	panic("sv2svc: OnSetNewPrevHash invoked on null template distribution client handler")
}

func (nullTemplateDistributionClientHandler) OnRequestTransactionDataSuccess(RequestTransactionDataSuccess) (ResponseFromClient, error) {
	panic("sv2svc: OnRequestTransactionDataSuccess invoked on null template distribution client handler")
}

func (nullTemplateDistributionClientHandler) OnRequestTransactionDataError(RequestTransactionDataError) (ResponseFromClient, error) {
	panic("sv2svc: OnRequestTransactionDataError invoked on null template distribution client handler")
}

func (nullTemplateDistributionClientHandler) OnTrigger(TemplateDistributionTrigger) (ResponseFromClient, error) {
	panic("sv2svc: OnTrigger invoked on null template distribution client handler")
}
