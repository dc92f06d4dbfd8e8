package sv2svc

import "context"

// MiningServerHandler is the pluggable capability set a deployment supplies
// to handle the Mining subprotocol on the server half (spec.md §4.6). Every
// inbound-to-server mining variant named in spec.md §4.1's subprotocol
// dispatch table gets a same-named method.
type MiningServerHandler interface {
	// IsNull reports whether this handler is the designated null variant.
	// The dispatcher must check this before ever invoking another method.
	IsNull() bool

	// Start runs any handler-owned background work until ctx is cancelled.
	Start(ctx context.Context) error

	// Ready reports whether the handler can currently accept dispatch.
	Ready() bool

	// AddClient attaches a newly negotiated client to the handler, returning
	// the flags to report back in SetupConnectionSuccess.
	AddClient(clientID uint32, flags uint32) (setupConnectionSuccessFlags uint32, err error)

	// RemoveClient detaches a client, invoked exactly once per removed
	// client record (spec.md §8 invariant 3).
	RemoveClient(clientID uint32)

	OnOpenStandardMiningChannel(clientID uint32, msg OpenStandardMiningChannel) (ResponseFromServer, error)
	OnOpenExtendedMiningChannel(clientID uint32, msg OpenExtendedMiningChannel) (ResponseFromServer, error)
	OnUpdateChannel(clientID uint32, msg UpdateChannel) (ResponseFromServer, error)
	OnSubmitSharesStandard(clientID uint32, msg SubmitSharesStandard) (ResponseFromServer, error)
	OnSubmitSharesExtended(clientID uint32, msg SubmitSharesExtended) (ResponseFromServer, error)
	OnSetCustomMiningJob(clientID uint32, msg SetCustomMiningJob) (ResponseFromServer, error)
	OnCloseChannel(clientID uint32, msg CloseChannel) (ResponseFromServer, error)

	// OnTrigger handles a non-message-originated MiningServerTrigger, such
	// as Start or a push forwarded from a sibling Template Distribution
	// client (SPEC_FULL.md supplement 3).
	OnTrigger(trigger MiningServerTrigger) (ResponseFromServer, error)
}

// nullMiningServerHandler is the designated null variant used when a
// deployment does not support Mining on the server half. Per spec.md §4.6,
// every method other than IsNull is a programming error to invoke; the
// dispatcher must guard on IsNull first.
type nullMiningServerHandler struct{}

// NullMiningServerHandler is the shared null Mining server handler instance.
var NullMiningServerHandler MiningServerHandler = nullMiningServerHandler{}

func (nullMiningServerHandler) IsNull() bool { return true }

func (nullMiningServerHandler) Start(ctx context.Context) error {
	panic("sv2svc: Start invoked on null mining handler")
}

func (nullMiningServerHandler) Ready() bool { return true }

func (nullMiningServerHandler) AddClient(uint32, uint32) (uint32, error) {
	panic("sv2svc: AddClient invoked on null mining handler")
}

func (nullMiningServerHandler) RemoveClient(uint32) {
	panic("sv2svc: RemoveClient invoked on null mining handler")
}

func (nullMiningServerHandler) OnOpenStandardMiningChannel(uint32, OpenStandardMiningChannel) (ResponseFromServer, error) {
	panic("sv2svc: OnOpenStandardMiningChannel invoked on null mining handler")
}

func (nullMiningServerHandler) OnOpenExtendedMiningChannel(uint32, OpenExtendedMiningChannel) (ResponseFromServer, error) {
	panic("sv2svc: OnOpenExtendedMiningChannel invoked on null mining handler")
}

func (nullMiningServerHandler) OnUpdateChannel(uint32, UpdateChannel) (ResponseFromServer, error) {
	panic("sv2svc: OnUpdateChannel invoked on null mining handler")
}

func (nullMiningServerHandler) OnSubmitSharesStandard(uint32, SubmitSharesStandard) (ResponseFromServer, error) {
	panic("sv2svc: OnSubmitSharesStandard invoked on null mining handler")
}

func (nullMiningServerHandler) OnSubmitSharesExtended(uint32, SubmitSharesExtended) (ResponseFromServer, error) {
	panic("sv2svc: OnSubmitSharesExtended invoked on null mining handler")
}

func (nullMiningServerHandler) OnSetCustomMiningJob(uint32, SetCustomMiningJob) (ResponseFromServer, error) {
	panic("sv2svc: OnSetCustomMiningJob invoked on null mining handler")
}

func (nullMiningServerHandler) OnCloseChannel(uint32, CloseChannel) (ResponseFromServer, error) {
	panic("sv2svc: OnCloseChannel invoked on null mining handler")
}

func (nullMiningServerHandler) OnTrigger(MiningServerTrigger) (ResponseFromServer, error) {
	panic("sv2svc: OnTrigger invoked on null mining handler")
}
