package sv2svc

import (
	"context"
	"sync"
)

// stubMiningServerHandler is a minimal non-null MiningServerHandler used by
// the test suite; it records AddClient/RemoveClient calls so tests can
// assert on the add_client-before-error quirk (spec.md §9).
type stubMiningServerHandler struct {
	mu             sync.Mutex
	addedClients   []uint32
	removedClients []uint32
	successFlags   uint32
}

func newStubMiningServerHandler() *stubMiningServerHandler {
	return &stubMiningServerHandler{}
}

func (h *stubMiningServerHandler) IsNull() bool                  { return false }
func (h *stubMiningServerHandler) Start(ctx context.Context) error { return nil }
func (h *stubMiningServerHandler) Ready() bool                    { return true }

func (h *stubMiningServerHandler) AddClient(clientID uint32, flags uint32) (uint32, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.addedClients = append(h.addedClients, clientID)
	return h.successFlags, nil
}

func (h *stubMiningServerHandler) RemoveClient(clientID uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removedClients = append(h.removedClients, clientID)
}

func (h *stubMiningServerHandler) AddedClients() []uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]uint32, len(h.addedClients))
	copy(out, h.addedClients)
	return out
}

func (h *stubMiningServerHandler) OnOpenStandardMiningChannel(uint32, OpenStandardMiningChannel) (ResponseFromServer, error) {
	return ServerOk{}, nil
}
func (h *stubMiningServerHandler) OnOpenExtendedMiningChannel(uint32, OpenExtendedMiningChannel) (ResponseFromServer, error) {
	return ServerOk{}, nil
}
func (h *stubMiningServerHandler) OnUpdateChannel(uint32, UpdateChannel) (ResponseFromServer, error) {
	return ServerOk{}, nil
}
func (h *stubMiningServerHandler) OnSubmitSharesStandard(uint32, SubmitSharesStandard) (ResponseFromServer, error) {
	return ServerOk{}, nil
}
func (h *stubMiningServerHandler) OnSubmitSharesExtended(uint32, SubmitSharesExtended) (ResponseFromServer, error) {
	return ServerOk{}, nil
}
func (h *stubMiningServerHandler) OnSetCustomMiningJob(uint32, SetCustomMiningJob) (ResponseFromServer, error) {
	return ServerOk{}, nil
}
func (h *stubMiningServerHandler) OnCloseChannel(uint32, CloseChannel) (ResponseFromServer, error) {
	return ServerOk{}, nil
}
func (h *stubMiningServerHandler) OnTrigger(MiningServerTrigger) (ResponseFromServer, error) {
	return ServerOk{}, nil
}

// stubJobDeclarationServerHandler is a minimal non-null
// JobDeclarationServerHandler that records AddClient/RemoveClient calls so
// tests can assert on the add_client-before-error quirk (spec.md §9).
type stubJobDeclarationServerHandler struct {
	mu           sync.Mutex
	addedClients []uint32
}

func newStubJobDeclarationServerHandler() *stubJobDeclarationServerHandler {
	return &stubJobDeclarationServerHandler{}
}

func (h *stubJobDeclarationServerHandler) IsNull() bool                  { return false }
func (h *stubJobDeclarationServerHandler) Start(ctx context.Context) error { return nil }
func (h *stubJobDeclarationServerHandler) Ready() bool                    { return true }

func (h *stubJobDeclarationServerHandler) AddClient(clientID uint32, flags uint32) (uint32, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.addedClients = append(h.addedClients, clientID)
	return 0, nil
}

func (h *stubJobDeclarationServerHandler) RemoveClient(uint32) {}

func (h *stubJobDeclarationServerHandler) AddedClients() []uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]uint32, len(h.addedClients))
	copy(out, h.addedClients)
	return out
}

func (h *stubJobDeclarationServerHandler) OnAllocateMiningJobToken(uint32, AllocateMiningJobToken) (ResponseFromServer, error) {
	return ServerOk{}, nil
}
func (h *stubJobDeclarationServerHandler) OnDeclareMiningJob(uint32, DeclareMiningJob) (ResponseFromServer, error) {
	return ServerOk{}, nil
}

// stubTemplateDistributionServerHandler is a minimal non-null
// TemplateDistributionServerHandler.
type stubTemplateDistributionServerHandler struct{}

func (stubTemplateDistributionServerHandler) IsNull() bool                  { return false }
func (stubTemplateDistributionServerHandler) Start(ctx context.Context) error { return nil }
func (stubTemplateDistributionServerHandler) Ready() bool                    { return true }
func (stubTemplateDistributionServerHandler) AddClient(uint32, uint32) (uint32, error) {
	return 0, nil
}
func (stubTemplateDistributionServerHandler) RemoveClient(uint32) {}
func (stubTemplateDistributionServerHandler) OnCoinbaseOutputConstraints(uint32, CoinbaseOutputConstraints) (ResponseFromServer, error) {
	return ServerOk{}, nil
}
func (stubTemplateDistributionServerHandler) OnRequestTransactionData(uint32, RequestTransactionData) (ResponseFromServer, error) {
	return ServerOk{}, nil
}
func (stubTemplateDistributionServerHandler) OnSubmitSolution(uint32, SubmitSolution) (ResponseFromServer, error) {
	return ServerOk{}, nil
}

// stubMiningClientHandler is a minimal non-null MiningClientHandler.
type stubMiningClientHandler struct{}

func (stubMiningClientHandler) IsNull() bool                  { return false }
func (stubMiningClientHandler) Start(ctx context.Context) error { return nil }
func (stubMiningClientHandler) Ready() bool                    { return true }
func (stubMiningClientHandler) OnOpenStandardMiningChannelSuccess(OpenStandardMiningChannelSuccess) (ResponseFromClient, error) {
	return ClientOk{}, nil
}
func (stubMiningClientHandler) OnOpenExtendedMiningChannelSuccess(OpenExtendedMiningChannelSuccess) (ResponseFromClient, error) {
	return ClientOk{}, nil
}
func (stubMiningClientHandler) OnOpenMiningChannelError(OpenMiningChannelError) (ResponseFromClient, error) {
	return ClientOk{}, nil
}
func (stubMiningClientHandler) OnUpdateChannelError(UpdateChannelError) (ResponseFromClient, error) {
	return ClientOk{}, nil
}
func (stubMiningClientHandler) OnNewMiningJob(NewMiningJob) (ResponseFromClient, error) {
	return ClientOk{}, nil
}
func (stubMiningClientHandler) OnNewExtendedMiningJob(NewExtendedMiningJob) (ResponseFromClient, error) {
	return ClientOk{}, nil
}
func (stubMiningClientHandler) OnSetNewPrevHashMining(SetNewPrevHashMining) (ResponseFromClient, error) {
	return ClientOk{}, nil
}
func (stubMiningClientHandler) OnSetTarget(SetTarget) (ResponseFromClient, error) {
	return ClientOk{}, nil
}
func (stubMiningClientHandler) OnSetGroupChannel(SetGroupChannel) (ResponseFromClient, error) {
	return ClientOk{}, nil
}
func (stubMiningClientHandler) OnSetExtranoncePrefix(SetExtranoncePrefix) (ResponseFromClient, error) {
	return ClientOk{}, nil
}
func (stubMiningClientHandler) OnSubmitSharesSuccess(SubmitSharesSuccess) (ResponseFromClient, error) {
	return ClientOk{}, nil
}
func (stubMiningClientHandler) OnSubmitSharesError(SubmitSharesError) (ResponseFromClient, error) {
	return ClientOk{}, nil
}
func (stubMiningClientHandler) OnSetCustomMiningJobSuccess(SetCustomMiningJobSuccess) (ResponseFromClient, error) {
	return ClientOk{}, nil
}
func (stubMiningClientHandler) OnSetCustomMiningJobError(SetCustomMiningJobError) (ResponseFromClient, error) {
	return ClientOk{}, nil
}
func (stubMiningClientHandler) OnTrigger(MiningServerTrigger) (ResponseFromClient, error) {
	return ClientOk{}, nil
}

// stubTemplateDistributionClientHandler is a minimal non-null
// TemplateDistributionClientHandler.
type stubTemplateDistributionClientHandler struct{}

func (stubTemplateDistributionClientHandler) IsNull() bool                  { return false }
func (stubTemplateDistributionClientHandler) Start(ctx context.Context) error { return nil }
func (stubTemplateDistributionClientHandler) Ready() bool                    { return true }
func (stubTemplateDistributionClientHandler) OnNewTemplate(NewTemplate) (ResponseFromClient, error) {
	return ClientOk{}, nil
}
func (stubTemplateDistributionClientHandler) OnSetNewPrevHash(SetNewPrevHash) (ResponseFromClient, error) {
	return ClientOk{}, nil
}
func (stubTemplateDistributionClientHandler) OnRequestTransactionDataSuccess(RequestTransactionDataSuccess) (ResponseFromClient, error) {
	return ClientOk{}, nil
}
func (stubTemplateDistributionClientHandler) OnRequestTransactionDataError(RequestTransactionDataError) (ResponseFromClient, error) {
	return ClientOk{}, nil
}
func (stubTemplateDistributionClientHandler) OnTrigger(trigger TemplateDistributionTrigger) (ResponseFromClient, error) {
	if t, ok := trigger.(TDTriggerOnNewTemplate); ok {
		return ClientTemplateDistributionTriggerAck{TemplateID: t.Template.TemplateID}, nil
	}
	return ClientOk{}, nil
}
