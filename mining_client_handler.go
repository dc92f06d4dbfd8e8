package sv2svc

import "context"

// MiningClientHandler handles the server-to-client mining messages received
// by a ClientService connected to an upstream mining server.
type MiningClientHandler interface {
	IsNull() bool
	Start(ctx context.Context) error
	Ready() bool

	OnOpenStandardMiningChannelSuccess(msg OpenStandardMiningChannelSuccess) (ResponseFromClient, error)
	OnOpenExtendedMiningChannelSuccess(msg OpenExtendedMiningChannelSuccess) (ResponseFromClient, error)
	OnOpenMiningChannelError(msg OpenMiningChannelError) (ResponseFromClient, error)
	OnUpdateChannelError(msg UpdateChannelError) (ResponseFromClient, error)
	OnNewMiningJob(msg NewMiningJob) (ResponseFromClient, error)
	OnNewExtendedMiningJob(msg NewExtendedMiningJob) (ResponseFromClient, error)
	OnSetNewPrevHashMining(msg SetNewPrevHashMining) (ResponseFromClient, error)
	OnSetTarget(msg SetTarget) (ResponseFromClient, error)
	OnSetGroupChannel(msg SetGroupChannel) (ResponseFromClient, error)
	OnSetExtranoncePrefix(msg SetExtranoncePrefix) (ResponseFromClient, error)
	OnSubmitSharesSuccess(msg SubmitSharesSuccess) (ResponseFromClient, error)
	OnSubmitSharesError(msg SubmitSharesError) (ResponseFromClient, error)
	OnSetCustomMiningJobSuccess(msg SetCustomMiningJobSuccess) (ResponseFromClient, error)
	OnSetCustomMiningJobError(msg SetCustomMiningJobError) (ResponseFromClient, error)

	OnTrigger(trigger MiningServerTrigger) (ResponseFromClient, error)
}

type nullMiningClientHandler struct{}

// NullMiningClientHandler is the shared null Mining client handler instance.
var NullMiningClientHandler MiningClientHandler = nullMiningClientHandler{}

func (nullMiningClientHandler) IsNull() bool { return true }

func (nullMiningClientHandler) Start(ctx context.Context) error {
	panic("sv2svc: Start invoked on null mining client handler")
}

func (nullMiningClientHandler) Ready() bool { return true }

func (nullMiningClientHandler) OnOpenStandardMiningChannelSuccess(OpenStandardMiningChannelSuccess) (ResponseFromClient, error) {
	panic("sv2svc: OnOpenStandardMiningChannelSuccess invoked on null mining client handler")
}

func (nullMiningClientHandler) OnOpenExtendedMiningChannelSuccess(OpenExtendedMiningChannelSuccess) (ResponseFromClient, error) {
	panic("sv2svc: OnOpenExtendedMiningChannelSuccess invoked on null mining client handler")
}

func (nullMiningClientHandler) OnOpenMiningChannelError(OpenMiningChannelError) (ResponseFromClient, error) {
	panic("sv2svc: OnOpenMiningChannelError invoked on null mining client handler")
}

func (nullMiningClientHandler) OnUpdateChannelError(UpdateChannelError) (ResponseFromClient, error) {
	panic("sv2svc: OnUpdateChannelError invoked on null mining client handler")
}

func (nullMiningClientHandler) OnNewMiningJob(NewMiningJob) (ResponseFromClient, error) {
	panic("sv2svc: OnNewMiningJob invoked on null mining client handler")
}

func (nullMiningClientHandler) OnNewExtendedMiningJob(NewExtendedMiningJob) (ResponseFromClient, error) {
	panic("sv2svc: OnNewExtendedMiningJob invoked on null mining client handler")
}

func (nullMiningClientHandler) OnSetNewPrevHashMining(SetNewPrevHashMining) (ResponseFromClient, error) {
	panic("sv2svc: OnSetNewPrevHashMining invoked on null mining client handler")
}

func (nullMiningClientHandler) OnSetTarget(SetTarget) (ResponseFromClient, error) {
	panic("sv2svc: OnSetTarget invoked on null mining client handler")
}

func (nullMiningClientHandler) OnSetGroupChannel(SetGroupChannel) (ResponseFromClient, error) {
	panic("sv2svc: OnSetGroupChannel invoked on null mining client handler")
}

func (nullMiningClientHandler) OnSetExtranoncePrefix(SetExtranoncePrefix) (ResponseFromClient, error) {
	panic("sv2svc: OnSetExtranoncePrefix invoked on null mining client handler")
}

func (nullMiningClientHandler) OnSubmitSharesSuccess(SubmitSharesSuccess) (ResponseFromClient, error) {
	panic("sv2svc: OnSubmitSharesSuccess invoked on null mining client handler")
}

func (nullMiningClientHandler) OnSubmitSharesError(SubmitSharesError) (ResponseFromClient, error) {
	panic("sv2svc: OnSubmitSharesError invoked on null mining client handler")
}

func (nullMiningClientHandler) OnSetCustomMiningJobSuccess(SetCustomMiningJobSuccess) (ResponseFromClient, error) {
	panic("sv2svc: OnSetCustomMiningJobSuccess invoked on null mining client handler")
}

func (nullMiningClientHandler) OnSetCustomMiningJobError(SetCustomMiningJobError) (ResponseFromClient, error) {
	panic("sv2svc: OnSetCustomMiningJobError invoked on null mining client handler")
}

func (nullMiningClientHandler) OnTrigger(MiningServerTrigger) (ResponseFromClient, error) {
	panic("sv2svc: OnTrigger invoked on null mining client handler")
}
