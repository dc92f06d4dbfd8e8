package sv2svc

import "context"

// JobDeclarationServerHandler covers the Job Declaration subprotocol on the
// server half. Per spec.md §9's open question, Job Declaration dispatch is
// stubbed in deployments that exist today, but the full contract is defined
// symmetrically with Mining so a future handler can be dropped in without
// changing the dispatcher shape.
type JobDeclarationServerHandler interface {
	IsNull() bool
	Start(ctx context.Context) error
	Ready() bool
	AddClient(clientID uint32, flags uint32) (setupConnectionSuccessFlags uint32, err error)
	RemoveClient(clientID uint32)

	OnAllocateMiningJobToken(clientID uint32, msg AllocateMiningJobToken) (ResponseFromServer, error)
	OnDeclareMiningJob(clientID uint32, msg DeclareMiningJob) (ResponseFromServer, error)
}

type nullJobDeclarationServerHandler struct{}

// NullJobDeclarationServerHandler is the shared null Job Declaration server
// handler instance.
var NullJobDeclarationServerHandler JobDeclarationServerHandler = nullJobDeclarationServerHandler{}

func (nullJobDeclarationServerHandler) IsNull() bool { return true }

func (nullJobDeclarationServerHandler) Start(ctx context.Context) error {
	panic("sv2svc: Start invoked on null job declaration handler")
}

func (nullJobDeclarationServerHandler) Ready() bool { return true }

func (nullJobDeclarationServerHandler) AddClient(uint32, uint32) (uint32, error) {
	panic("sv2svc: AddClient invoked on null job declaration handler")
}

func (nullJobDeclarationServerHandler) RemoveClient(uint32) {
	panic("sv2svc: RemoveClient invoked on null job declaration handler")
}

func (nullJobDeclarationServerHandler) OnAllocateMiningJobToken(uint32, AllocateMiningJobToken) (ResponseFromServer, error) {
	panic("sv2svc: OnAllocateMiningJobToken invoked on null job declaration handler")
}

func (nullJobDeclarationServerHandler) OnDeclareMiningJob(uint32, DeclareMiningJob) (ResponseFromServer, error) {
	panic("sv2svc: OnDeclareMiningJob invoked on null job declaration handler")
}
